package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/postfeed-server/internal/model"
)

// PostService is a mock type for the handler.PostService type.
type PostService struct {
	mock.Mock
}

func (_m *PostService) CreatePost(ctx context.Context, text string, userID int64) (int64, error) {
	ret := _m.Called(ctx, text, userID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *PostService) GetUserPosts(ctx context.Context, userID int64) ([]model.PostView, error) {
	ret := _m.Called(ctx, userID)

	var r0 []model.PostView
	if v := ret.Get(0); v != nil {
		r0 = v.([]model.PostView)
	}
	return r0, ret.Error(1)
}

func (_m *PostService) DeletePost(ctx context.Context, postID, userID int64) (bool, error) {
	ret := _m.Called(ctx, postID, userID)
	return ret.Bool(0), ret.Error(1)
}

// NewPostService creates a new instance of PostService. It also registers a cleanup
// function to assert the mocks expectations.
func NewPostService(t interface {
	mock.TestingT
	Cleanup(func())
}) *PostService {
	m := &PostService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
