package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/postfeed-server/internal/model"
)

// PostStore is a mock type for the model.PostStore type.
type PostStore struct {
	mock.Mock
}

func (_m *PostStore) GetByID(ctx context.Context, id int64) (model.Post, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.Post), ret.Error(1)
}

func (_m *PostStore) GetByUserID(ctx context.Context, userID int64) ([]model.Post, error) {
	ret := _m.Called(ctx, userID)

	var r0 []model.Post
	if v := ret.Get(0); v != nil {
		r0 = v.([]model.Post)
	}
	return r0, ret.Error(1)
}

func (_m *PostStore) Create(ctx context.Context, text string, userID int64) (model.Post, error) {
	ret := _m.Called(ctx, text, userID)
	return ret.Get(0).(model.Post), ret.Error(1)
}

func (_m *PostStore) Delete(ctx context.Context, postID, userID int64) (bool, error) {
	ret := _m.Called(ctx, postID, userID)
	return ret.Bool(0), ret.Error(1)
}

// NewPostStore creates a new instance of PostStore. It also registers a cleanup
// function to assert the mocks expectations.
func NewPostStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *PostStore {
	m := &PostStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
