package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/postfeed-server/internal/model"
)

// PostListCache is a mock type for the model.PostListCache type.
type PostListCache struct {
	mock.Mock
}

func (_m *PostListCache) Get(key string) ([]model.PostView, bool) {
	ret := _m.Called(key)

	var r0 []model.PostView
	if v := ret.Get(0); v != nil {
		r0 = v.([]model.PostView)
	}
	return r0, ret.Bool(1)
}

func (_m *PostListCache) Set(key string, value []model.PostView, ttl time.Duration) {
	_m.Called(key, value, ttl)
}

func (_m *PostListCache) Delete(key string) bool {
	ret := _m.Called(key)
	return ret.Bool(0)
}

func (_m *PostListCache) DeleteMatching(substr string) int {
	ret := _m.Called(substr)
	return ret.Int(0)
}

// NewPostListCache creates a new instance of PostListCache. It also registers a cleanup
// function to assert the mocks expectations.
func NewPostListCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *PostListCache {
	m := &PostListCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
