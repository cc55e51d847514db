package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/postfeed-server/internal/model"
)

// UserStore is a mock type for the model.UserStore type.
type UserStore struct {
	mock.Mock
}

func (_m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	ret := _m.Called(ctx, email)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *UserStore) GetByID(ctx context.Context, id int64) (model.User, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *UserStore) Create(ctx context.Context, email, password string) (model.User, error) {
	ret := _m.Called(ctx, email, password)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *UserStore) VerifyCredentials(ctx context.Context, email, password string) (model.User, error) {
	ret := _m.Called(ctx, email, password)
	return ret.Get(0).(model.User), ret.Error(1)
}

// NewUserStore creates a new instance of UserStore. It also registers a cleanup
// function to assert the mocks expectations.
func NewUserStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserStore {
	m := &UserStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
