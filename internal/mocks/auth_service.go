package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/postfeed-server/internal/model"
)

// AuthService is a mock type for the handler.AuthService type.
type AuthService struct {
	mock.Mock
}

func (_m *AuthService) Register(ctx context.Context, email, password string) (model.Token, error) {
	ret := _m.Called(ctx, email, password)
	return ret.Get(0).(model.Token), ret.Error(1)
}

func (_m *AuthService) Login(ctx context.Context, email, password string) (model.Token, error) {
	ret := _m.Called(ctx, email, password)
	return ret.Get(0).(model.Token), ret.Error(1)
}

// NewAuthService creates a new instance of AuthService. It also registers a cleanup
// function to assert the mocks expectations.
func NewAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthService {
	m := &AuthService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
