package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/postfeed-server/internal/model"
)

// TokenManager is a mock type for the model.TokenManager type.
type TokenManager struct {
	mock.Mock
}

func (_m *TokenManager) Issue(subject int64, ttl time.Duration) (string, time.Time, error) {
	ret := _m.Called(subject, ttl)
	return ret.String(0), ret.Get(1).(time.Time), ret.Error(2)
}

func (_m *TokenManager) Parse(token string) (model.TokenClaims, error) {
	ret := _m.Called(token)
	return ret.Get(0).(model.TokenClaims), ret.Error(1)
}

// NewTokenManager creates a new instance of TokenManager. It also registers a cleanup
// function to assert the mocks expectations.
func NewTokenManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenManager {
	m := &TokenManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
