package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// ContextManager is a mock type for the model.ContextManager type.
type ContextManager struct {
	mock.Mock
}

func (_m *ContextManager) SetUserIDToContext(ctx context.Context, userID int64) context.Context {
	ret := _m.Called(ctx, userID)
	return ret.Get(0).(context.Context)
}

func (_m *ContextManager) GetUserIDFromContext(ctx context.Context) (int64, bool) {
	ret := _m.Called(ctx)
	return ret.Get(0).(int64), ret.Bool(1)
}

// NewContextManager creates a new instance of ContextManager. It also registers a cleanup
// function to assert the mocks expectations.
func NewContextManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContextManager {
	m := &ContextManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
