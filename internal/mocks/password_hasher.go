package mocks

import (
	"github.com/stretchr/testify/mock"
)

// PasswordHasher is a mock type for the model.PasswordHasher type.
type PasswordHasher struct {
	mock.Mock
}

func (_m *PasswordHasher) Hash(plain string) (string, error) {
	ret := _m.Called(plain)
	return ret.String(0), ret.Error(1)
}

func (_m *PasswordHasher) Verify(plain, encoded string) (bool, error) {
	ret := _m.Called(plain, encoded)
	return ret.Bool(0), ret.Error(1)
}

// NewPasswordHasher creates a new instance of PasswordHasher. It also registers a cleanup
// function to assert the mocks expectations.
func NewPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *PasswordHasher {
	m := &PasswordHasher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
