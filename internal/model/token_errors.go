package model

import "errors"

var (
	// ErrInvalidToken covers every reason a bearer token is rejected.
	ErrInvalidToken = errors.New("invalid authentication token")
	// ErrTokenExpired is wrapped together with ErrInvalidToken.
	ErrTokenExpired = errors.New("token expired")
)
