package model

import "time"

// TokenTypeBearer is the token_type reported to clients.
const TokenTypeBearer = "bearer"

// TokenManager signs and validates access tokens.
type TokenManager interface {
	Issue(subject int64, ttl time.Duration) (token string, expiresAt time.Time, err error)
	Parse(token string) (TokenClaims, error)
}

// TokenClaims are the verified contents of an access token.
type TokenClaims struct {
	UserID    int64
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Token is an issued access token.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}
