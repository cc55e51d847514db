package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/postfeed-server/internal/model"
)

var _ model.TokenManager = (*JWT)(nil)

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey []byte
	method    *jwt.SigningMethodHMAC
	now       func() time.Time
}

// Option configures the JWT manager.
type Option func(*JWT)

// WithClock replaces the time source used for issuing and validating tokens.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) { j.now = now }
}

// NewJWT creates a new JWT token manager signing with the named HMAC algorithm
// (HS256, HS384 or HS512).
func NewJWT(secretKey, algorithm string, opts ...Option) (*JWT, error) {
	if secretKey == "" {
		return nil, errors.New("jwt secret is empty")
	}
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	j := &JWT{secretKey: []byte(secretKey), method: method, now: time.Now}
	for _, opt := range opts {
		opt(j)
	}
	return j, nil
}

// Issue creates a token for subject that expires after ttl.
func (j *JWT) Issue(subject int64, ttl time.Duration) (string, time.Time, error) {
	// Claims carry whole seconds; the reported expiry must match exp exactly.
	now := j.now().Truncate(jwt.TimePrecision)
	expiresAt := now.Add(ttl)

	token := jwt.NewWithClaims(j.method, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(subject, 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Parse validates signature, algorithm and expiry and returns the claims.
// Every failure matches model.ErrInvalidToken.
func (j *JWT) Parse(tokenString string) (model.TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{j.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.TokenClaims{}, fmt.Errorf("%w: %w", model.ErrInvalidToken, model.ErrTokenExpired)
		}
		return model.TokenClaims{}, fmt.Errorf("%w: %w", model.ErrInvalidToken, err)
	}
	if !token.Valid {
		return model.TokenClaims{}, model.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return model.TokenClaims{}, fmt.Errorf("%w: malformed subject", model.ErrInvalidToken)
	}

	result := model.TokenClaims{
		UserID:    userID,
		ID:        claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	return result, nil
}
