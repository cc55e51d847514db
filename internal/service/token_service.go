package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/postfeed-server/internal/logger"
	"github.com/dtroode/postfeed-server/internal/model"
)

// TokenService issues and resolves access tokens on top of a TokenManager.
// Tokens are stateless: nothing is persisted and there is no revocation.
type TokenService struct {
	manager model.TokenManager
	ttl     time.Duration
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, ttl time.Duration, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, ttl: ttl, logger: logger}
}

func (s *TokenService) Issue(ctx context.Context, userID int64) (model.Token, error) {
	access, expiresAt, err := s.manager.Issue(userID, s.ttl)
	if err != nil {
		s.logger.Error("Token service: failed to issue access token",
			"user_id", userID,
			"error", err.Error())
		return model.Token{}, fmt.Errorf("issue access: %w", err)
	}

	return model.Token{
		AccessToken: access,
		TokenType:   model.TokenTypeBearer,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *TokenService) GetUserID(ctx context.Context, token string) (int64, error) {
	claims, err := s.manager.Parse(token)
	if err != nil {
		s.logger.Debug("Token service: rejected access token",
			"error", err.Error())
		return 0, err
	}
	return claims.UserID, nil
}
