package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/postfeed-server/internal/logger"
	"github.com/dtroode/postfeed-server/internal/model"
)

type Auth struct {
	userStore    model.UserStore
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(userStore model.UserStore, tokenService *TokenService, logger *logger.Logger) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates the account and returns a token for it.
func (a *Auth) Register(ctx context.Context, email, password string) (model.Token, error) {
	a.logger.Debug("Auth service: starting user registration",
		"login", email)

	_, err := a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"login", email)
		return model.Token{}, model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"login", email,
			"error", err.Error())
		return model.Token{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	user, err := a.userStore.Create(ctx, email, password)
	if errors.Is(err, model.ErrDuplicateEmail) {
		// lost the race against a concurrent signup
		a.logger.Info("Auth service: user already exists",
			"login", email)
		return model.Token{}, model.ErrEmailTaken
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"login", email,
			"error", err.Error())
		return model.Token{}, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return model.Token{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"login", email,
		"user_id", user.ID)

	return token, nil
}

// Login verifies the credentials and returns a fresh token.
func (a *Auth) Login(ctx context.Context, email, password string) (model.Token, error) {
	a.logger.Debug("Auth service: starting user login",
		"login", email)

	user, err := a.userStore.VerifyCredentials(ctx, email, password)
	if errors.Is(err, model.ErrInvalidCredentials) {
		a.logger.Info("Auth service: invalid credentials",
			"login", email)
		return model.Token{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to verify credentials",
			"login", email,
			"error", err.Error())
		return model.Token{}, fmt.Errorf("failed to verify credentials: %w", err)
	}

	token, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return model.Token{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed successfully",
		"login", email,
		"user_id", user.ID)

	return token, nil
}
