package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/postfeed-server/internal/logger"
	"github.com/dtroode/postfeed-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, email, password string) (model.Token, error)
	Login(ctx context.Context, email, password string) (model.Token, error)
}

// Auth handles the signup and login endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Signup registers a user and responds with an access token.
func (h *Auth) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	if err := model.ValidatePassword(req.Password); err != nil {
		writeError(c, err)
		return
	}

	h.logger.Debug("Auth handler: processing signup request",
		"login", req.Email)

	token, err := h.authService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: signup failed",
			"login", req.Email,
			"error", err.Error())
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTokenResponse(token))
}

// Login verifies credentials and responds with an access token.
func (h *Auth) Login(c *gin.Context) {
	var req credentialsRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}

	h.logger.Debug("Auth handler: processing login request",
		"login", req.Email)

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"login", req.Email,
			"error", err.Error())
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTokenResponse(token))
}
