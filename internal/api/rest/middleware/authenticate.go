package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/postfeed-server/internal/logger"
	"github.com/dtroode/postfeed-server/internal/model"
)

var (
	errMissingToken       = errors.New("Not authenticated")
	errInvalidToken       = errors.New("Invalid authentication token")
	errInvalidCredentials = errors.New("Invalid authentication credentials")
)

// TokenService resolves user ID from bearer tokens.
type TokenService interface {
	GetUserID(ctx context.Context, token string) (int64, error)
}

// Authenticate validates bearer tokens and injects user ID into context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, validates the token and stores the
// user ID in the request context. Failures abort with 401.
func (m *Authenticate) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	userID, authErr := m.authenticateUser(ctx, bearerToken(c.GetHeader("Authorization")))
	if authErr != nil {
		m.logger.Debug("Authenticate middleware: request rejected",
			"path", c.Request.URL.Path,
			"request_id", RequestIDFromContext(c),
			"reason", authErr.Error())
		c.Header("WWW-Authenticate", "Bearer")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": authErr.Error()})
		return
	}

	c.Request = c.Request.WithContext(m.contextManager.SetUserIDToContext(ctx, userID))
	c.Next()
}

func (m *Authenticate) authenticateUser(ctx context.Context, tokenString string) (userID int64, err error) {
	if tokenString == "" {
		return 0, errMissingToken
	}

	userID, err = m.tokenService.GetUserID(ctx, tokenString)
	if err != nil {
		return 0, errInvalidToken
	}

	if userID <= 0 {
		return 0, errInvalidCredentials
	}

	return userID, nil
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
