package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/postfeed-server/internal/api/rest/middleware"
	"github.com/dtroode/postfeed-server/internal/model"
)

const (
	detailInvalidBody = "Invalid request body"
	detailInternal    = "internal server error"
)

// handleError maps a domain error to a status code and client-facing detail.
func handleError(err error) (int, string) {
	var validationErr *model.ValidationError
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge, middleware.PayloadTooLarge(maxBytesErr.Limit)
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity, validationErr.Message
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusUnprocessableEntity, detailInvalidBody
	case errors.Is(err, model.ErrEmailTaken), errors.Is(err, model.ErrDuplicateEmail):
		return http.StatusConflict, "User with this email already exists"
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, model.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid authentication token"
	case errors.Is(err, model.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, model.ErrPostNotFound), errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "Post not found or not owned by user"
	default:
		return http.StatusInternalServerError, detailInternal
	}
}

// writeError aborts the request with the mapped status. Server errors are
// attached to the gin context so the access log records them.
func writeError(c *gin.Context, err error) {
	status, detail := handleError(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	if status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	c.AbortWithStatusJSON(status, errorResponse{Detail: detail})
}

// bindJSON decodes the body into dst. Oversized bodies keep their
// MaxBytesError so they map to 413; everything else is invalid input.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return err
		}
		return errors.Join(model.ErrInvalidInput, err)
	}
	return nil
}
