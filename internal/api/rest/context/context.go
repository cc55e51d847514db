package context

import (
	"context"
)

type ctxKey string

// userIDKey is the key under which the authenticated user ID is stored.
const userIDKey ctxKey = "user_id"

// Manager stores and retrieves the authenticated user ID in a request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserIDToContext returns a copy of ctx carrying userID.
func (m *Manager) SetUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext reports the user ID set by SetUserIDToContext.
// Non-positive IDs are treated as absent.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
