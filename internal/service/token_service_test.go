package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/postfeed-server/internal/mocks"
	"github.com/dtroode/postfeed-server/internal/model"
	"github.com/dtroode/postfeed-server/internal/testutil"
)

func TestTokenService_Issue(t *testing.T) {
	ctx := context.Background()
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	manager := servermocks.NewTokenManager(t)
	manager.On("Issue", int64(42), 30*time.Minute).Return("access", exp, nil).Once()

	svc := NewTokenService(manager, 30*time.Minute, testutil.MakeNoopLogger())

	token, err := svc.Issue(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "access", token.AccessToken)
	assert.Equal(t, model.TokenTypeBearer, token.TokenType)
	assert.Equal(t, exp, token.ExpiresAt)
}

func TestTokenService_Issue_ManagerError(t *testing.T) {
	manager := servermocks.NewTokenManager(t)
	manager.On("Issue", int64(42), time.Minute).Return("", time.Time{}, assert.AnError).Once()

	svc := NewTokenService(manager, time.Minute, testutil.MakeNoopLogger())

	_, err := svc.Issue(context.Background(), 42)
	require.ErrorIs(t, err, assert.AnError)
}

func TestTokenService_GetUserID(t *testing.T) {
	tests := []struct {
		name     string
		claims   model.TokenClaims
		parseErr error
		wantID   int64
		wantErr  error
	}{
		{
			name:   "valid token",
			claims: model.TokenClaims{UserID: 7},
			wantID: 7,
		},
		{
			name:     "invalid token",
			parseErr: model.ErrInvalidToken,
			wantErr:  model.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := servermocks.NewTokenManager(t)
			manager.On("Parse", "tok").Return(tt.claims, tt.parseErr).Once()

			svc := NewTokenService(manager, time.Minute, testutil.MakeNoopLogger())

			id, err := svc.GetUserID(context.Background(), "tok")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
