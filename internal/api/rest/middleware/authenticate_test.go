package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	restctx "github.com/dtroode/postfeed-server/internal/api/rest/context"
	"github.com/dtroode/postfeed-server/internal/mocks"
	"github.com/dtroode/postfeed-server/internal/model"
	"github.com/dtroode/postfeed-server/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		authHeader     string
		callTokenSvc   bool
		tokenSvcUserID int64
		tokenSvcErr    error
		wantStatus     int
		wantDetail     string
	}{
		{
			name:       "missing authorization header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Not authenticated",
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Not authenticated",
		},
		{
			name:       "empty bearer token",
			authHeader: "Bearer   ",
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Not authenticated",
		},
		{
			name:         "invalid token",
			authHeader:   "Bearer invalid",
			callTokenSvc: true,
			tokenSvcErr:  model.ErrInvalidToken,
			wantStatus:   http.StatusUnauthorized,
			wantDetail:   "Invalid authentication token",
		},
		{
			name:           "zero user id from token",
			authHeader:     "Bearer token",
			callTokenSvc:   true,
			tokenSvcUserID: 0,
			wantStatus:     http.StatusUnauthorized,
			wantDetail:     "Invalid authentication credentials",
		},
		{
			name:           "valid token",
			authHeader:     "Bearer token",
			callTokenSvc:   true,
			tokenSvcUserID: 42,
			wantStatus:     http.StatusOK,
		},
		{
			name:           "scheme is case insensitive",
			authHeader:     "bearer token",
			callTokenSvc:   true,
			tokenSvcUserID: 42,
			wantStatus:     http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewTokenService(t)
			if tt.callTokenSvc {
				tokenSvc.On("GetUserID", mock.Anything, "token").Maybe().Return(tt.tokenSvcUserID, tt.tokenSvcErr)
				tokenSvc.On("GetUserID", mock.Anything, "invalid").Maybe().Return(tt.tokenSvcUserID, tt.tokenSvcErr)
			}
			ctxMgr := restctx.NewManager()
			mw := NewAuthenticate(tokenSvc, ctxMgr, testutil.MakeNoopLogger())

			var gotUserID int64
			r := gin.New()
			r.GET("/protected", mw.Handle, func(c *gin.Context) {
				gotUserID, _ = ctxMgr.GetUserIDFromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
				assert.JSONEq(t, `{"detail":"`+tt.wantDetail+`"}`, w.Body.String())
				assert.Zero(t, gotUserID)
				return
			}
			assert.Equal(t, tt.tokenSvcUserID, gotUserID)
		})
	}
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("  BEARER abc  "))
	assert.Empty(t, bearerToken("Bearer"))
	assert.Empty(t, bearerToken("Token abc"))
	assert.Empty(t, bearerToken(""))
}
