package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/postfeed-server/internal/mocks"
	"github.com/dtroode/postfeed-server/internal/model"
	"github.com/dtroode/postfeed-server/internal/testutil"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *mocks.AuthService) {
	t.Helper()
	svc := mocks.NewAuthService(t)
	h := NewAuth(svc, testutil.MakeNoopLogger())

	r := gin.New()
	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)
	return r, svc
}

func TestAuth_Signup(t *testing.T) {
	r, svc := newAuthRouter(t)
	svc.On("Register", mock.Anything, "user@example.com", "Secret123").
		Return(model.Token{AccessToken: "tok", TokenType: "bearer", ExpiresAt: time.Now()}, nil).Once()

	w := doJSON(t, r, http.MethodPost, "/auth/signup", `{"email":"user@example.com","password":"Secret123"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"access_token":"tok","token_type":"bearer"}`, w.Body.String())
}

func TestAuth_Signup_EmailTaken(t *testing.T) {
	r, svc := newAuthRouter(t)
	svc.On("Register", mock.Anything, "user@example.com", "Secret123").
		Return(model.Token{}, model.ErrEmailTaken).Once()

	w := doJSON(t, r, http.MethodPost, "/auth/signup", `{"email":"user@example.com","password":"Secret123"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"detail":"User with this email already exists"}`, w.Body.String())
}

func TestAuth_Signup_InvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantDetail string
	}{
		{name: "malformed json", body: `{"email":`, wantDetail: "Invalid request body"},
		{name: "missing email", body: `{"password":"Secret123"}`, wantDetail: "Invalid request body"},
		{name: "bad email", body: `{"email":"not-an-email","password":"Secret123"}`, wantDetail: "Invalid request body"},
		{name: "short password", body: `{"email":"a@b.co","password":"Sh0rt"}`, wantDetail: "Password must be at least 8 characters long"},
		{name: "no uppercase", body: `{"email":"a@b.co","password":"secret123"}`, wantDetail: "Password must contain at least one uppercase letter"},
		{name: "no digit", body: `{"email":"a@b.co","password":"SecretPass"}`, wantDetail: "Password must contain at least one number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newAuthRouter(t)

			w := doJSON(t, r, http.MethodPost, "/auth/signup", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.JSONEq(t, `{"detail":"`+tt.wantDetail+`"}`, w.Body.String())
		})
	}
}

func TestAuth_Login(t *testing.T) {
	r, svc := newAuthRouter(t)
	svc.On("Login", mock.Anything, "user@example.com", "whatever").
		Return(model.Token{AccessToken: "tok", TokenType: "bearer"}, nil).Once()

	w := doJSON(t, r, http.MethodPost, "/auth/login", `{"email":"user@example.com","password":"whatever"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"access_token":"tok","token_type":"bearer"}`, w.Body.String())
}

func TestAuth_Login_InvalidCredentials(t *testing.T) {
	r, svc := newAuthRouter(t)
	svc.On("Login", mock.Anything, "user@example.com", "Wrong1234").
		Return(model.Token{}, model.ErrInvalidCredentials).Once()

	w := doJSON(t, r, http.MethodPost, "/auth/login", `{"email":"user@example.com","password":"Wrong1234"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	assert.JSONEq(t, `{"detail":"Invalid email or password"}`, w.Body.String())
}

func TestAuth_Login_InternalError(t *testing.T) {
	r, svc := newAuthRouter(t)
	svc.On("Login", mock.Anything, "user@example.com", "Secret123").
		Return(model.Token{}, assert.AnError).Once()

	w := doJSON(t, r, http.MethodPost, "/auth/login", `{"email":"user@example.com","password":"Secret123"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"internal server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
