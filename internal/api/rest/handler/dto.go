package handler

import "github.com/dtroode/postfeed-server/internal/model"

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func newTokenResponse(t model.Token) tokenResponse {
	return tokenResponse{AccessToken: t.AccessToken, TokenType: t.TokenType}
}

type createPostRequest struct {
	Text string `json:"text"`
}

type postIDResponse struct {
	PostID int64 `json:"post_id"`
}

type postsResponse struct {
	Posts []model.PostView `json:"posts"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}
