package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/postfeed-server/internal/logger"
	"github.com/dtroode/postfeed-server/internal/model"
)

// PostService defines post operations on behalf of an authenticated user.
type PostService interface {
	CreatePost(ctx context.Context, text string, userID int64) (int64, error)
	GetUserPosts(ctx context.Context, userID int64) ([]model.PostView, error)
	DeletePost(ctx context.Context, postID, userID int64) (bool, error)
}

// Post handles the post endpoints. Routes must sit behind the
// authentication middleware.
type Post struct {
	postService    PostService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewPost creates a new Post handler.
func NewPost(postService PostService, contextManager model.ContextManager, logger *logger.Logger) *Post {
	return &Post{
		postService:    postService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Post) Create(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req createPostRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	if err := model.ValidatePostText(req.Text); err != nil {
		writeError(c, err)
		return
	}

	postID, err := h.postService.CreatePost(c.Request.Context(), req.Text, userID)
	if err != nil {
		h.logger.Info("Post handler: create failed",
			"user_id", userID,
			"error", err.Error())
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, postIDResponse{PostID: postID})
}

func (h *Post) List(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	posts, err := h.postService.GetUserPosts(c.Request.Context(), userID)
	if err != nil {
		h.logger.Info("Post handler: list failed",
			"user_id", userID,
			"error", err.Error())
		writeError(c, err)
		return
	}
	if posts == nil {
		posts = []model.PostView{}
	}

	c.JSON(http.StatusOK, postsResponse{Posts: posts})
}

func (h *Post) Delete(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || postID <= 0 {
		writeError(c, &model.ValidationError{Field: "post_id", Message: "Post id must be a positive integer"})
		return
	}

	deleted, err := h.postService.DeletePost(c.Request.Context(), postID, userID)
	if err != nil {
		h.logger.Info("Post handler: delete failed",
			"user_id", userID,
			"post_id", postID,
			"error", err.Error())
		writeError(c, err)
		return
	}
	if !deleted {
		writeError(c, model.ErrPostNotFound)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Post) userID(c *gin.Context) (int64, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		writeError(c, model.ErrInvalidToken)
		return 0, false
	}
	return userID, true
}
