package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dtroode/postfeed-server/internal/logger"
	"github.com/dtroode/postfeed-server/internal/model"
)

// Post orchestrates post operations and the per-user list cache.
type Post struct {
	postStore model.PostStore
	userStore model.UserStore
	cache     model.PostListCache
	cacheTTL  time.Duration
	logger    *logger.Logger
}

func NewPost(
	postStore model.PostStore,
	userStore model.UserStore,
	cache model.PostListCache,
	cacheTTL time.Duration,
	logger *logger.Logger,
) *Post {
	return &Post{
		postStore: postStore,
		userStore: userStore,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

func userPostsKey(userID int64) string {
	return fmt.Sprintf("user_posts_%d", userID)
}

func (s *Post) CreatePost(ctx context.Context, text string, userID int64) (int64, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return 0, err
	}

	post, err := s.postStore.Create(ctx, text, userID)
	if err != nil {
		s.logger.Error("Post service: failed to create post",
			"user_id", userID,
			"error", err.Error())
		return 0, fmt.Errorf("failed to create post: %w", err)
	}

	s.invalidate(userID)

	s.logger.Info("Post service: post created",
		"user_id", userID,
		"post_id", post.ID)

	return post.ID, nil
}

// GetUserPosts serves the list from cache when present, loading and
// caching it otherwise. Empty lists are cached too. Callers get their own
// copy of the list.
func (s *Post) GetUserPosts(ctx context.Context, userID int64) ([]model.PostView, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	key := userPostsKey(userID)
	if views, ok := s.cache.Get(key); ok {
		s.logger.Debug("Post service: cache hit",
			"key", key)
		return slices.Clone(views), nil
	}

	posts, err := s.postStore.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Post service: failed to get posts",
			"user_id", userID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}

	views := make([]model.PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, p.View())
	}
	s.cache.Set(key, slices.Clone(views), s.cacheTTL)

	return views, nil
}

// DeletePost reports false when the post does not exist or belongs to
// someone else.
func (s *Post) DeletePost(ctx context.Context, postID, userID int64) (bool, error) {
	deleted, err := s.postStore.Delete(ctx, postID, userID)
	if err != nil {
		s.logger.Error("Post service: failed to delete post",
			"user_id", userID,
			"post_id", postID,
			"error", err.Error())
		return false, fmt.Errorf("failed to delete post: %w", err)
	}
	if !deleted {
		s.logger.Info("Post service: post not found or not owned",
			"user_id", userID,
			"post_id", postID)
		return false, nil
	}

	s.invalidate(userID)

	s.logger.Info("Post service: post deleted",
		"user_id", userID,
		"post_id", postID)

	return true, nil
}

func (s *Post) ensureUser(ctx context.Context, userID int64) error {
	_, err := s.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrUserNotFound
	}
	if err != nil {
		s.logger.Error("Post service: failed to get user",
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to get user by id: %w", err)
	}
	return nil
}

// invalidate drops every cached entry whose key contains the user's list key.
// The match is a plain substring, so user 7 also clears user 70.
func (s *Post) invalidate(userID int64) {
	n := s.cache.DeleteMatching(userPostsKey(userID))
	s.logger.Debug("Post service: invalidated cached lists",
		"user_id", userID,
		"removed", n)
}
