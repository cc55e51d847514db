package model

import (
	"context"
	"time"
)

// MaxPostLength is the maximum number of characters in a post.
const MaxPostLength = 250

// PostStore defines persistence operations for posts.
type PostStore interface {
	GetByID(ctx context.Context, id int64) (Post, error)
	GetByUserID(ctx context.Context, userID int64) ([]Post, error)
	Create(ctx context.Context, text string, userID int64) (Post, error)
	// Delete removes the post only when it belongs to userID.
	// It reports false when nothing matched.
	Delete(ctx context.Context, postID, userID int64) (bool, error)
}

// Post represents a stored post entity.
type Post struct {
	ID        int64
	Text      string
	UserID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostView is the owner-less projection of a post returned to clients.
type PostView struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// View projects the post to its client representation.
func (p Post) View() PostView {
	return PostView{
		ID:        p.ID,
		Text:      p.Text,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
