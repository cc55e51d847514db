package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/postfeed-server/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	db *Connection
}

func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (model.Post, error) {
	query := `SELECT id, text, user_id, created_at, updated_at
			  FROM posts WHERE id = $1`

	var post model.Post
	err := r.db.QueryRow(ctx, query, id).Scan(
		&post.ID, &post.Text, &post.UserID, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

func (r *PostRepository) GetByUserID(ctx context.Context, userID int64) ([]model.Post, error) {
	query := `SELECT id, text, user_id, created_at, updated_at
			  FROM posts WHERE user_id = $1
			  ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts by user id: %w", err)
	}
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		var post model.Post
		if err := rows.Scan(&post.ID, &post.Text, &post.UserID, &post.CreatedAt, &post.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepository) Create(ctx context.Context, text string, userID int64) (model.Post, error) {
	query := `INSERT INTO posts (text, user_id)
			  VALUES ($1, $2)
			  RETURNING id, text, user_id, created_at, updated_at`

	var savedPost model.Post
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query, text, userID).Scan(
			&savedPost.ID, &savedPost.Text, &savedPost.UserID, &savedPost.CreatedAt, &savedPost.UpdatedAt,
		)
	})
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	return savedPost, nil
}

// Delete removes the post in a single statement scoped by owner.
func (r *PostRepository) Delete(ctx context.Context, postID, userID int64) (bool, error) {
	query := `DELETE FROM posts WHERE id = $1 AND user_id = $2`

	var deleted bool
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, query, postID, userID)
		if err != nil {
			return err
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	return deleted, nil
}
