package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/dtroode/postfeed-server/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

var postColumns = []string{"id", "text", "user_id", "created_at", "updated_at"}

// PostRepository implements model.PostStore using SQLite.
type PostRepository struct {
	db  *DB
	now func() time.Time
}

// NewPostRepository creates a new SQLite-backed PostRepository.
func NewPostRepository(db *DB) *PostRepository {
	return &PostRepository{db: db, now: time.Now}
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (model.Post, error) {
	query, args, err := qb().Select(postColumns...).From("posts").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return model.Post{}, fmt.Errorf("build query post: %w", err)
	}

	var post model.Post
	err = r.db.SqlDB.QueryRowContext(ctx, query, args...).Scan(
		&post.ID, &post.Text, &post.UserID, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("query post by id: %w", err)
	}
	return post, nil
}

func (r *PostRepository) GetByUserID(ctx context.Context, userID int64) ([]model.Post, error) {
	query, args, err := qb().Select(postColumns...).
		From("posts").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query posts: %w", err)
	}

	rows, err := r.db.SqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query posts by user id: %w", err)
	}
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		var post model.Post
		if err := rows.Scan(&post.ID, &post.Text, &post.UserID, &post.CreatedAt, &post.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) Create(ctx context.Context, text string, userID int64) (model.Post, error) {
	now := r.now().UTC()
	query, args, err := qb().Insert("posts").
		Columns("text", "user_id", "created_at", "updated_at").
		Values(text, userID, now, now).
		ToSql()
	if err != nil {
		return model.Post{}, fmt.Errorf("build insert post: %w", err)
	}

	var id int64
	err = r.db.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		id, err = result.LastInsertId()
		return err
	})
	if err != nil {
		return model.Post{}, fmt.Errorf("insert post: %w", err)
	}

	return model.Post{
		ID:        id,
		Text:      text,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Delete removes the post in a single statement scoped by owner.
func (r *PostRepository) Delete(ctx context.Context, postID, userID int64) (bool, error) {
	query, args, err := qb().Delete("posts").
		Where(sq.Eq{"id": postID, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete post: %w", err)
	}

	var affected int64
	err = r.db.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}
	return affected > 0, nil
}
