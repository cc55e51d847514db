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

var _ model.UserStore = (*UserRepository)(nil)

var userColumns = []string{"id", "email", "hashed_password", "is_active", "created_at", "updated_at"}

// UserRepository implements model.UserStore using SQLite.
type UserRepository struct {
	db     *DB
	hasher model.PasswordHasher
	now    func() time.Time
}

// NewUserRepository creates a new SQLite-backed UserRepository.
func NewUserRepository(db *DB, hasher model.PasswordHasher) *UserRepository {
	return &UserRepository{db: db, hasher: hasher, now: time.Now}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getOne(ctx, sq.Eq{"email": email}, "query user by email")
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, "query user by id")
}

func (r *UserRepository) getOne(ctx context.Context, where sq.Eq, op string) (model.User, error) {
	query, args, err := qb().Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return model.User{}, fmt.Errorf("build %s: %w", op, err)
	}

	var user model.User
	err = r.db.SqlDB.QueryRowContext(ctx, query, args...).Scan(
		&user.ID, &user.Email, &user.HashedPassword, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, email, password string) (model.User, error) {
	hashed, err := r.hasher.Hash(password)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := r.now().UTC()
	query, args, err := qb().Insert("users").
		Columns("email", "hashed_password", "is_active", "created_at", "updated_at").
		Values(email, hashed, true, now, now).
		ToSql()
	if err != nil {
		return model.User{}, fmt.Errorf("build insert user: %w", err)
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
		if isUniqueConstraintError(err) {
			return model.User{}, model.ErrDuplicateEmail
		}
		return model.User{}, fmt.Errorf("insert user: %w", err)
	}

	return model.User{
		ID:             id,
		Email:          email,
		HashedPassword: hashed,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func (r *UserRepository) VerifyCredentials(ctx context.Context, email, password string) (model.User, error) {
	user, err := r.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, err
	}

	ok, err := r.hasher.Verify(password, user.HashedPassword)
	if err != nil {
		return model.User{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return model.User{}, model.ErrInvalidCredentials
	}
	return user, nil
}
