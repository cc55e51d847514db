package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/postfeed-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db     *Connection
	hasher model.PasswordHasher
}

func NewUserRepository(db *Connection, hasher model.PasswordHasher) *UserRepository {
	return &UserRepository{
		db:     db,
		hasher: hasher,
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	query := `SELECT id, email, hashed_password, is_active, created_at, updated_at
			  FROM users WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.HashedPassword, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	query := `SELECT id, email, hashed_password, is_active, created_at, updated_at
			  FROM users WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.HashedPassword, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, email, password string) (model.User, error) {
	hashed, err := r.hasher.Hash(password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	query := `INSERT INTO users (email, hashed_password)
			  VALUES ($1, $2)
			  RETURNING id, email, hashed_password, is_active, created_at, updated_at`

	var savedUser model.User
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query, email, hashed).Scan(
			&savedUser.ID, &savedUser.Email, &savedUser.HashedPassword,
			&savedUser.IsActive, &savedUser.CreatedAt, &savedUser.UpdatedAt,
		)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrDuplicateEmail
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
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
		return model.User{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return model.User{}, model.ErrInvalidCredentials
	}

	return user, nil
}
