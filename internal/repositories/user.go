package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
)

// UserReadRepository provides read access to user records.
type UserReadRepository struct {
	db *sqlx.DB
}

// NewUserReadRepository creates a new UserReadRepository.
func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, is_artist, created_at
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := executor(ctx, r.db).GetContext(ctx, &user, query, id)

	logger.Log.Debugw("query", "sql", "users.GetByID", "id", id, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByIdentifier returns the user whose username or email equals the
// identifier, or nil when no user matches.
func (r *UserReadRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, is_artist, created_at
		FROM users
		WHERE username = $1 OR email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := executor(ctx, r.db).GetContext(ctx, &user, query, identifier)

	logger.Log.Debugw("query", "sql", "users.GetByIdentifier", "identifier", identifier, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ExistsByUsername reports whether a user with the username exists.
func (r *UserReadRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	err := executor(ctx, r.db).GetContext(ctx, &exists, query, username)

	logger.Log.Debugw("query", "sql", "users.ExistsByUsername", "username", username, "error", err)

	return exists, err
}

// ExistsByEmail reports whether a user with the email exists.
func (r *UserReadRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	err := executor(ctx, r.db).GetContext(ctx, &exists, query, email)

	logger.Log.Debugw("query", "sql", "users.ExistsByEmail", "email", email, "error", err)

	return exists, err
}

// EmailTakenByOther reports whether another user already owns the email.
func (r *UserReadRepository) EmailTakenByOther(ctx context.Context, email string, userID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`

	var exists bool
	err := executor(ctx, r.db).GetContext(ctx, &exists, query, email, userID)

	logger.Log.Debugw("query", "sql", "users.EmailTakenByOther", "email", email, "user_id", userID, "error", err)

	return exists, err
}

// CountAll returns the total number of users.
func (r *UserReadRepository) CountAll(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users`

	var count int64
	err := executor(ctx, r.db).GetContext(ctx, &count, query)
	return count, err
}

// UserWriteRepository provides write access to user records.
type UserWriteRepository struct {
	db *sqlx.DB
}

// NewUserWriteRepository creates a new UserWriteRepository.
func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the created row.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string, isArtist bool) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, is_artist, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, username, email, password_hash, is_artist, created_at
	`

	var user models.UserDB
	err := executor(ctx, r.db).GetContext(ctx, &user, query, username, email, passwordHash, isArtist)

	logger.Log.Debugw("query", "sql", "users.Save", "username", username, "email", email, "error", err)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateEmail replaces the user's email address.
func (r *UserWriteRepository) UpdateEmail(ctx context.Context, userID int64, email string) error {
	const query = `UPDATE users SET email = $2 WHERE id = $1`

	_, err := executor(ctx, r.db).ExecContext(ctx, query, userID, email)

	logger.Log.Debugw("query", "sql", "users.UpdateEmail", "user_id", userID, "error", err)

	return err
}

// UpdatePassword replaces the user's password hash.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $2 WHERE id = $1`

	_, err := executor(ctx, r.db).ExecContext(ctx, query, userID, passwordHash)

	logger.Log.Debugw("query", "sql", "users.UpdatePassword", "user_id", userID, "error", err)

	return err
}
