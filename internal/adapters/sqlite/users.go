package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"

	"clubhub/internal/domain"
	"clubhub/internal/ports"
)

// Ensure Store implements UserRepository
var _ ports.UserRepository = (*Store)(nil)

// CreateUser stores a new account
func (s *Store) CreateUser(ctx context.Context, user domain.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (username, password_hash, created_at)
		VALUES (?, ?, ?)
	`, user.Username, user.PasswordHash, user.CreatedAt.UnixNano())

	var sqlErr sqlite3.Error
	if errors.As(err, &sqlErr) && sqlErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return domain.ErrUsernameTaken
	}
	return err
}

// FindUser looks an account up by username
func (s *Store) FindUser(ctx context.Context, username string) (domain.User, bool, error) {
	var user domain.User
	var created int64
	err := s.db.QueryRowContext(ctx, `
		SELECT username, password_hash, created_at
		FROM users WHERE username = ?
	`, username).Scan(&user.Username, &user.PasswordHash, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, false, nil
	}
	if err != nil {
		return domain.User{}, false, err
	}
	user.CreatedAt = time.Unix(0, created).UTC()
	return user, true, nil
}
