package ports

import (
	"context"

	"clubhub/internal/domain"
)

// UserRepository stores registered accounts
type UserRepository interface {
	// CreateUser stores a new account, failing with domain.ErrUsernameTaken
	// when the username exists
	CreateUser(ctx context.Context, user domain.User) error

	// FindUser returns the account for username, ok == false when none
	FindUser(ctx context.Context, username string) (user domain.User, ok bool, err error)
}
