package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"clubhub/internal/application"
	"clubhub/internal/domain"
	"clubhub/internal/ports"
)

// RegisterCommand creates an account. Inputs are trimmed before the
// account rules are checked.
type RegisterCommand struct {
	users    ports.UserRepository
	Username string
	Password string
	Confirm  string
	now      func() time.Time
}

// NewRegisterCommand creates a new RegisterCommand
func NewRegisterCommand(users ports.UserRepository, username, password, confirm string) *RegisterCommand {
	return &RegisterCommand{
		users:    users,
		Username: strings.TrimSpace(username),
		Password: strings.TrimSpace(password),
		Confirm:  strings.TrimSpace(confirm),
		now:      time.Now,
	}
}

// Validate checks the registration form
func (c *RegisterCommand) Validate() error {
	return application.ValidateCredentials(c.Username, c.Password, c.Confirm)
}

// Execute runs the register command
func (c *RegisterCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	err = c.users.CreateUser(ctx, domain.User{
		Username:     c.Username,
		PasswordHash: hash,
		CreatedAt:    c.now().UTC(),
	})
	if errors.Is(err, domain.ErrUsernameTaken) {
		return nil, &application.ValidationError{
			Field:   "username",
			Message: fmt.Sprintf("%q is taken", c.Username),
			Err:     err,
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &Result{Message: fmt.Sprintf("Successfully created account %s", c.Username)}, nil
}

// LoginCommand checks an account's password
type LoginCommand struct {
	users    ports.UserRepository
	Username string
	Password string
}

// NewLoginCommand creates a new LoginCommand
func NewLoginCommand(users ports.UserRepository, username, password string) *LoginCommand {
	return &LoginCommand{
		users:    users,
		Username: strings.TrimSpace(username),
		Password: strings.TrimSpace(password),
	}
}

// Validate checks that both fields are present
func (c *LoginCommand) Validate() error {
	if err := application.ValidateRequired("username", c.Username); err != nil {
		return err
	}
	return application.ValidateRequired("password", c.Password)
}

// Execute runs the login command
func (c *LoginCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	user, ok, err := c.users.FindUser(ctx, c.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if !ok {
		return nil, application.ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(c.Password)); err != nil {
		return nil, application.ErrBadCredentials
	}

	return &Result{Message: fmt.Sprintf("Welcome back, %s", user.Username)}, nil
}
