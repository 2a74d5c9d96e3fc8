package domain

import (
	"errors"
	"time"
)

// ErrUsernameTaken is returned when registering a username that exists.
var ErrUsernameTaken = errors.New("username is taken")

// User is a registered account. Only the password hash is kept.
type User struct {
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}
