package service

import (
	"errors"
	"strings"
)

const MinPasswordLength = 8

var (
	ErrUsernameEmpty     = errors.New("username is required")
	ErrUsernameUnchanged = errors.New("username is unchanged")
	ErrCurrentPassword   = errors.New("current password is required")
	ErrPasswordTooShort  = errors.New("new password must be at least 8 characters")
	ErrPasswordMismatch  = errors.New("passwords do not match")
)

// ValidateUsername returns the trimmed username when it can replace current.
func ValidateUsername(current, next string) (string, error) {
	trimmed := strings.TrimSpace(next)
	if trimmed == "" {
		return "", ErrUsernameEmpty
	}
	if next == current || trimmed == current {
		return "", ErrUsernameUnchanged
	}
	return trimmed, nil
}

// ValidatePasswordChange checks the change form. Nothing is verified against
// a stored password: the concierge keeps none.
func ValidatePasswordChange(current, next, confirm string) error {
	if current == "" {
		return ErrCurrentPassword
	}
	if len(next) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if next != confirm {
		return ErrPasswordMismatch
	}
	return nil
}
