package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/receiptbook/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// PasswordAuthenticator checks the single operator password against a
// bcrypt hash taken from configuration.
type PasswordAuthenticator struct {
	operator models.Operator
}

// NewPasswordAuthenticator creates an authenticator for operator.
// operator.PasswordHash must be a bcrypt hash.
func NewPasswordAuthenticator(operator models.Operator) (*PasswordAuthenticator, error) {
	if _, err := bcrypt.Cost([]byte(operator.PasswordHash)); err != nil {
		return nil, fmt.Errorf("invalid operator password hash: %w", err)
	}
	return &PasswordAuthenticator{operator: operator}, nil
}

// Authenticate verifies the password, returning the operator if valid.
func (a *PasswordAuthenticator) Authenticate(_ context.Context, credential string) (*models.Operator, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(a.operator.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}
	op := a.operator
	return &op, nil
}

// HashPassword returns a bcrypt hash suitable for the operator password
// setting.
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", ErrWeakPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
