package auth

import (
	"context"

	"github.com/mmynk/receiptbook/internal/models"
)

// Authenticator defines the interface for operator authentication.
// This abstraction allows swapping the password check for another method
// without changing the service layer code.
type Authenticator interface {
	// Authenticate verifies the credential and returns the operator if successful.
	Authenticate(ctx context.Context, credential string) (*models.Operator, error)
}
