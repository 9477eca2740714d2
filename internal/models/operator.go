package models

// Operator represents the society office operator who issues receipts.
//
// The receipt book has a single operator configured out of band; the model
// exists so session tokens can carry an identity.
type Operator struct {
	// ID is a stable identifier for the operator (e.g., "office").
	ID string

	// Name is the display name printed in logs.
	Name string

	// PasswordHash is the bcrypt hash of the operator password.
	PasswordHash string
}
