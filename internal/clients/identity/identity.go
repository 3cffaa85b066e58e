package identity

import (
	"context"
	"errors"
)

var (
	// ErrInvalidCredentials covers wrong password and unknown email alike;
	// callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailInUse is returned by SignUp for a duplicate email.
	ErrEmailInUse = errors.New("email already in use")
	// ErrAccountNotFound is returned by DeleteAccount for an unknown uid.
	ErrAccountNotFound = errors.New("identity account not found")
)

// Provider is the identity service behind login, registration and privileged
// account deletion. Implementations: the hosted REST provider (firebase.go)
// and a self-contained Postgres one (local.go).
type Provider interface {
	SignIn(ctx context.Context, email, password string) (string, error)
	SignUp(ctx context.Context, email, password string) (string, error)
	DeleteAccount(ctx context.Context, uid string) error
}
