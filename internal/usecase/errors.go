package usecase

import "errors"

// Error taxonomy surfaced to users. Provider and network failures outside
// this list are wrapped and passed through with their original message.
var (
	// ErrInvalidCredentials deliberately covers both bad passwords and
	// provider/network failures during sign-in.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountNotFound: the identity provider knows the user but the tree
	// database has no matching account record.
	ErrAccountNotFound = errors.New("user not found in the database")

	// ErrEmailInUse: registration attempted with an already registered email.
	ErrEmailInUse = errors.New("email already in use")

	// ErrMissingIdentifiers: privileged deletion called without both ids.
	// Checked locally, before any provider call.
	ErrMissingIdentifiers = errors.New("missing userId or shopId")

	// ErrSessionNotFound: logout or session lookup with an unknown token.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidOrderStatus: status update outside the allowed set.
	ErrInvalidOrderStatus = errors.New("invalid order status")

	// ErrShopNotLinked: a shop-scoped operation reached a session that never
	// converged on a shop id. A configuration problem, not a crash.
	ErrShopNotLinked = errors.New("laundry shop id not available for this session")
)
