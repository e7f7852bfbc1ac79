package verify

import "context"

// Store is an abstraction over the per-user verification flag that
// gates bot commands
type Store interface {
	// IsVerified reports whether the given user passed verification
	IsVerified(ctx context.Context, userID int64) (bool, error)

	// SetVerified sets the given user's verification flag.
	// Setting the same value repeatedly is a no-op in effect
	SetVerified(ctx context.Context, userID int64, verified bool) error
}
