package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Profile is the local record mirroring a subset of identity
// attributes. Exactly one row exists per authenticated email.
type Profile struct {
	ID        uuid.UUID
	Email     string
	Username  string
	CreatedAt time.Time
}

// Store persists profiles keyed by email.
type Store interface {
	// FindByEmail returns the profile for email, or nil when absent.
	FindByEmail(ctx context.Context, email string) (*Profile, error)

	// Insert creates the profile if no row with its email exists.
	// A row already present is not an error: Insert reports
	// created=false and succeeds. Implementations must make this
	// atomic; two concurrent inserts for the same email yield one row.
	Insert(ctx context.Context, p Profile) (created bool, err error)
}
