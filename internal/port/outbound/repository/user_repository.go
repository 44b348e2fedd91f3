package repository

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"
)

// UserRepository defines the interface for the denormalized user record.
type UserRepository interface {
	// SyncName overwrites the user record's first/last name copies. It is
	// called after every successful account update, whether or not a name
	// field changed, so a stale record self-heals on the next write. The
	// sync is not part of the account update's transaction; a crash in
	// between leaves the copy stale until then.
	SyncName(ctx context.Context, id types.ID, firstName, lastName *string) error
}
