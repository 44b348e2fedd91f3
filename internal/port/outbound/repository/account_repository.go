package repository

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-accounts/internal/domain/model"
)

// AccountRepository defines the interface for account persistence. The
// backing store guarantees ApplyUpdate is linearizable per document ID:
// concurrent updates to the same account do not interleave field writes.
type AccountRepository interface {
	// FindOwnerUserID returns the owning user ID for an account without
	// loading the full document. Returns ErrNotFound if no account exists.
	FindOwnerUserID(ctx context.Context, id types.ID) (types.ID, error)

	// FindByID retrieves a full account snapshot.
	FindByID(ctx context.Context, id types.ID) (*model.Account, error)

	// ApplyUpdate atomically applies the sparse set document to the
	// account and returns the post-update snapshot. Returns ErrNotFound
	// if the account disappeared between authorization and apply; that is
	// terminal, not retried.
	ApplyUpdate(ctx context.Context, id types.ID, set map[string]any) (*model.Account, error)
}
