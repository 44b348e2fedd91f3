package cache

import (
	"context"
	"time"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-accounts/internal/domain/model"
)

// AccountCache defines the interface for account snapshot caching. The read
// path populates it; every successful update invalidates it.
type AccountCache interface {
	// Get retrieves an account from the cache.
	// Returns nil if not found (cache miss).
	Get(ctx context.Context, accountID types.ID) (*model.Account, error)

	// Set stores an account in the cache with TTL.
	Set(ctx context.Context, account *model.Account, ttl time.Duration) error

	// Delete removes an account from the cache.
	Delete(ctx context.Context, accountID types.ID) error
}
