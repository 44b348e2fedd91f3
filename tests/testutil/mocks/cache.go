package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-accounts/internal/domain/model"
)

// --- AccountCache Mock ---

// AccountCache is a mock implementation of cache.AccountCache.
type AccountCache struct {
	mu sync.RWMutex

	// Storage
	accounts map[string]*model.Account // by account ID

	// Call tracking
	Calls struct {
		Get    int
		Set    int
		Delete int
	}

	// Error injection
	Errors struct {
		Get    error
		Set    error
		Delete error
	}
}

// NewAccountCache creates a new mock AccountCache.
func NewAccountCache() *AccountCache {
	return &AccountCache{
		accounts: make(map[string]*model.Account),
	}
}

func (m *AccountCache) Get(ctx context.Context, accountID types.ID) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Get++

	if m.Errors.Get != nil {
		return nil, m.Errors.Get
	}

	return m.accounts[accountID.String()], nil
}

func (m *AccountCache) Set(ctx context.Context, account *model.Account, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Set++

	if m.Errors.Set != nil {
		return m.Errors.Set
	}

	m.accounts[account.ID] = account
	return nil
}

func (m *AccountCache) Delete(ctx context.Context, accountID types.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Delete++

	if m.Errors.Delete != nil {
		return m.Errors.Delete
	}

	delete(m.accounts, accountID.String())
	return nil
}

// Contains reports whether the cache holds an entry for the account.
func (m *AccountCache) Contains(accountID types.ID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.accounts[accountID.String()]
	return ok
}
