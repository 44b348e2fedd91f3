// Package mocks provides mock implementations of ports for testing.
package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-accounts/internal/domain/model"
	"github.com/0xsj/overwatch-accounts/internal/port/outbound/repository"
)

// --- AccountRepository Mock ---

// AccountRepository is a mock implementation of repository.AccountRepository.
// It keeps accounts in memory and applies sparse set documents the way the
// real store does, so handler tests observe genuine post-update snapshots.
type AccountRepository struct {
	mu sync.RWMutex

	// Storage
	accounts map[string]*model.Account // by ID

	// Last set document seen by ApplyUpdate
	LastSet map[string]any

	// Call tracking
	Calls struct {
		FindOwnerUserID int
		FindByID        int
		ApplyUpdate     int
	}

	// Error injection
	Errors struct {
		FindOwnerUserID error
		FindByID        error
		ApplyUpdate     error
	}
}

// NewAccountRepository creates a new mock AccountRepository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*model.Account),
	}
}

// AddAccount seeds an account into the mock store.
func (m *AccountRepository) AddAccount(account *model.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
}

// GetAccount returns the stored account for assertions.
func (m *AccountRepository) GetAccount(id string) *model.Account {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.accounts[id]
}

func (m *AccountRepository) FindOwnerUserID(ctx context.Context, id types.ID) (types.ID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.FindOwnerUserID++

	if m.Errors.FindOwnerUserID != nil {
		return "", m.Errors.FindOwnerUserID
	}

	account, ok := m.accounts[id.String()]
	if !ok {
		return "", repository.ErrNotFound
	}
	return types.ID(account.OwnerUserID), nil
}

func (m *AccountRepository) FindByID(ctx context.Context, id types.ID) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.FindByID++

	if m.Errors.FindByID != nil {
		return nil, m.Errors.FindByID
	}

	account, ok := m.accounts[id.String()]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *account
	return &copied, nil
}

func (m *AccountRepository) ApplyUpdate(ctx context.Context, id types.ID, set map[string]any) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.ApplyUpdate++
	m.LastSet = set

	if m.Errors.ApplyUpdate != nil {
		return nil, m.Errors.ApplyUpdate
	}

	account, ok := m.accounts[id.String()]
	if !ok {
		return nil, repository.ErrNotFound
	}

	for path, value := range set {
		applyPath(account, path, value)
	}

	copied := *account
	return &copied, nil
}

// applyPath mirrors the dot-path $set semantics of the real store for the
// paths this service writes.
func applyPath(account *model.Account, path string, value any) {
	switch path {
	case "name":
		account.Name = asStringPtr(value)
	case "username":
		account.Username = asStringPtr(value)
	case "dob":
		account.Dob = asStringPtr(value)
	case "phone":
		account.Phone = asStringPtr(value)
	case "note":
		account.Note = asStringPtr(value)
	case "profile.firstName":
		account.Profile.FirstName = asStringPtr(value)
	case "profile.lastName":
		account.Profile.LastName = asStringPtr(value)
	case "profile.bio":
		account.Profile.Bio = asStringPtr(value)
	case "profile.language":
		account.Profile.Language = asStringPtr(value)
	case "profile.currency":
		account.Profile.Currency = asStringPtr(value)
	case "profile.suspend":
		account.Profile.Suspend = asBoolPtr(value)
	case "profile.transactionId":
		account.Profile.TransactionID = asStringPtr(value)
	case "profile.name":
		account.Profile.Name = asStringPtr(value)
	case "profile.username":
		account.Profile.Username = asStringPtr(value)
	case "profile.dob":
		account.Profile.Dob = asStringPtr(value)
	case "profile.phone":
		account.Profile.Phone = asStringPtr(value)
	case "profile.picture":
		account.Profile.Picture = asStringPtr(value)
	case "nextKin":
		if v, ok := value.(model.NextKin); ok {
			account.NextKin = &v
		} else {
			account.NextKin = nil
		}
	case "userPreferences":
		if v, ok := value.(model.UserPreferences); ok {
			account.UserPreferences = &v
		} else {
			account.UserPreferences = nil
		}
	case "contactInfo":
		if v, ok := value.(model.ContactInfo); ok {
			account.ContactInfo = &v
		} else {
			account.ContactInfo = nil
		}
	case "govId":
		if v, ok := value.([]model.GovIDEntry); ok {
			account.GovID = v
		}
	case "userBanksDetail":
		if v, ok := value.([]model.BankDetail); ok {
			account.UserBanksDetail = v
		}
	case "poAddress":
		account.POAddress = value
	case "updatedAt":
		if v, ok := value.(time.Time); ok {
			account.UpdatedAt = v
		}
	}
}

func asStringPtr(value any) *string {
	if v, ok := value.(string); ok {
		return &v
	}
	return nil
}

func asBoolPtr(value any) *bool {
	if v, ok := value.(bool); ok {
		return &v
	}
	return nil
}

// --- UserRepository Mock ---

// SyncNameCall records one SyncName invocation.
type SyncNameCall struct {
	ID        types.ID
	FirstName *string
	LastName  *string
}

// UserRepository is a mock implementation of repository.UserRepository.
type UserRepository struct {
	mu sync.RWMutex

	// Recorded calls, in order
	SyncNameCalls []SyncNameCall

	// Call tracking
	Calls struct {
		SyncName int
	}

	// Error injection
	Errors struct {
		SyncName error
	}
}

// NewUserRepository creates a new mock UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (m *UserRepository) SyncName(ctx context.Context, id types.ID, firstName, lastName *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.SyncName++

	if m.Errors.SyncName != nil {
		return m.Errors.SyncName
	}

	m.SyncNameCalls = append(m.SyncNameCalls, SyncNameCall{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
	})
	return nil
}
