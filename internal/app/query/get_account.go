package query

import (
	"context"

	domainerror "github.com/0xsj/overwatch-accounts/internal/domain/error"
	"github.com/0xsj/overwatch-accounts/internal/port/inbound/query"
	"github.com/0xsj/overwatch-accounts/internal/port/outbound/cache"
	"github.com/0xsj/overwatch-accounts/internal/port/outbound/repository"
)

// getAccountHandler implements query.GetAccountHandler.
type getAccountHandler struct {
	accountRepo  repository.AccountRepository
	accountCache cache.AccountCache
}

// NewGetAccountHandler creates a new GetAccountHandler.
func NewGetAccountHandler(
	accountRepo repository.AccountRepository,
	accountCache cache.AccountCache,
) query.GetAccountHandler {
	return &getAccountHandler{
		accountRepo:  accountRepo,
		accountCache: accountCache,
	}
}

func (h *getAccountHandler) Handle(ctx context.Context, qry query.GetAccount) (query.GetAccountResult, error) {
	if qry.AccountID.IsEmpty() {
		return query.GetAccountResult{}, domainerror.ErrAccountIDRequired
	}

	// Try cache first
	if h.accountCache != nil {
		account, err := h.accountCache.Get(ctx, qry.AccountID)
		if err == nil && account != nil {
			return query.GetAccountResult{Account: account}, nil
		}
	}

	// Fallback to repository
	account, err := h.accountRepo.FindByID(ctx, qry.AccountID)
	if err != nil {
		return query.GetAccountResult{}, domainerror.ErrAccountNotFound
	}

	// Populate cache
	if h.accountCache != nil {
		_ = h.accountCache.Set(ctx, account, 0) // Use default TTL
	}

	return query.GetAccountResult{Account: account}, nil
}
