package query

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-accounts/internal/domain/model"
)

// GetAccount retrieves an account by ID.
type GetAccount struct {
	AccountID types.ID
}

func (q GetAccount) QueryName() string {
	return "accounts.get_account"
}

// GetAccountResult contains the account.
type GetAccountResult struct {
	Account *model.Account
}

// GetAccountHandler handles the GetAccount query.
type GetAccountHandler interface {
	Handle(ctx context.Context, qry GetAccount) (GetAccountResult, error)
}
