package command

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-accounts/internal/domain/model"
	"github.com/0xsj/overwatch-accounts/internal/domain/patch"
	"github.com/0xsj/overwatch-accounts/internal/port/outbound/authz"
)

// UpdateAccount applies a partial update to an account. Every field is
// optional; a field left Absent is untouched, an explicit Null clears it.
// TargetAccountID is the admin-on-behalf-of path and carries a stricter
// capability requirement than a self-update.
type UpdateAccount struct {
	Actor           authz.Principal
	TargetAccountID types.Optional[types.ID]

	Bio           patch.Field[string]
	CurrencyCode  patch.Field[string]
	FirstName     patch.Field[string]
	Language      patch.Field[string]
	LastName      patch.Field[string]
	Suspend       patch.Field[bool]
	TransactionID patch.Field[string]
	Name          patch.Field[string]
	Note          patch.Field[string]
	Picture       patch.Field[string]
	Username      patch.Field[string]
	Dob           patch.Field[string]
	Phone         patch.Field[string]

	NextKin         patch.Field[model.NextKin]
	UserPreferences patch.Field[model.UserPreferences]
	ContactInfo     patch.Field[model.ContactInfo]

	GovID           patch.Field[[]model.GovIDEntry]
	POAddress       patch.Field[[]model.POAddressEntry]
	UserBanksDetail patch.Field[[]model.BankDetail]
}

func (c UpdateAccount) CommandName() string {
	return "accounts.update_account"
}

// UpdateAccountResult contains the post-update snapshot and the canonical
// names of the fields that changed.
type UpdateAccountResult struct {
	Account       *model.Account
	UpdatedFields []string
}

// UpdateAccountHandler handles the UpdateAccount command.
type UpdateAccountHandler interface {
	Handle(ctx context.Context, cmd UpdateAccount) (UpdateAccountResult, error)
}
