package event

import (
	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-accounts/internal/domain/model"
)

// AccountUpdated is emitted once per successful account update. It carries
// the post-update snapshot, the acting user, and exactly the field names the
// update builder recorded. Delivery is best-effort: the storage write is the
// source of truth and a failed publish never rolls it back.
type AccountUpdated struct {
	BaseEvent
	Account       *model.Account `json:"account"`
	UpdatedBy     types.ID       `json:"updated_by"`
	UpdatedFields []string       `json:"updated_fields"`
}

// NewAccountUpdated creates a new AccountUpdated event.
func NewAccountUpdated(account *model.Account, updatedBy types.ID, updatedFields []string) AccountUpdated {
	return AccountUpdated{
		BaseEvent:     NewBaseEvent(EventTypeAccountUpdated, types.ID(account.ID), AggregateTypeAccount),
		Account:       account,
		UpdatedBy:     updatedBy,
		UpdatedFields: updatedFields,
	}
}
