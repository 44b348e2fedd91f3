package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-accounts/internal/app/service"
	domainerror "github.com/0xsj/overwatch-accounts/internal/domain/error"
	"github.com/0xsj/overwatch-accounts/internal/domain/event"
	"github.com/0xsj/overwatch-accounts/internal/domain/patch"
	"github.com/0xsj/overwatch-accounts/internal/domain/schema"
	"github.com/0xsj/overwatch-accounts/internal/port/inbound/command"
	"github.com/0xsj/overwatch-accounts/internal/port/outbound/authz"
	"github.com/0xsj/overwatch-accounts/internal/port/outbound/cache"
	"github.com/0xsj/overwatch-accounts/internal/port/outbound/messaging"
	"github.com/0xsj/overwatch-accounts/internal/port/outbound/repository"
)

// updateAccountHandler implements command.UpdateAccountHandler.
type updateAccountHandler struct {
	accountRepo  repository.AccountRepository
	userRepo     repository.UserRepository
	accountCache cache.AccountCache
	publisher    messaging.EventPublisher
	authorizer   authz.Authorizer
	schema       *schema.Schema
}

// NewUpdateAccountHandler creates a new UpdateAccountHandler.
func NewUpdateAccountHandler(
	accountRepo repository.AccountRepository,
	userRepo repository.UserRepository,
	accountCache cache.AccountCache,
	publisher messaging.EventPublisher,
	authorizer authz.Authorizer,
) command.UpdateAccountHandler {
	return &updateAccountHandler{
		accountRepo:  accountRepo,
		userRepo:     userRepo,
		accountCache: accountCache,
		publisher:    publisher,
		authorizer:   authorizer,
		schema:       schema.New(),
	}
}

func (h *updateAccountHandler) Handle(ctx context.Context, cmd command.UpdateAccount) (command.UpdateAccountResult, error) {
	// Resolve the target and gate on the caller's capabilities before
	// anything else; no storage mutation happens past a denial.
	accountID, err := h.authorize(ctx, cmd)
	if err != nil {
		return command.UpdateAccountResult{}, err
	}

	if code, ok := cmd.CurrencyCode.Value(); ok && !service.KnownCurrency(code) {
		return command.UpdateAccountResult{}, fmt.Errorf("%w: no currency has code %q", domainerror.ErrUnknownCurrency, code)
	}

	upd, err := patch.Build(entries(cmd))
	if err != nil {
		return command.UpdateAccountResult{}, err
	}
	upd.Set["updatedAt"] = types.Now().Time()

	// Defense in depth: the input was shape-validated at the boundary, but
	// re-check the assembled update so policy/schema drift is caught here
	// rather than in storage.
	if err := h.schema.ValidateUpdate(upd.Set); err != nil {
		return command.UpdateAccountResult{}, err
	}

	account, err := h.accountRepo.ApplyUpdate(ctx, accountID, upd.Set)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return command.UpdateAccountResult{}, domainerror.ErrAccountNotFound
		}
		return command.UpdateAccountResult{}, err
	}

	// Always re-sync the denormalized user record from the post-update
	// snapshot, even when no name field was part of this call.
	if err := h.userRepo.SyncName(ctx, accountID, account.Profile.FirstName, account.Profile.LastName); err != nil {
		return command.UpdateAccountResult{}, fmt.Errorf("failed to sync user record: %w", err)
	}

	// Invalidate cache
	_ = h.accountCache.Delete(ctx, accountID)

	// Publish event. The mutation is already committed; a failed publish
	// never surfaces as the operation's result.
	_ = h.publisher.Publish(ctx, event.NewAccountUpdated(account, cmd.Actor.UserID, upd.Fields))

	return command.UpdateAccountResult{
		Account:       account,
		UpdatedFields: upd.Fields,
	}, nil
}

// authorize resolves the target account and runs the capability check for
// the applicable path. An explicit target is the admin-on-behalf-of path and
// requires the generic create capability; a self-update is checked against
// the scoped update capability with the owner supplied, so the evaluation
// can special-case self-ownership.
func (h *updateAccountHandler) authorize(ctx context.Context, cmd command.UpdateAccount) (types.ID, error) {
	accountID := cmd.Actor.AccountID
	if cmd.TargetAccountID.IsPresent() {
		accountID = cmd.TargetAccountID
	}
	if !accountID.IsPresent() {
		return types.ID(""), domainerror.ErrAccessDenied
	}
	targetID := accountID.MustGet()

	ownerUserID, err := h.accountRepo.FindOwnerUserID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return types.ID(""), domainerror.ErrAccountNotFound
		}
		return types.ID(""), err
	}

	if cmd.TargetAccountID.IsPresent() {
		err = h.authorizer.Check(ctx, cmd.Actor, "accounts", "create", authz.CheckOptions{})
	} else {
		err = h.authorizer.Check(ctx, cmd.Actor, "accounts:"+targetID.String(), "update", authz.CheckOptions{
			Owner: types.Some(ownerUserID),
		})
	}
	if err != nil {
		return types.ID(""), domainerror.ErrAccessDenied
	}

	return targetID, nil
}

// entries is the field policy table applied to one command, in canonical
// order. Dual-path fields list every write target; poAddress carries its two
// historical quirks explicitly rather than buried in branching.
func entries(cmd command.UpdateAccount) []patch.Entry {
	return []patch.Entry{
		patch.Scalar("currency", cmd.CurrencyCode, "profile.currency"),
		patch.Scalar("firstName", cmd.FirstName, "profile.firstName"),
		patch.Scalar("lastName", cmd.LastName, "profile.lastName"),
		patch.Scalar("suspend", cmd.Suspend, "profile.suspend"),
		patch.Scalar("transactionId", cmd.TransactionID, "profile.transactionId"),
		patch.Scalar("name", cmd.Name, "name", "profile.name"),
		patch.Scalar("language", cmd.Language, "profile.language"),
		patch.Scalar("bio", cmd.Bio, "profile.bio"),
		patch.Scalar("note", cmd.Note, "note"),
		patch.Scalar("picture", cmd.Picture, "profile.picture"),
		patch.Scalar("username", cmd.Username, "username", "profile.username"),
		patch.Scalar("dob", cmd.Dob, "dob", "profile.dob"),
		patch.Scalar("phone", cmd.Phone, "phone", "profile.phone"),
		patch.Object("nextKin", cmd.NextKin, "nextKin"),
		patch.Object("userPreferences", cmd.UserPreferences, "userPreferences"),
		patch.Object("contactInfo", cmd.ContactInfo, "contactInfo"),
		patch.List("govId", cmd.GovID, "govId"),
		{
			Policy: patch.Policy{
				Name:         "poAddress",
				Targets:      []string{"poAddress"},
				Kind:         patch.KindList,
				Recorded:     false,
				NullAsString: true,
			},
			State: cmd.POAddress.State(),
			Value: listValue(cmd.POAddress),
		},
		patch.List("userBanksDetail", cmd.UserBanksDetail, "userBanksDetail"),
	}
}

func listValue[T any](f patch.Field[[]T]) any {
	if v, ok := f.Value(); ok {
		return v
	}
	return nil
}
