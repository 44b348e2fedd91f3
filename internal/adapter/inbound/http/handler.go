package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/0xsj/overwatch-pkg/log"
	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-accounts/internal/domain/model"
	"github.com/0xsj/overwatch-accounts/internal/domain/patch"
	"github.com/0xsj/overwatch-accounts/internal/domain/schema"
	"github.com/0xsj/overwatch-accounts/internal/port/inbound/command"
	"github.com/0xsj/overwatch-accounts/internal/port/inbound/query"
	"github.com/0xsj/overwatch-accounts/internal/port/outbound/authz"
)

// Handler exposes the account operations over HTTP.
type Handler struct {
	update command.UpdateAccountHandler
	get    query.GetAccountHandler
	schema *schema.Schema
	logger log.Logger
}

// HandlerConfig wires the handlers this adapter dispatches to.
type HandlerConfig struct {
	UpdateAccountHandler command.UpdateAccountHandler
	GetAccountHandler    query.GetAccountHandler
	Logger               log.Logger
}

// NewHandler creates a new Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		update: cfg.UpdateAccountHandler,
		get:    cfg.GetAccountHandler,
		schema: schema.New(),
		logger: cfg.Logger,
	}
}

// updateAccountRequest is the wire shape of a partial account update. Field
// types are tri-state: a missing key stays absent, an explicit null clears
// the field, anything else is a value. accountId is the admin-on-behalf-of
// target and is plain optional; null carries no meaning for it.
type updateAccountRequest struct {
	AccountID *string `json:"accountId,omitempty"`

	Bio           patch.Field[string] `json:"bio"`
	CurrencyCode  patch.Field[string] `json:"currencyCode"`
	FirstName     patch.Field[string] `json:"firstName"`
	Language      patch.Field[string] `json:"language"`
	LastName      patch.Field[string] `json:"lastName"`
	Suspend       patch.Field[bool]   `json:"suspend"`
	TransactionID patch.Field[string] `json:"transactionId"`
	Name          patch.Field[string] `json:"name"`
	Note          patch.Field[string] `json:"note"`
	Picture       patch.Field[string] `json:"picture"`
	Username      patch.Field[string] `json:"username"`
	Dob           patch.Field[string] `json:"dob"`
	Phone         patch.Field[string] `json:"phone"`

	NextKin         patch.Field[model.NextKin]         `json:"nextKin"`
	UserPreferences patch.Field[model.UserPreferences] `json:"userPreferences"`
	ContactInfo     patch.Field[model.ContactInfo]     `json:"contactInfo"`

	GovID           patch.Field[[]model.GovIDEntry]     `json:"govId"`
	POAddress       patch.Field[[]model.POAddressEntry] `json:"poAddress"`
	UserBanksDetail patch.Field[[]model.BankDetail]     `json:"userBanksDetail"`
}

// UpdateAccount handles PATCH /v1/accounts and PATCH /v1/accounts/{accountID}.
func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "missing principal")
		return
	}

	var req updateAccountRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "MALFORMED_INPUT", "request body does not match the expected shape")
		return
	}

	if err := h.validateRequest(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "MALFORMED_INPUT", err.Error())
		return
	}

	cmd := commandFromRequest(principal, req)
	if id := chi.URLParam(r, "accountID"); id != "" {
		cmd.TargetAccountID = types.Some(types.ID(id))
	}

	result, err := h.update.Handle(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, updateAccountResponse{
		Account:       result.Account,
		UpdatedFields: result.UpdatedFields,
	})
}

// GetAccount handles GET /v1/accounts/{accountID}.
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	result, err := h.get.Handle(r.Context(), query.GetAccount{
		AccountID: types.ID(chi.URLParam(r, "accountID")),
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, accountResponse{Account: result.Account})
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// validateRequest shape-checks the structured sub-documents that carry
// declared constraints. Scalar typing was already enforced by decoding.
func (h *Handler) validateRequest(req updateAccountRequest) error {
	if v, ok := req.NextKin.Value(); ok {
		if err := h.schema.ValidateStruct(v); err != nil {
			return err
		}
	}
	if v, ok := req.ContactInfo.Value(); ok {
		if err := h.schema.ValidateStruct(v); err != nil {
			return err
		}
	}
	if banks, ok := req.UserBanksDetail.Value(); ok {
		for _, bank := range banks {
			if err := h.schema.ValidateStruct(bank); err != nil {
				return err
			}
		}
	}
	return nil
}

func commandFromRequest(principal authz.Principal, req updateAccountRequest) command.UpdateAccount {
	cmd := command.UpdateAccount{
		Actor:           principal,
		TargetAccountID: types.None[types.ID](),

		Bio:           req.Bio,
		CurrencyCode:  req.CurrencyCode,
		FirstName:     req.FirstName,
		Language:      req.Language,
		LastName:      req.LastName,
		Suspend:       req.Suspend,
		TransactionID: req.TransactionID,
		Name:          req.Name,
		Note:          req.Note,
		Picture:       req.Picture,
		Username:      req.Username,
		Dob:           req.Dob,
		Phone:         req.Phone,

		NextKin:         req.NextKin,
		UserPreferences: req.UserPreferences,
		ContactInfo:     req.ContactInfo,

		GovID:           req.GovID,
		POAddress:       req.POAddress,
		UserBanksDetail: req.UserBanksDetail,
	}

	if req.AccountID != nil && *req.AccountID != "" {
		cmd.TargetAccountID = types.Some(types.ID(*req.AccountID))
	}

	return cmd
}

type updateAccountResponse struct {
	Account       *model.Account `json:"account"`
	UpdatedFields []string       `json:"updatedFields"`
}

type accountResponse struct {
	Account *model.Account `json:"account"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
