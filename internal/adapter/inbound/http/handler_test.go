package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/0xsj/overwatch-pkg/log"
	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-accounts/internal/domain/model"
	"github.com/0xsj/overwatch-accounts/internal/port/inbound/command"
	"github.com/0xsj/overwatch-accounts/internal/port/inbound/query"
	"github.com/0xsj/overwatch-accounts/internal/port/outbound/authz"
)

type updateHandlerFunc func(ctx context.Context, cmd command.UpdateAccount) (command.UpdateAccountResult, error)

func (f updateHandlerFunc) Handle(ctx context.Context, cmd command.UpdateAccount) (command.UpdateAccountResult, error) {
	return f(ctx, cmd)
}

type getHandlerFunc func(ctx context.Context, qry query.GetAccount) (query.GetAccountResult, error)

func (f getHandlerFunc) Handle(ctx context.Context, qry query.GetAccount) (query.GetAccountResult, error) {
	return f(ctx, qry)
}

func testPrincipal() authz.Principal {
	return authz.Principal{
		AccountID: types.Some(types.ID("acc-1")),
		UserID:    types.ID("user-1"),
	}
}

func newTestHandler(update updateHandlerFunc, get getHandlerFunc) *Handler {
	return NewHandler(HandlerConfig{
		UpdateAccountHandler: update,
		GetAccountHandler:    get,
		Logger:               log.NewPretty(log.DefaultConfig()),
	})
}

func patchRequest(t *testing.T, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, "/v1/accounts", strings.NewReader(body))
	return req.WithContext(withPrincipal(req.Context(), testPrincipal()))
}

func TestUpdateAccount_TriStateDecoding(t *testing.T) {
	var captured command.UpdateAccount
	handler := newTestHandler(
		func(ctx context.Context, cmd command.UpdateAccount) (command.UpdateAccountResult, error) {
			captured = cmd
			return command.UpdateAccountResult{
				Account:       &model.Account{ID: "acc-1"},
				UpdatedFields: []string{"firstName", "suspend"},
			}, nil
		},
		nil,
	)

	rec := httptest.NewRecorder()
	handler.UpdateAccount(rec, patchRequest(t, `{"firstName": "Ada", "suspend": null}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200. body: %s", rec.Code, rec.Body.String())
	}

	if got := captured.FirstName.MustValue(); got != "Ada" {
		t.Errorf("firstName = %q, want Ada", got)
	}
	if !captured.Suspend.IsNull() {
		t.Error("explicit null should decode as null")
	}
	if !captured.LastName.IsAbsent() {
		t.Error("omitted keys should stay absent")
	}
	if captured.TargetAccountID.IsPresent() {
		t.Error("no explicit target was supplied")
	}
	if captured.Actor.UserID.String() != "user-1" {
		t.Errorf("actor = %s, want user-1", captured.Actor.UserID.String())
	}
}

func TestUpdateAccount_BodyAccountIDBecomesTarget(t *testing.T) {
	var captured command.UpdateAccount
	handler := newTestHandler(
		func(ctx context.Context, cmd command.UpdateAccount) (command.UpdateAccountResult, error) {
			captured = cmd
			return command.UpdateAccountResult{Account: &model.Account{ID: "acc-2"}}, nil
		},
		nil,
	)

	rec := httptest.NewRecorder()
	handler.UpdateAccount(rec, patchRequest(t, `{"accountId": "acc-2", "note": "x"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !captured.TargetAccountID.IsPresent() || captured.TargetAccountID.MustGet().String() != "acc-2" {
		t.Errorf("TargetAccountID = %v, want acc-2", captured.TargetAccountID)
	}
}

func TestUpdateAccount_URLParamOverridesBody(t *testing.T) {
	var captured command.UpdateAccount
	handler := newTestHandler(
		func(ctx context.Context, cmd command.UpdateAccount) (command.UpdateAccountResult, error) {
			captured = cmd
			return command.UpdateAccountResult{Account: &model.Account{ID: "acc-3"}}, nil
		},
		nil,
	)

	req := patchRequest(t, `{"accountId": "acc-2", "note": "x"}`)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("accountID", "acc-3")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	handler.UpdateAccount(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if captured.TargetAccountID.MustGet().String() != "acc-3" {
		t.Errorf("URL param should win over the body, got %s", captured.TargetAccountID.MustGet().String())
	}
}

func TestUpdateAccount_RejectsUnknownKeys(t *testing.T) {
	handler := newTestHandler(
		func(ctx context.Context, cmd command.UpdateAccount) (command.UpdateAccountResult, error) {
			t.Fatal("handler should not be reached")
			return command.UpdateAccountResult{}, nil
		},
		nil,
	)

	rec := httptest.NewRecorder()
	handler.UpdateAccount(rec, patchRequest(t, `{"nickname": "ada"}`))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateAccount_RejectsInvalidSubDocument(t *testing.T) {
	handler := newTestHandler(
		func(ctx context.Context, cmd command.UpdateAccount) (command.UpdateAccountResult, error) {
			t.Fatal("handler should not be reached")
			return command.UpdateAccountResult{}, nil
		},
		nil,
	)

	rec := httptest.NewRecorder()
	handler.UpdateAccount(rec, patchRequest(t, `{"contactInfo": {"email": "not-an-email"}}`))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateAccount_MissingPrincipal(t *testing.T) {
	handler := newTestHandler(
		func(ctx context.Context, cmd command.UpdateAccount) (command.UpdateAccountResult, error) {
			t.Fatal("handler should not be reached")
			return command.UpdateAccountResult{}, nil
		},
		nil,
	)

	req := httptest.NewRequest(http.MethodPatch, "/v1/accounts", strings.NewReader(`{"note": "x"}`))
	rec := httptest.NewRecorder()
	handler.UpdateAccount(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestGetAccount(t *testing.T) {
	handler := newTestHandler(nil, func(ctx context.Context, qry query.GetAccount) (query.GetAccountResult, error) {
		if qry.AccountID.String() != "acc-1" {
			t.Errorf("AccountID = %s, want acc-1", qry.AccountID.String())
		}
		return query.GetAccountResult{Account: &model.Account{ID: "acc-1"}}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts/acc-1", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("accountID", "acc-1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	handler.GetAccount(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body accountResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Account == nil || body.Account.ID != "acc-1" {
		t.Errorf("unexpected body account: %+v", body.Account)
	}
}

func TestHealth(t *testing.T) {
	handler := newTestHandler(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
