package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/0xsj/overwatch-pkg/log"

	domainerror "github.com/0xsj/overwatch-accounts/internal/domain/error"
	"github.com/0xsj/overwatch-accounts/internal/port/outbound/repository"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorMapping maps a domain sentinel to its transport representation.
// Client errors surface the error's own message; server errors surface the
// canonical message only, never internal detail.
var errorMappings = []struct {
	sentinel error
	status   int
	code     string
}{
	{domainerror.ErrAccessDenied, http.StatusForbidden, string(domainerror.CodeAccessDenied)},
	{domainerror.ErrAccountNotFound, http.StatusNotFound, string(domainerror.CodeAccountNotFound)},
	{repository.ErrNotFound, http.StatusNotFound, string(domainerror.CodeAccountNotFound)},
	{domainerror.ErrNoFieldsToUpdate, http.StatusBadRequest, string(domainerror.CodeNoFieldsToUpdate)},
	{domainerror.ErrUnknownCurrency, http.StatusBadRequest, string(domainerror.CodeUnknownCurrency)},
	{domainerror.ErrAccountIDRequired, http.StatusBadRequest, string(domainerror.CodeAccountIDRequired)},
	{domainerror.ErrUpdateRejected, http.StatusInternalServerError, string(domainerror.CodeUpdateRejected)},
}

// writeError maps a domain error to an HTTP response.
func writeError(w http.ResponseWriter, logger log.Logger, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.sentinel) {
			message := err.Error()
			if m.status >= http.StatusInternalServerError {
				logger.Error("request failed", log.String("error", err.Error()))
				message = m.sentinel.Error()
			}
			writeJSONError(w, m.status, m.code, message)
			return
		}
	}

	logger.Error("request failed", log.String("error", err.Error()))
	writeJSONError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
}

func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: errorDetail{Code: code, Message: message}})
}
