package error

import (
	"github.com/0xsj/overwatch-pkg/errors"
)

// Domain error codes
const (
	CodeAccessDenied      errors.Code = "ACCESS_DENIED"
	CodeAccountNotFound   errors.Code = "ACCOUNT_NOT_FOUND"
	CodeNoFieldsToUpdate  errors.Code = "NO_FIELDS_TO_UPDATE"
	CodeUnknownCurrency   errors.Code = "UNKNOWN_CURRENCY"
	CodeUpdateRejected    errors.Code = "UPDATE_REJECTED"
	CodeAccountIDRequired errors.Code = "ACCOUNT_ID_REQUIRED"
)

var (
	// ErrAccessDenied covers both a missing target account and a failed
	// capability check. The two cases are deliberately indistinguishable
	// to the caller.
	ErrAccessDenied = errors.New(errors.KindForbidden, CodeAccessDenied, "access denied")

	ErrAccountNotFound = errors.New(errors.KindNotFound, CodeAccountNotFound, "no account found")

	ErrNoFieldsToUpdate = errors.New(errors.KindValidation, CodeNoFieldsToUpdate, "at least one field to update is required")

	ErrUnknownCurrency = errors.New(errors.KindValidation, CodeUnknownCurrency, "unrecognized currency code")

	// ErrUpdateRejected signals that an assembled update failed structural
	// re-validation. This is a programming error (field policy drifted
	// from the document schema), not a caller mistake.
	ErrUpdateRejected = errors.New(errors.KindDomain, CodeUpdateRejected, "assembled update failed validation")

	ErrAccountIDRequired = errors.New(errors.KindValidation, CodeAccountIDRequired, "account ID is required")
)
