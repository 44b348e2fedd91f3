// Package schema re-validates an assembled update document against the
// Account's declared shape before it touches storage. The input already
// passed shape validation at the boundary; this second pass catches drift
// between the field policy table and the document schema.
package schema

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	domainerror "github.com/0xsj/overwatch-accounts/internal/domain/error"
	"github.com/0xsj/overwatch-accounts/internal/domain/model"
)

// Schema validates update documents and structured sub-documents.
type Schema struct {
	validate *validator.Validate
}

// New creates a Schema.
func New() *Schema {
	return &Schema{validate: validator.New()}
}

// ValidateUpdate checks every path in the set against the Account shape.
// Any failure wraps ErrUpdateRejected; callers treat it as a programming
// error, not caller input.
func (s *Schema) ValidateUpdate(set map[string]any) error {
	for path, value := range set {
		check, ok := pathChecks[path]
		if !ok {
			return fmt.Errorf("%w: unknown path %q", domainerror.ErrUpdateRejected, path)
		}
		if err := check(s, value); err != nil {
			return fmt.Errorf("%w: path %q: %v", domainerror.ErrUpdateRejected, path, err)
		}
	}
	return nil
}

// ValidateStruct runs declarative tag validation on a structured
// sub-document. The boundary uses it for incoming nextKin, userPreferences,
// contactInfo, and list entries.
func (s *Schema) ValidateStruct(v any) error {
	return s.validate.Struct(v)
}

type checkFunc func(*Schema, any) error

var pathChecks = map[string]checkFunc{
	"profile.currency":      nullableString,
	"profile.firstName":     nullableString,
	"profile.lastName":      nullableString,
	"profile.suspend":       nullableBool,
	"profile.transactionId": nullableString,
	"profile.language":      nullableString,
	"profile.bio":           nullableString,
	"profile.picture":       nullableString,
	"name":                  nullableString,
	"profile.name":          nullableString,
	"username":              nullableString,
	"profile.username":      nullableString,
	"dob":                   nullableString,
	"profile.dob":           nullableString,
	"phone":                 nullableString,
	"profile.phone":         nullableString,
	"note":                  nullableString,

	"nextKin":         subDocument[model.NextKin],
	"userPreferences": subDocument[model.UserPreferences],
	"contactInfo":     subDocument[model.ContactInfo],

	"govId":           entryList[model.GovIDEntry],
	"userBanksDetail": entryList[model.BankDetail],
	"poAddress":       poAddressValue,

	"updatedAt": timestamp,
}

func nullableString(_ *Schema, v any) error {
	if v == nil {
		return nil
	}
	if _, ok := v.(string); !ok {
		return fmt.Errorf("expected string or null, got %T", v)
	}
	return nil
}

func nullableBool(_ *Schema, v any) error {
	if v == nil {
		return nil
	}
	if _, ok := v.(bool); !ok {
		return fmt.Errorf("expected bool or null, got %T", v)
	}
	return nil
}

func subDocument[T any](s *Schema, v any) error {
	if v == nil {
		return nil
	}
	doc, ok := v.(T)
	if !ok {
		return fmt.Errorf("expected %T or null, got %T", doc, v)
	}
	return s.validate.Struct(doc)
}

func entryList[T any](s *Schema, v any) error {
	entries, ok := v.([]T)
	if !ok {
		var want []T
		return fmt.Errorf("expected %T, got %T", want, v)
	}
	for i, entry := range entries {
		if err := s.validate.Struct(entry); err != nil {
			return fmt.Errorf("entry %d: %v", i, err)
		}
	}
	return nil
}

// poAddressValue accepts an entry list or the literal string "null", which
// is how an explicit null has always been stored for this field.
func poAddressValue(s *Schema, v any) error {
	if str, ok := v.(string); ok {
		if str != "null" {
			return fmt.Errorf(`expected entry list or the string "null", got %q`, str)
		}
		return nil
	}
	return entryList[model.POAddressEntry](s, v)
}

func timestamp(_ *Schema, v any) error {
	ts, ok := v.(time.Time)
	if !ok {
		return fmt.Errorf("expected time.Time, got %T", v)
	}
	if ts.IsZero() {
		return fmt.Errorf("zero timestamp")
	}
	return nil
}
