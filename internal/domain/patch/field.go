// Package patch models partial updates to an Account: tri-state input
// fields, the field policy table, and the builder that turns them into a
// sparse update document.
package patch

import (
	"bytes"
	"encoding/json"
)

// State classifies an input field's presence.
type State uint8

const (
	// StateAbsent means the key was not supplied at all.
	StateAbsent State = iota
	// StateNull means the key was supplied with an explicit null.
	StateNull
	// StatePresent means the key was supplied with a value.
	StatePresent
)

// Field is a tri-state input value. The zero value is Absent, so request
// structs decode correctly without constructors: keys missing from the JSON
// body stay Absent, explicit nulls become Null, and anything else becomes
// Present. This is distinct from a two-state Optional, which cannot tell a
// cleared field from an untouched one.
type Field[T any] struct {
	state State
	value T
}

// Absent returns an absent field.
func Absent[T any]() Field[T] {
	return Field[T]{}
}

// Null returns an explicit-null field.
func Null[T any]() Field[T] {
	return Field[T]{state: StateNull}
}

// Of returns a present field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{state: StatePresent, value: v}
}

// State returns the field's presence classification.
func (f Field[T]) State() State { return f.state }

// IsAbsent reports whether the key was omitted.
func (f Field[T]) IsAbsent() bool { return f.state == StateAbsent }

// IsNull reports whether an explicit null was supplied.
func (f Field[T]) IsNull() bool { return f.state == StateNull }

// IsPresent reports whether a value was supplied.
func (f Field[T]) IsPresent() bool { return f.state == StatePresent }

// Value returns the held value and whether one is present.
func (f Field[T]) Value() (T, bool) {
	return f.value, f.state == StatePresent
}

// MustValue returns the held value. It panics unless the field is present.
func (f Field[T]) MustValue() T {
	if f.state != StatePresent {
		panic("patch: MustValue on non-present field")
	}
	return f.value
}

var nullLiteral = []byte("null")

// UnmarshalJSON implements json.Unmarshaler. encoding/json invokes it for
// explicit nulls, which is what makes the null/absent distinction decodable.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullLiteral) {
		*f = Field[T]{state: StateNull}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Field[T]{state: StatePresent, value: v}
	return nil
}

// MarshalJSON implements json.Marshaler. Absent fields marshal as null;
// callers that need true key omission should consult State first.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.state != StatePresent {
		return nullLiteral, nil
	}
	return json.Marshal(f.value)
}
