package patch

// Kind is the presence rule a policy entry follows.
type Kind uint8

const (
	// KindScalar writes on Present or Null.
	KindScalar Kind = iota
	// KindObject writes on Present or Null, value is a sub-document.
	KindObject
	// KindList writes on Present only; an explicit null is treated as
	// absent. A present empty list still writes.
	KindList
)

// Policy declares how one input field is applied: where it is written, its
// presence rule, and whether the write is recorded in the changed-field list.
type Policy struct {
	// Name is the canonical changed-field name.
	Name string

	// Targets are the storage paths written. Entries with more than one
	// target are the legacy dual-path fields; every target is written in
	// the same update so the copies never diverge.
	Targets []string

	Kind Kind

	// Recorded controls whether Name is appended to the changed-field
	// list. False only for poAddress, which historically performed its
	// writes without being reported.
	Recorded bool

	// NullAsString stores an explicit null as the literal string "null"
	// instead of skipping it. Only poAddress carries this; the coercion is
	// preserved bit-for-bit for compatibility with existing documents.
	NullAsString bool
}

// Entry pairs a policy with the normalized input for its field.
type Entry struct {
	Policy Policy
	State  State
	Value  any
}

// Scalar builds an entry for a plain-valued field.
func Scalar[T any](name string, f Field[T], targets ...string) Entry {
	return entry(Policy{Name: name, Targets: targets, Kind: KindScalar, Recorded: true}, f)
}

// Object builds an entry for a sub-document field.
func Object[T any](name string, f Field[T], targets ...string) Entry {
	return entry(Policy{Name: name, Targets: targets, Kind: KindObject, Recorded: true}, f)
}

// List builds an entry for a list field.
func List[T any](name string, f Field[[]T], targets ...string) Entry {
	return entry(Policy{Name: name, Targets: targets, Kind: KindList, Recorded: true}, f)
}

func entry[T any](p Policy, f Field[T]) Entry {
	e := Entry{Policy: p, State: f.State()}
	if v, ok := f.Value(); ok {
		e.Value = v
	}
	return e
}
