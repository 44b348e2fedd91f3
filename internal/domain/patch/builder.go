package patch

import (
	domainerror "github.com/0xsj/overwatch-accounts/internal/domain/error"
)

// Update is a sparse update document: the set of storage paths to write and
// the ordered canonical names of the fields that changed. A field with
// multiple write targets appears once in Fields.
type Update struct {
	Set    map[string]any
	Fields []string
}

// Build walks the entries in order and produces the sparse update. Entries
// whose presence rule is not met are skipped silently, including entries in
// an unexpected state; input that survived shape validation but carries a
// surprise is dropped rather than crashed on.
//
// Build fails with ErrNoFieldsToUpdate when nothing was recorded, so no-op
// calls are rejected before paying for a storage round trip. Note the
// poAddress quirk: its writes alone do not make a call effective, because the
// field is never recorded.
func Build(entries []Entry) (Update, error) {
	upd := Update{Set: make(map[string]any)}

	for _, e := range entries {
		switch e.Policy.Kind {
		case KindScalar, KindObject:
			switch e.State {
			case StatePresent:
				upd.write(e.Policy, e.Value)
			case StateNull:
				upd.write(e.Policy, nil)
			}
		case KindList:
			switch e.State {
			case StatePresent:
				upd.write(e.Policy, e.Value)
			case StateNull:
				if e.Policy.NullAsString {
					upd.write(e.Policy, "null")
				}
			}
		}
	}

	if len(upd.Fields) == 0 {
		return Update{}, domainerror.ErrNoFieldsToUpdate
	}

	return upd, nil
}

func (u *Update) write(p Policy, value any) {
	for _, target := range p.Targets {
		u.Set[target] = value
	}
	if p.Recorded {
		u.Fields = append(u.Fields, p.Name)
	}
}
