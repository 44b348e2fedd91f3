package patch_test

import (
	"errors"
	"reflect"
	"testing"

	domainerror "github.com/0xsj/overwatch-accounts/internal/domain/error"
	"github.com/0xsj/overwatch-accounts/internal/domain/patch"
)

func TestBuild_ScalarPresent(t *testing.T) {
	upd, err := patch.Build([]patch.Entry{
		patch.Scalar("firstName", patch.Of("Ada"), "profile.firstName"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := upd.Set["profile.firstName"]; got != "Ada" {
		t.Errorf(`Set["profile.firstName"] = %v, want "Ada"`, got)
	}
	if !reflect.DeepEqual(upd.Fields, []string{"firstName"}) {
		t.Errorf("Fields = %v, want [firstName]", upd.Fields)
	}
}

func TestBuild_ScalarNullWritesNil(t *testing.T) {
	upd, err := patch.Build([]patch.Entry{
		patch.Scalar("suspend", patch.Null[bool](), "profile.suspend"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, ok := upd.Set["profile.suspend"]
	if !ok {
		t.Fatal("null scalar should still write its target")
	}
	if v != nil {
		t.Errorf("value = %v, want nil", v)
	}
	if !reflect.DeepEqual(upd.Fields, []string{"suspend"}) {
		t.Errorf("Fields = %v, want [suspend]", upd.Fields)
	}
}

func TestBuild_AbsentFieldsSkipped(t *testing.T) {
	_, err := patch.Build([]patch.Entry{
		patch.Scalar("firstName", patch.Absent[string](), "profile.firstName"),
		patch.Scalar("lastName", patch.Absent[string](), "profile.lastName"),
	})
	if !errors.Is(err, domainerror.ErrNoFieldsToUpdate) {
		t.Errorf("expected ErrNoFieldsToUpdate, got: %v", err)
	}
}

func TestBuild_DualTargetRecordedOnce(t *testing.T) {
	upd, err := patch.Build([]patch.Entry{
		patch.Scalar("username", patch.Of("ada99"), "username", "profile.username"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if upd.Set["username"] != "ada99" || upd.Set["profile.username"] != "ada99" {
		t.Errorf("both targets should carry the value, got %v", upd.Set)
	}
	if !reflect.DeepEqual(upd.Fields, []string{"username"}) {
		t.Errorf("dual-target field should be recorded once, got %v", upd.Fields)
	}
}

func TestBuild_ListNullSkipped(t *testing.T) {
	_, err := patch.Build([]patch.Entry{
		patch.List("govId", patch.Null[[]string](), "govId"),
	})
	if !errors.Is(err, domainerror.ErrNoFieldsToUpdate) {
		t.Errorf("null list should be treated as absent, got: %v", err)
	}
}

func TestBuild_ListEmptyStillWrites(t *testing.T) {
	upd, err := patch.Build([]patch.Entry{
		patch.List("govId", patch.Of([]string{}), "govId"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, ok := upd.Set["govId"]
	if !ok {
		t.Fatal("present empty list should write")
	}
	if list, ok := v.([]string); !ok || len(list) != 0 {
		t.Errorf("value = %v, want empty []string", v)
	}
}

func TestBuild_UnrecordedNullAsString(t *testing.T) {
	poAddress := func(state patch.State, value any) patch.Entry {
		return patch.Entry{
			Policy: patch.Policy{
				Name:         "poAddress",
				Targets:      []string{"poAddress"},
				Kind:         patch.KindList,
				Recorded:     false,
				NullAsString: true,
			},
			State: state,
			Value: value,
		}
	}

	t.Run("null stores literal string", func(t *testing.T) {
		upd, err := patch.Build([]patch.Entry{
			poAddress(patch.StateNull, nil),
			patch.Scalar("note", patch.Of("x"), "note"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := upd.Set["poAddress"]; got != "null" {
			t.Errorf(`Set["poAddress"] = %v, want "null"`, got)
		}
	})

	t.Run("never appears in changed fields", func(t *testing.T) {
		upd, err := patch.Build([]patch.Entry{
			poAddress(patch.StatePresent, []string{"doc-1"}),
			patch.Scalar("note", patch.Of("x"), "note"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(upd.Fields, []string{"note"}) {
			t.Errorf("Fields = %v, want [note]", upd.Fields)
		}
	})

	t.Run("alone it does not make the update effective", func(t *testing.T) {
		_, err := patch.Build([]patch.Entry{
			poAddress(patch.StatePresent, []string{"doc-1"}),
		})
		if !errors.Is(err, domainerror.ErrNoFieldsToUpdate) {
			t.Errorf("expected ErrNoFieldsToUpdate, got: %v", err)
		}
	})
}

func TestBuild_FieldsPreserveEntryOrder(t *testing.T) {
	upd, err := patch.Build([]patch.Entry{
		patch.Scalar("currency", patch.Of("USD"), "profile.currency"),
		patch.Scalar("firstName", patch.Of("Ada"), "profile.firstName"),
		patch.Scalar("note", patch.Null[string](), "note"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"currency", "firstName", "note"}
	if !reflect.DeepEqual(upd.Fields, want) {
		t.Errorf("Fields = %v, want %v", upd.Fields, want)
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	_, err := patch.Build(nil)
	if !errors.Is(err, domainerror.ErrNoFieldsToUpdate) {
		t.Errorf("expected ErrNoFieldsToUpdate, got: %v", err)
	}
}
