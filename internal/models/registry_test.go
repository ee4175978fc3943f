package models

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/fyang93/housing-ocr/internal/common"
)

func newTestRegistry(t *testing.T, seed []string) (*Registry, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "models.json")
	r, err := NewRegistry(path, seed, nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return r, path
}

func TestRegistrySeedsMissingFile(t *testing.T) {
	r, path := newTestRegistry(t, []string{"m1", "m2"})
	if got := r.Models(); !reflect.DeepEqual(got, []string{"m1", "m2"}) {
		t.Errorf("Models() = %v", got)
	}

	// a second registry on the same path reads the persisted list
	r2, err := NewRegistry(path, []string{"ignored"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := r2.Models(); !reflect.DeepEqual(got, []string{"m1", "m2"}) {
		t.Errorf("reloaded Models() = %v", got)
	}
}

func TestRegistryAddRemove(t *testing.T) {
	r, path := newTestRegistry(t, []string{"m1"})

	if err := r.Add("m2"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := r.Add("m2"); err != nil {
		t.Errorf("re-adding should be a no-op, got %v", err)
	}
	if got := r.Models(); !reflect.DeepEqual(got, []string{"m1", "m2"}) {
		t.Errorf("Models() = %v", got)
	}

	if err := r.Remove("m1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := r.Remove("m2"); !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("removing the last model err = %v, want ErrInvalidInput", err)
	}
	if err := r.Remove("ghost"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("removing unknown model err = %v, want ErrNotFound", err)
	}

	// changes survive a reload
	r2, err := NewRegistry(path, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := r2.Models(); !reflect.DeepEqual(got, []string{"m2"}) {
		t.Errorf("reloaded Models() = %v", got)
	}
}

func TestRegistryReorder(t *testing.T) {
	r, _ := newTestRegistry(t, []string{"a", "b", "c"})

	if err := r.Reorder([]string{"c", "a", "b"}); err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	if got := r.Models(); !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
		t.Errorf("Models() = %v", got)
	}

	if err := r.Reorder([]string{"c", "a"}); !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("short order err = %v, want ErrInvalidInput", err)
	}
	if err := r.Reorder([]string{"c", "a", "x"}); !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("unknown model err = %v, want ErrInvalidInput", err)
	}
	if err := r.Reorder([]string{"c", "c", "a"}); !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("duplicate err = %v, want ErrInvalidInput", err)
	}
}

func TestRegistryModelsReturnsCopy(t *testing.T) {
	r, _ := newTestRegistry(t, []string{"a", "b"})
	got := r.Models()
	got[0] = "mutated"
	if r.Models()[0] != "a" {
		t.Error("Models() must return a copy")
	}
}
