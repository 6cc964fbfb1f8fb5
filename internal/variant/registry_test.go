package variant

import (
	"math/rand"
	"testing"
)

func TestListSortedByID(t *testing.T) {
	variants := List()
	if len(variants) < 2 {
		t.Fatalf("List() returned %d variants, want at least 2", len(variants))
	}
	for i := 1; i < len(variants); i++ {
		if variants[i-1].ID >= variants[i].ID {
			t.Errorf("List() not sorted: %q before %q", variants[i-1].ID, variants[i].ID)
		}
	}
}

func TestLookup(t *testing.T) {
	v, err := Lookup("classic")
	if err != nil {
		t.Fatalf("Lookup(classic) error = %v", err)
	}
	if v.ID != "classic" || v.Title == "" {
		t.Errorf("Lookup(classic) = %+v", v)
	}

	if _, err := Lookup("pong"); err == nil {
		t.Error("Lookup(pong) should error")
	}
}

func TestExists(t *testing.T) {
	if !Exists("classic") || !Exists("arcade") {
		t.Error("built-in variants should be registered")
	}
	if Exists("pong") {
		t.Error("Exists(pong) = true, want false")
	}
}

func TestCreate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	eng, err := Create("classic", "", rng)
	if err != nil {
		t.Fatalf("Create(classic) error = %v", err)
	}
	if eng == nil {
		t.Fatal("Create(classic) returned nil engine")
	}
	if got := eng.Config().Board.Width; got != 20 {
		t.Errorf("classic board width = %d, want 20", got)
	}

	if _, err := Create("pong", "", rng); err == nil {
		t.Error("Create(pong) should error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() with duplicate ID should panic")
		}
	}()
	Register(Variant{ID: "classic", Title: "Dup"})
}
