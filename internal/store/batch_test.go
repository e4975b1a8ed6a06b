package store

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}

	a := gen.Generate()
	b := gen.Generate()
	if a == b {
		t.Fatalf("expected distinct ids, got %s twice", a)
	}

	u, err := uuid.Parse(a.Inner())
	if err != nil {
		t.Fatalf("not a UUID: %v", err)
	}
	if u.Version() != 7 {
		t.Errorf("version = %d, want 7", u.Version())
	}
	if a.Inner() >= b.Inner() {
		t.Errorf("expected time-sortable ids, got %s then %s", a, b)
	}
}

func TestFixedGenerator(t *testing.T) {
	gen := NewFixedGenerator("one", "two")
	if got := gen.Generate().Inner(); got != "one" {
		t.Errorf("first = %q, want one", got)
	}
	if got := gen.Generate().Inner(); got != "two" {
		t.Errorf("second = %q, want two", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic after ids are exhausted")
		}
	}()
	gen.Generate()
}
