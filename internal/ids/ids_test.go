package ids

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

func TestULIDGeneratorUniqueAndOrdered(t *testing.T) {
	gen, err := New(SchemeULID)
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	prev := ""
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		id := gen()
		if _, err := ulid.ParseStrict(id); err != nil {
			t.Fatalf("expected valid ulid, got %q: %v", id, err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		if prev != "" && id <= prev {
			t.Fatalf("expected monotonic ids, got %q after %q", id, prev)
		}
		seen[id] = true
		prev = id
	}
}

func TestUUIDGenerator(t *testing.T) {
	gen, err := New(SchemeUUID)
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	id := gen()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected valid uuid, got %q: %v", id, err)
	}
	if id == gen() {
		t.Fatal("expected distinct ids")
	}
}

func TestUnknownScheme(t *testing.T) {
	_, err := New(Scheme("snowflake"))
	if !errors.Is(err, ErrUnknownScheme) {
		t.Fatalf("expected ErrUnknownScheme, got: %v", err)
	}
	if Scheme("snowflake").IsValid() {
		t.Fatal("expected snowflake to be invalid")
	}
}
