package entities

import (
	"errors"
	"testing"
)

func TestNewID(t *testing.T) {
	seen := map[ID]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if _, err := ParseID(string(id)); err != nil {
			t.Fatalf("generated id %q does not parse: %v", id, err)
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}

func TestParseID(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id, err := ParseID("64a1f0b2c3d4e5f601234567")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "64a1f0b2c3d4e5f601234567" {
			t.Fatalf("unexpected id %q", id)
		}
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		if _, err := ParseID("  64a1f0b2c3d4e5f601234567 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	invalid := []string{"", "short", "64a1f0b2c3d4e5f60123456", "64a1f0b2c3d4e5f6012345678", "64a1f0b2c3d4e5f60123456z", "not-an-identifier-at-all"}
	for _, s := range invalid {
		if _, err := ParseID(s); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID for %q, got %v", s, err)
		}
	}
}

func TestNormalizeRef(t *testing.T) {
	if id, ok := NormalizeRef("64a1f0b2c3d4e5f601234567"); !ok || id == "" {
		t.Fatalf("expected well-formed ref to resolve, got ok=%v id=%q", ok, id)
	}
	if _, ok := NormalizeRef("walk-in customer"); ok {
		t.Fatalf("expected opaque ref to not resolve")
	}
	if _, ok := NormalizeRef(""); ok {
		t.Fatalf("expected empty ref to not resolve")
	}
}
