package entities

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidID = errors.New("invalid id")

// ID is an opaque 24-character hex identifier. The format is kept compatible
// with the legacy document store so references exported before the migration
// keep resolving.

type ID string

func (id ID) String() string { return string(id) }

// NewID returns a fresh 24-hex-char identifier derived from a v4 UUID.
func NewID() ID {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return ID(raw[:24])
}

// ParseID validates s as a well-formed identifier. It is used at every
// transport boundary so malformed ids fail fast instead of leaking into
// storage lookups.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if len(s) != 24 {
		return "", ErrInvalidID
	}
	for _, r := range s {
		if !isHexRune(r) {
			return "", ErrInvalidID
		}
	}
	return ID(s), nil
}

// NormalizeRef classifies a stored reference value. Well-formed 24-hex
// strings become IDs; anything else is treated as an opaque, non-joinable
// value and passes through unmodified.
func NormalizeRef(s string) (ID, bool) {
	id, err := ParseID(s)
	if err != nil {
		return "", false
	}
	return id, true
}

func isHexRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}
