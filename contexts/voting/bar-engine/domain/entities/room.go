package entities

import (
	"strings"
	"time"

	domainerrors "votebar/contexts/voting/bar-engine/domain/errors"
)

// Room is a named voting session with a fixed, ordered option set. A TTL of
// zero means the room never expires.
type Room struct {
	RoomID    string
	Options   []string
	CreatedAt time.Time
	TTL       time.Duration
}

// IsExpired reports whether the room is past its deadline at the given
// instant. It never mutates state; eviction belongs to the registry sweep.
func (r Room) IsExpired(now time.Time) bool {
	if r.TTL <= 0 {
		return false
	}
	return now.After(r.CreatedAt.Add(r.TTL))
}

func (r Room) ExpiresAt() (time.Time, bool) {
	if r.TTL <= 0 {
		return time.Time{}, false
	}
	return r.CreatedAt.Add(r.TTL), true
}

// ValidateOptions enforces the option-set invariant for room creation:
// at least one option, no blanks, no duplicates.
func ValidateOptions(options []string) error {
	if len(options) == 0 {
		return domainerrors.ErrInvalidOptionSet
	}
	seen := make(map[string]struct{}, len(options))
	for _, option := range options {
		if strings.TrimSpace(option) == "" {
			return domainerrors.ErrInvalidOptionSet
		}
		if _, dup := seen[option]; dup {
			return domainerrors.ErrInvalidOptionSet
		}
		seen[option] = struct{}{}
	}
	return nil
}

// RoomSummary is the listing view of a room.
type RoomSummary struct {
	RoomID    string
	Options   []string
	CreatedAt time.Time
	ExpiresAt *time.Time
	VoteCount int
}
