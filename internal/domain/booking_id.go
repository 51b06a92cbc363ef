package domain

import (
	"strings"

	"github.com/google/uuid"
)

// BookingID carries both readings of a caller-supplied booking identifier.
// Bookings created through the API get UUID keys, but the table also holds
// rows imported with arbitrary string keys, so lookups try the canonical
// UUID form first and fall back to the raw text.
type BookingID struct {
	raw       string
	canonical string
}

// NewBookingID returns a fresh canonical key for a validated insert.
func NewBookingID() string {
	return uuid.NewString()
}

// ResolveBookingID interprets raw as a UUID when possible and keeps the
// original text either way. Resolving is idempotent: feeding a canonical
// key back in yields the same candidates.
func ResolveBookingID(raw string) BookingID {
	trimmed := strings.TrimSpace(raw)
	u, err := uuid.Parse(trimmed)
	if err != nil {
		return BookingID{raw: trimmed}
	}
	return BookingID{raw: trimmed, canonical: u.String()}
}

func (id BookingID) Raw() string { return id.raw }

func (id BookingID) IsStructured() bool { return id.canonical != "" }

// Candidates returns the keys to try against storage, structured form first.
func (id BookingID) Candidates() []string {
	if id.canonical == "" || id.canonical == id.raw {
		return []string{id.raw}
	}
	return []string{id.canonical, id.raw}
}
