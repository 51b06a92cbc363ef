package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResolveBookingID_UUID(t *testing.T) {
	raw := "9b2b6f3e-1f0a-4c2d-8b0f-0a1b2c3d4e5f"
	id := ResolveBookingID(raw)

	assert.True(t, id.IsStructured())
	assert.Equal(t, raw, id.Raw())
	assert.Equal(t, []string{raw}, id.Candidates())
}

func TestResolveBookingID_UppercaseUUID(t *testing.T) {
	id := ResolveBookingID("9B2B6F3E-1F0A-4C2D-8B0F-0A1B2C3D4E5F")

	assert.True(t, id.IsStructured())
	// Canonical lowercase form is tried first, the raw text second.
	assert.Equal(t, []string{
		"9b2b6f3e-1f0a-4c2d-8b0f-0a1b2c3d4e5f",
		"9B2B6F3E-1F0A-4C2D-8B0F-0A1B2C3D4E5F",
	}, id.Candidates())
}

func TestResolveBookingID_RawString(t *testing.T) {
	id := ResolveBookingID("legacy-123")

	assert.False(t, id.IsStructured())
	assert.Equal(t, "legacy-123", id.Raw())
	assert.Equal(t, []string{"legacy-123"}, id.Candidates())
}

func TestResolveBookingID_TrimsWhitespace(t *testing.T) {
	id := ResolveBookingID("  legacy-123  ")
	assert.Equal(t, "legacy-123", id.Raw())
}

func TestResolveBookingID_Idempotent(t *testing.T) {
	fresh := NewBookingID()
	_, err := uuid.Parse(fresh)
	assert.NoError(t, err)

	once := ResolveBookingID(fresh)
	twice := ResolveBookingID(once.Candidates()[0])
	assert.Equal(t, once.Candidates(), twice.Candidates())
}
