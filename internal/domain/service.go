package domain

import "time"

// Service is a named, priced wash offering. Services are deactivated rather
// than deleted so historical bookings keep a valid reference.
type Service struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceEUR    float64   `json:"priceEUR"`
	DurationMin int       `json:"durationMin"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
