package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"carwash/internal/domain"
)

func receiptFixture(status domain.BookingStatus) *domain.Booking {
	planned := time.Date(2025, 10, 29, 14, 0, 0, 0, time.Local)
	return &domain.Booking{
		ID:                 "9b2b6f3e-1f0a-4c2d-8b0f-0a1b2c3d4e5f",
		FullName:           "Jean Dupont",
		Phone:              "+33 6 12 34 56 78",
		Address:            "12 rue des Lilas, Vannes",
		CarMake:            "Renault",
		CarModel:           "Clio",
		CarColor:           "rouge",
		TimeslotClientText: "29/10/2025 14h",
		ScheduledAt:        &planned,
		ServiceID:          3,
		Service: domain.ServiceSnapshot{
			Name:        "Complet intérieur + extérieur",
			PriceEUR:    50,
			DurationMin: 60,
		},
		TotalPriceEUR: 50,
		Status:        status,
		PaymentStatus: domain.PaymentPaid,
		UpdatedAt:     time.Date(2025, 10, 29, 15, 5, 0, 0, time.Local),
	}
}

func TestBuildReceipt_ReadsOnlyFromBooking(t *testing.T) {
	now := time.Date(2025, 11, 1, 9, 0, 0, 0, time.Local)
	r := buildReceipt(receiptFixture(domain.BookingDone), now)

	assert.Equal(t, "Carwash56", r.Company)
	assert.Equal(t, "2025-11-01", r.IssuedAt)
	assert.Equal(t, "9b2b6f3e-1f0a-4c2d-8b0f-0a1b2c3d4e5f", r.BookingID)
	assert.Equal(t, "done", r.Status)
	assert.Equal(t, "paid", r.Payment)
	assert.Equal(t, "Jean Dupont", r.Client.FullName)
	assert.Equal(t, "Renault", r.Vehicle.Make)
	assert.Equal(t, "Complet intérieur + extérieur", r.Service.Name)
	assert.Equal(t, 50.0, r.Service.PriceEUR)
	assert.Equal(t, 60, r.Service.DurationMin)
	assert.Equal(t, "29/10/2025 14h", r.Timeslot.ClientText)
	assert.Equal(t, 50.0, r.TotalEUR)
	assert.Equal(t, "2025-10-29", r.DoneAt)
}

func TestBuildReceipt_NoDoneAtBeforeCompletion(t *testing.T) {
	r := buildReceipt(receiptFixture(domain.BookingInProgress), time.Now())

	assert.Equal(t, "in_progress", r.Status)
	assert.Empty(t, r.DoneAt)
}
