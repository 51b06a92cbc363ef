package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"carwash/internal/domain"
)

const issuingCompany = "Carwash56"

// Receipt is the customer-facing summary of a booking. It reads entirely
// from the booking row (contact fields and the service snapshot are
// denormalized there), so it stays printable even when the customer account
// or the catalog entry is gone.
type Receipt struct {
	Company   string          `json:"company"`
	IssuedAt  string          `json:"issuedAt"`
	BookingID string          `json:"bookingId"`
	Status    string          `json:"status"`
	Payment   string          `json:"payment"`
	Client    ReceiptClient   `json:"client"`
	Vehicle   ReceiptVehicle  `json:"vehicle"`
	Service   ReceiptService  `json:"service"`
	Timeslot  ReceiptTimeslot `json:"timeslot"`
	TotalEUR  float64         `json:"totalEUR"`
	DoneAt    string          `json:"doneAt,omitempty"`
}

type ReceiptClient struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type ReceiptVehicle struct {
	Make  string `json:"make"`
	Model string `json:"model,omitempty"`
	Color string `json:"color,omitempty"`
}

type ReceiptService struct {
	Name        string  `json:"name"`
	PriceEUR    float64 `json:"priceEUR"`
	DurationMin int     `json:"durationMin"`
}

type ReceiptTimeslot struct {
	ClientText  string     `json:"clientText"`
	PlannedDate *time.Time `json:"plannedDate,omitempty"`
}

// Dates on the receipt are day-resolution; the document has no use for the
// time of day.
const receiptDateLayout = "2006-01-02"

func buildReceipt(b *domain.Booking, now time.Time) *Receipt {
	r := &Receipt{
		Company:   issuingCompany,
		IssuedAt:  now.Format(receiptDateLayout),
		BookingID: b.ID,
		Status:    string(b.Status),
		Payment:   string(b.PaymentStatus),
		Client: ReceiptClient{
			FullName: b.FullName,
			Phone:    b.Phone,
			Address:  b.Address,
		},
		Vehicle: ReceiptVehicle{
			Make:  b.CarMake,
			Model: b.CarModel,
			Color: b.CarColor,
		},
		Service: ReceiptService{
			Name:        b.Service.Name,
			PriceEUR:    b.Service.PriceEUR,
			DurationMin: b.Service.DurationMin,
		},
		Timeslot: ReceiptTimeslot{
			ClientText:  b.TimeslotClientText,
			PlannedDate: b.ScheduledAt,
		},
		TotalEUR: b.TotalPriceEUR,
	}
	if b.Status == domain.BookingDone {
		r.DoneAt = b.UpdatedAt.Format(receiptDateLayout)
	}
	return r
}

// Receipt builds the printable summary for a booking, found through the
// same candidate chain as every other lookup.
func (s *Service) Receipt(ctx context.Context, rawID string) (*Receipt, error) {
	id := domain.ResolveBookingID(rawID)
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return buildReceipt(b, time.Now()), nil
}
