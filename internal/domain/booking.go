package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingAssigned   BookingStatus = "assigned"
	BookingInProgress BookingStatus = "in_progress"
	BookingDone       BookingStatus = "done"
	BookingCanceled   BookingStatus = "canceled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingAssigned, BookingInProgress, BookingDone, BookingCanceled:
		return true
	}
	return false
}

// bookingTransitions lists the statuses reachable from each state. Skipping
// ahead is allowed (a washer can mark a pending job done in one step); done
// and canceled are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:    {BookingAssigned, BookingInProgress, BookingDone, BookingCanceled},
	BookingAssigned:   {BookingInProgress, BookingDone, BookingCanceled},
	BookingInProgress: {BookingDone, BookingCanceled},
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch s {
	case PaymentUnpaid:
		return next == PaymentPaid
	case PaymentPaid:
		return next == PaymentRefunded
	}
	return false
}

// ServiceSnapshot is the service as it was when the booking was created.
// It is written once at create time and never updated, so the price the
// customer agreed to survives later catalog edits.
type ServiceSnapshot struct {
	Name        string  `json:"name"`
	PriceEUR    float64 `json:"priceEUR"`
	DurationMin int     `json:"durationMin"`
}

type Booking struct {
	ID string `json:"id"`

	// CustomerID is set for signed-in callers. Guest bookings leave it nil
	// and rely on the inline contact fields below, which are filled for
	// every booking so receipts never need a users lookup.
	CustomerID *int64 `json:"customerId,omitempty"`
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`

	CarMake  string `json:"carMake"`
	CarModel string `json:"carModel,omitempty"`
	CarColor string `json:"carColor,omitempty"`

	// TimeslotClientText keeps the slot exactly as the customer typed it.
	// ScheduledAt is the best-effort parse and stays nil when the text is
	// not understood; an unparseable slot never blocks the booking.
	TimeslotClientText string     `json:"timeslotClientText"`
	ScheduledAt        *time.Time `json:"scheduledAt,omitempty"`

	ServiceID int64           `json:"serviceId"`
	Service   ServiceSnapshot `json:"service"`

	TotalPriceEUR float64       `json:"totalPriceEUR"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`

	PaymentIntentID  string `json:"paymentIntentId,omitempty"`
	AssignedWasherID *int64 `json:"assignedWasher,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
