package booking

import "carwash/internal/domain"

// CreateBookingRequest carries the mobile app's booking form. Presence
// checks happen in the service because signed-in callers may omit the
// contact fields (they are filled from the account).
type CreateBookingRequest struct {
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	CarMake   string `json:"carMake"`
	CarModel  string `json:"carModel"`
	CarColor  string `json:"carColor"`
	Timeslot  string `json:"timeslot"`
	ServiceID string `json:"serviceId"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignRequest struct {
	WasherID int64 `json:"washerId" binding:"required"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

// CustomerContact is the display block the admin mission board shows next
// to each booking.
type CustomerContact struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

type AdminBookingView struct {
	domain.Booking
	Customer CustomerContact `json:"customer"`
}
