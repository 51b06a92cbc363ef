package booking

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"carwash/internal/domain"
)

// Service is the booking engine: creation with service snapshotting,
// lifecycle transitions, washer assignment, payment state, and the
// receipt projection.
type Service struct {
	bookings BookingRepositoryInterface
	services ServiceReader
	users    UserReader
}

func NewService(bookings BookingRepositoryInterface, services ServiceReader, users UserReader) *Service {
	return &Service{bookings: bookings, services: services, users: users}
}

// Create books a wash for a signed-in caller (callerID > 0) or a guest.
// Guests must supply contact fields inline; signed-in callers get them
// filled from their account. The chosen service's name, price and duration
// are snapshotted into the booking so later catalog edits never change
// what the customer agreed to.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest, callerID int64) (*domain.Booking, error) {
	fullName := strings.TrimSpace(req.FullName)
	phone := strings.TrimSpace(req.Phone)
	address := strings.TrimSpace(req.Address)

	var customerID *int64
	if callerID > 0 {
		user, err := s.users.GetByID(ctx, callerID)
		if err != nil {
			// Token was valid but the account is gone; treat as guest.
			log.Printf("booking: caller %d lookup failed, falling back to inline contact: %v", callerID, err)
		} else {
			id := user.ID
			customerID = &id
			if fullName == "" {
				fullName = user.FullName
			}
			if phone == "" {
				phone = user.Phone
			}
			if address == "" {
				address = user.Address
			}
		}
	}

	if fullName == "" || phone == "" || address == "" ||
		strings.TrimSpace(req.CarMake) == "" ||
		strings.TrimSpace(req.Timeslot) == "" ||
		strings.TrimSpace(req.ServiceID) == "" {
		return nil, ErrMissingFields
	}

	serviceID, err := strconv.ParseInt(strings.TrimSpace(req.ServiceID), 10, 64)
	if err != nil {
		return nil, ErrInvalidServiceID
	}

	svc, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if !svc.Active {
		return nil, ErrServiceNotFound
	}

	scheduledAt := ParseTimeslot(req.Timeslot)
	if scheduledAt == nil {
		// Never block the booking on an unparseable slot; the raw text is
		// kept for the crew to read.
		log.Printf("booking: could not parse timeslot %q, storing raw text only", req.Timeslot)
	}

	b := &domain.Booking{
		CustomerID:         customerID,
		FullName:           fullName,
		Phone:              phone,
		Address:            address,
		CarMake:            strings.TrimSpace(req.CarMake),
		CarModel:           strings.TrimSpace(req.CarModel),
		CarColor:           strings.TrimSpace(req.CarColor),
		TimeslotClientText: req.Timeslot,
		ScheduledAt:        scheduledAt,
		ServiceID:          svc.ID,
		Service: domain.ServiceSnapshot{
			Name:        svc.Name,
			PriceEUR:    svc.PriceEUR,
			DurationMin: svc.DurationMin,
		},
		TotalPriceEUR: svc.PriceEUR,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentUnpaid,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateStatus moves a booking to newStatus. The id goes through the
// canonical-then-raw candidate chain so rows imported with string keys stay
// updatable. The returned bool is true when the write landed but the
// re-read failed; the write is authoritative, so the caller gets a minimal
// {id, status} record instead of an error.
func (s *Service) UpdateStatus(ctx context.Context, rawID, newStatusStr string) (*domain.Booking, bool, error) {
	newStatus := domain.BookingStatus(newStatusStr)
	if !newStatus.Valid() {
		return nil, false, ErrInvalidStatus
	}

	id := domain.ResolveBookingID(rawID)
	if !id.IsStructured() {
		log.Printf("booking: id %q is not a UUID, using raw-string lookup", id.Raw())
	}

	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}

	if !current.Status.CanTransitionTo(newStatus) {
		return nil, false, ErrInvalidTransition
	}

	matched, err := s.bookings.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return nil, false, err
	}
	if !matched {
		return nil, false, ErrNotFound
	}

	updated, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		log.Printf("booking: status update on %q succeeded but re-fetch failed: %v", id.Raw(), err)
		return &domain.Booking{ID: current.ID, Status: newStatus}, true, nil
	}
	return updated, false, nil
}

// MarkDone is the one-tap path the crew uses at the end of a job.
func (s *Service) MarkDone(ctx context.Context, rawID string) (*domain.Booking, bool, error) {
	return s.UpdateStatus(ctx, rawID, string(domain.BookingDone))
}

// AssignWasher puts a washer on the job and moves it to assigned.
func (s *Service) AssignWasher(ctx context.Context, rawID string, washerID int64) (*domain.Booking, bool, error) {
	washer, err := s.users.GetByID(ctx, washerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrNotAWasher
		}
		return nil, false, err
	}
	if washer.Role != domain.RoleWasher {
		return nil, false, ErrNotAWasher
	}

	id := domain.ResolveBookingID(rawID)
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}

	if !current.Status.CanTransitionTo(domain.BookingAssigned) {
		return nil, false, ErrInvalidTransition
	}

	matched, err := s.bookings.AssignWasher(ctx, id, washer.ID)
	if err != nil {
		return nil, false, err
	}
	if !matched {
		return nil, false, ErrNotFound
	}

	updated, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		log.Printf("booking: assignment on %q succeeded but re-fetch failed: %v", id.Raw(), err)
		wid := washer.ID
		return &domain.Booking{ID: current.ID, Status: domain.BookingAssigned, AssignedWasherID: &wid}, true, nil
	}
	return updated, false, nil
}

// UpdatePayment moves the payment state along unpaid, paid, refunded.
func (s *Service) UpdatePayment(ctx context.Context, rawID, statusStr string) (*domain.Booking, bool, error) {
	newStatus := domain.PaymentStatus(statusStr)
	if !newStatus.Valid() {
		return nil, false, ErrInvalidPaymentStatus
	}

	id := domain.ResolveBookingID(rawID)
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}

	if !current.PaymentStatus.CanTransitionTo(newStatus) {
		return nil, false, ErrInvalidTransition
	}

	matched, err := s.bookings.UpdatePaymentStatus(ctx, id, newStatus)
	if err != nil {
		return nil, false, err
	}
	if !matched {
		return nil, false, ErrNotFound
	}

	updated, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		log.Printf("booking: payment update on %q succeeded but re-fetch failed: %v", id.Raw(), err)
		return &domain.Booking{ID: current.ID, Status: current.Status, PaymentStatus: newStatus}, true, nil
	}
	return updated, false, nil
}

// ListMine returns the caller's own bookings, newest first.
func (s *Service) ListMine(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	return s.bookings.ListByCustomer(ctx, customerID)
}

// ListAll is the admin mission board: every booking ordered soonest first,
// with customer contact resolved for display (from the account when the
// booking is linked to one, from the inline fields otherwise).
func (s *Service) ListAll(ctx context.Context) ([]AdminBookingView, error) {
	rows, err := s.bookings.ListAllWithCustomer(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]AdminBookingView, 0, len(rows))
	for _, row := range rows {
		contact := CustomerContact{FullName: row.CustomerName, Phone: row.CustomerPhone}
		if contact.FullName == "" {
			contact.FullName = row.Booking.FullName
		}
		if contact.Phone == "" {
			contact.Phone = row.Booking.Phone
		}
		out = append(out, AdminBookingView{Booking: row.Booking, Customer: contact})
	}
	return out, nil
}
