package booking

import (
	"context"

	"carwash/internal/domain"
	"carwash/internal/repository"
)

type BookingRepositoryInterface interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id domain.BookingID) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id domain.BookingID, status domain.BookingStatus) (bool, error)
	AssignWasher(ctx context.Context, id domain.BookingID, washerID int64) (bool, error)
	UpdatePaymentStatus(ctx context.Context, id domain.BookingID, status domain.PaymentStatus) (bool, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error)
	ListAllWithCustomer(ctx context.Context) ([]repository.BookingOverview, error)
}

// ServiceReader is the slice of the catalog the booking engine needs.
type ServiceReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// UserReader resolves signed-in customers and assignment targets.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
