package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"carwash/internal/domain"
)

type Service struct {
	services ServiceRepositoryInterface
}

func NewService(services ServiceRepositoryInterface) *Service {
	return &Service{services: services}
}

// ListActive returns the customer-facing catalog, cheapest first.
func (s *Service) ListActive(ctx context.Context) ([]domain.Service, error) {
	return s.services.ListActive(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	svc := &domain.Service{
		Name:        req.Name,
		Description: req.Description,
		PriceEUR:    req.PriceEUR,
		DurationMin: req.DurationMin,
		Active:      true,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateServiceRequest) (*domain.Service, error) {
	svc := &domain.Service{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		PriceEUR:    req.PriceEUR,
		DurationMin: req.DurationMin,
	}
	if err := s.services.Update(ctx, svc); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.services.GetByID(ctx, id)
}

// Deactivate soft-deletes: the service disappears from listings but stays
// resolvable for existing bookings.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if err := s.services.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
