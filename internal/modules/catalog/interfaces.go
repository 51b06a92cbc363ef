package catalog

import (
	"context"

	"carwash/internal/domain"
)

type ServiceRepositoryInterface interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListActive(ctx context.Context) ([]domain.Service, error)
	Deactivate(ctx context.Context, id int64) error
	Update(ctx context.Context, s *domain.Service) error
}
