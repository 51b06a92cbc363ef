package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"carwash/internal/domain"
)

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	if s != nil && s.ID == 0 {
		s.ID = 1
	}
	return args.Error(0)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) ListActive(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockServiceRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func TestService_Create_MarksActive(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)
	svc, err := service.Create(context.Background(), CreateServiceRequest{
		Name:        "Lavage extérieur rapide",
		Description: "Lavage extérieur à la main",
		PriceEUR:    25,
		DurationMin: 30,
	})

	assert.NoError(t, err)
	assert.True(t, svc.Active)
	assert.Equal(t, int64(1), svc.ID)
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("Update", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)

	service := NewService(repo)
	_, err := service.Update(context.Background(), 99, UpdateServiceRequest{
		Name:        "x",
		Description: "y",
		PriceEUR:    1,
		DurationMin: 1,
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Deactivate_NotFound(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("Deactivate", mock.Anything, int64(99)).Return(gorm.ErrRecordNotFound)

	service := NewService(repo)
	err := service.Deactivate(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ListActive_PassesThrough(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("ListActive", mock.Anything).Return([]domain.Service{
		{ID: 1, Name: "Lavage extérieur rapide", PriceEUR: 25, Active: true},
		{ID: 2, Name: "Complet intérieur + extérieur", PriceEUR: 50, Active: true},
	}, nil)

	service := NewService(repo)
	out, err := service.ListActive(context.Background())

	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "Lavage extérieur rapide", out[0].Name)
}
