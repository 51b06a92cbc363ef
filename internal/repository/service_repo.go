package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"carwash/internal/domain"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name;size:100;not null"`
	Description string    `gorm:"column:description;type:text;not null"`
	PriceEUR    float64   `gorm:"column:price_eur;not null"`
	DurationMin int       `gorm:"column:duration_min;not null"`
	Active      bool      `gorm:"column:active;not null;default:true;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (serviceModel) TableName() string { return "services" }

func toDomainService(m serviceModel) *domain.Service {
	return &domain.Service{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		PriceEUR:    m.PriceEUR,
		DurationMin: m.DurationMin,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	m := serviceModel{
		Name:        s.Name,
		Description: s.Description,
		PriceEUR:    s.PriceEUR,
		DurationMin: s.DurationMin,
		Active:      s.Active,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainService(m)
	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var m serviceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainService(m), nil
}

// ListActive returns the catalog as customers see it, cheapest first.
func (r *ServiceRepository) ListActive(ctx context.Context) ([]domain.Service, error) {
	var models []serviceModel
	tx := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("price_eur ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Service, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainService(m))
	}
	return out, nil
}

// Deactivate soft-deletes a service. Existing bookings keep their snapshot.
func (r *ServiceRepository) Deactivate(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Model(&serviceModel{}).
		Where("id = ?", id).
		Update("active", false)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Update edits name/description/price/duration in place. Snapshots on
// existing bookings are untouched by design.
func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	tx := r.db.WithContext(ctx).Model(&serviceModel{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"name":         s.Name,
			"description":  s.Description,
			"price_eur":    s.PriceEUR,
			"duration_min": s.DurationMin,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
