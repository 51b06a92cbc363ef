package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"carwash/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// The primary key is TEXT, not an integer sequence: API-created rows carry
// canonical UUIDs, while rows imported from the old system keep whatever
// string key they arrived with. Every lookup and update therefore goes
// through the BookingID candidates (canonical form first, raw text second).
type bookingModel struct {
	ID string `gorm:"column:id;primaryKey;size:64"`

	CustomerID *int64 `gorm:"column:customer_id;index"`
	FullName   string `gorm:"column:full_name;size:100;not null"`
	Phone      string `gorm:"column:phone;size:30;not null"`
	Address    string `gorm:"column:address;size:255;not null"`

	CarMake  string `gorm:"column:car_make;size:50;not null"`
	CarModel string `gorm:"column:car_model;size:50"`
	CarColor string `gorm:"column:car_color;size:30"`

	TimeslotClientText string     `gorm:"column:timeslot_client_text;size:100;not null"`
	ScheduledAt        *time.Time `gorm:"column:scheduled_at;index"`

	ServiceID          int64   `gorm:"column:service_id;not null"`
	ServiceName        string  `gorm:"column:service_name;size:100;not null"`
	ServicePriceEUR    float64 `gorm:"column:service_price_eur;not null"`
	ServiceDurationMin int     `gorm:"column:service_duration_min;not null"`

	TotalPriceEUR float64 `gorm:"column:total_price_eur;not null"`
	Status        string  `gorm:"column:status;size:20;not null;default:'pending'"`
	PaymentStatus string  `gorm:"column:payment_status;size:20;not null;default:'unpaid'"`

	PaymentIntentID  *string `gorm:"column:payment_intent_id;size:100"`
	AssignedWasherID *int64  `gorm:"column:assigned_washer_id"`

	CreatedAt time.Time `gorm:"column:created_at;index"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var paymentIntentID string
	if m.PaymentIntentID != nil {
		paymentIntentID = *m.PaymentIntentID
	}

	return &domain.Booking{
		ID:                 m.ID,
		CustomerID:         m.CustomerID,
		FullName:           m.FullName,
		Phone:              m.Phone,
		Address:            m.Address,
		CarMake:            m.CarMake,
		CarModel:           m.CarModel,
		CarColor:           m.CarColor,
		TimeslotClientText: m.TimeslotClientText,
		ScheduledAt:        m.ScheduledAt,
		ServiceID:          m.ServiceID,
		Service: domain.ServiceSnapshot{
			Name:        m.ServiceName,
			PriceEUR:    m.ServicePriceEUR,
			DurationMin: m.ServiceDurationMin,
		},
		TotalPriceEUR:    m.TotalPriceEUR,
		Status:           domain.BookingStatus(m.Status),
		PaymentStatus:    domain.PaymentStatus(m.PaymentStatus),
		PaymentIntentID:  paymentIntentID,
		AssignedWasherID: m.AssignedWasherID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var paymentIntentID *string
	if b.PaymentIntentID != "" {
		v := b.PaymentIntentID
		paymentIntentID = &v
	}

	return bookingModel{
		ID:                 b.ID,
		CustomerID:         b.CustomerID,
		FullName:           b.FullName,
		Phone:              b.Phone,
		Address:            b.Address,
		CarMake:            b.CarMake,
		CarModel:           b.CarModel,
		CarColor:           b.CarColor,
		TimeslotClientText: b.TimeslotClientText,
		ScheduledAt:        b.ScheduledAt,
		ServiceID:          b.ServiceID,
		ServiceName:        b.Service.Name,
		ServicePriceEUR:    b.Service.PriceEUR,
		ServiceDurationMin: b.Service.DurationMin,
		TotalPriceEUR:      b.TotalPriceEUR,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		PaymentIntentID:    paymentIntentID,
		AssignedWasherID:   b.AssignedWasherID,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = domain.NewBookingID()
	}
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// GetByID tries each identifier candidate in order and returns
// gorm.ErrRecordNotFound only after all of them miss.
func (r *BookingRepository) GetByID(ctx context.Context, id domain.BookingID) (*domain.Booking, error) {
	for _, key := range id.Candidates() {
		var m bookingModel
		tx := r.db.WithContext(ctx).Where("id = ?", key).First(&m)
		if tx.Error == nil {
			return toDomainBooking(m), nil
		}
		if tx.Error != gorm.ErrRecordNotFound {
			return nil, tx.Error
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// updateByCandidates applies fields to the first candidate key that matches
// a row. The bool reports whether any row was written.
func (r *BookingRepository) updateByCandidates(ctx context.Context, id domain.BookingID, fields map[string]any) (bool, error) {
	fields["updated_at"] = time.Now()
	for _, key := range id.Candidates() {
		tx := r.db.WithContext(ctx).Model(&bookingModel{}).
			Where("id = ?", key).
			Updates(fields)
		if tx.Error != nil {
			return false, tx.Error
		}
		if tx.RowsAffected > 0 {
			return true, nil
		}
	}
	return false, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id domain.BookingID, status domain.BookingStatus) (bool, error) {
	return r.updateByCandidates(ctx, id, map[string]any{"status": string(status)})
}

func (r *BookingRepository) AssignWasher(ctx context.Context, id domain.BookingID, washerID int64) (bool, error) {
	return r.updateByCandidates(ctx, id, map[string]any{
		"assigned_washer_id": washerID,
		"status":             string(domain.BookingAssigned),
	})
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, id domain.BookingID, status domain.PaymentStatus) (bool, error) {
	return r.updateByCandidates(ctx, id, map[string]any{"payment_status": string(status)})
}

// ListByCustomer returns the caller's own bookings, newest first.
func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// BookingOverview is a booking plus the display fields the admin mission
// board needs. CustomerName/CustomerPhone come from the users table for
// registered customers; the service layer falls back to the booking's
// inline contact fields for guests.
type BookingOverview struct {
	Booking       domain.Booking
	CustomerName  string
	CustomerPhone string
}

type adminBookingRow struct {
	Booking       bookingModel `gorm:"embedded"`
	CustomerName  *string      `gorm:"column:customer_name"`
	CustomerPhone *string      `gorm:"column:customer_phone"`
}

// ListAllWithCustomer returns every booking ordered soonest first, with the
// registered customer's contact joined in for display. Read-only; nothing
// is denormalized back into storage.
func (r *BookingRepository) ListAllWithCustomer(ctx context.Context) ([]BookingOverview, error) {
	var rows []adminBookingRow
	q := `
SELECT b.*, u.full_name AS customer_name, u.phone AS customer_phone
FROM bookings b
LEFT JOIN users u ON u.id = b.customer_id
ORDER BY b.scheduled_at ASC
`
	tx := r.db.WithContext(ctx).Raw(q).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]BookingOverview, 0, len(rows))
	for _, row := range rows {
		o := BookingOverview{Booking: *toDomainBooking(row.Booking)}
		if row.CustomerName != nil {
			o.CustomerName = *row.CustomerName
		}
		if row.CustomerPhone != nil {
			o.CustomerPhone = *row.CustomerPhone
		}
		out = append(out, o)
	}
	return out, nil
}
