package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"carwash/internal/database"
	"carwash/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatal(err)
	}
	return db
}

func testBooking() *domain.Booking {
	planned := time.Date(2025, 10, 29, 14, 0, 0, 0, time.Local)
	return &domain.Booking{
		FullName:           "Jean Dupont",
		Phone:              "+33 6 12 34 56 78",
		Address:            "12 rue des Lilas, Vannes",
		CarMake:            "Renault",
		TimeslotClientText: "29/10/2025 14h",
		ScheduledAt:        &planned,
		ServiceID:          3,
		Service: domain.ServiceSnapshot{
			Name:        "Complet intérieur + extérieur",
			PriceEUR:    50,
			DurationMin: 60,
		},
		TotalPriceEUR: 50,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentUnpaid,
	}
}

func TestBookingRepository_CreateAssignsCanonicalKey(t *testing.T) {
	repo := NewBookingRepository(newTestDB(t))
	ctx := context.Background()

	b := testBooking()
	assert.NoError(t, repo.Create(ctx, b))
	assert.NotEmpty(t, b.ID)

	got, err := repo.GetByID(ctx, domain.ResolveBookingID(b.ID))
	assert.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, "Complet intérieur + extérieur", got.Service.Name)
	assert.Equal(t, 50.0, got.TotalPriceEUR)
}

func TestBookingRepository_RawStringKeySurvivesLifecycle(t *testing.T) {
	repo := NewBookingRepository(newTestDB(t))
	ctx := context.Background()

	// Rows imported from the old system carry arbitrary string keys.
	b := testBooking()
	b.ID = "legacy-123"
	assert.NoError(t, repo.Create(ctx, b))

	id := domain.ResolveBookingID("legacy-123")
	assert.False(t, id.IsStructured())

	matched, err := repo.UpdateStatus(ctx, id, domain.BookingDone)
	assert.NoError(t, err)
	assert.True(t, matched)

	got, err := repo.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingDone, got.Status)
}

func TestBookingRepository_GetByID_NotFound(t *testing.T) {
	repo := NewBookingRepository(newTestDB(t))

	_, err := repo.GetByID(context.Background(), domain.ResolveBookingID("missing"))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBookingRepository_UpdateStatus_NoRowMatched(t *testing.T) {
	repo := NewBookingRepository(newTestDB(t))

	matched, err := repo.UpdateStatus(context.Background(), domain.ResolveBookingID("missing"), domain.BookingDone)
	assert.NoError(t, err)
	assert.False(t, matched)
}

func TestBookingRepository_AssignWasherSetsStatus(t *testing.T) {
	repo := NewBookingRepository(newTestDB(t))
	ctx := context.Background()

	b := testBooking()
	assert.NoError(t, repo.Create(ctx, b))

	matched, err := repo.AssignWasher(ctx, domain.ResolveBookingID(b.ID), 42)
	assert.NoError(t, err)
	assert.True(t, matched)

	got, err := repo.GetByID(ctx, domain.ResolveBookingID(b.ID))
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingAssigned, got.Status)
	if assert.NotNil(t, got.AssignedWasherID) {
		assert.Equal(t, int64(42), *got.AssignedWasherID)
	}
}

func TestBookingRepository_ListByCustomer_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	customerID := int64(7)

	older := testBooking()
	older.CustomerID = &customerID
	older.CreatedAt = time.Now().Add(-2 * time.Hour)
	older.UpdatedAt = older.CreatedAt
	assert.NoError(t, repo.Create(ctx, older))

	newer := testBooking()
	newer.CustomerID = &customerID
	newer.CreatedAt = time.Now().Add(-1 * time.Hour)
	newer.UpdatedAt = newer.CreatedAt
	assert.NoError(t, repo.Create(ctx, newer))

	other := testBooking()
	assert.NoError(t, repo.Create(ctx, other))

	got, err := repo.ListByCustomer(ctx, customerID)
	assert.NoError(t, err)
	if assert.Len(t, got, 2) {
		assert.Equal(t, newer.ID, got[0].ID)
		assert.Equal(t, older.ID, got[1].ID)
	}
}

func TestBookingRepository_ListAllWithCustomer_JoinsContact(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	u := &domain.User{
		FullName:     "Marie Curie",
		Phone:        "+33 6 99 88 77 66",
		Email:        "marie@test.fr",
		PasswordHash: "x",
		Role:         domain.RoleClient,
	}
	assert.NoError(t, users.Create(ctx, u))

	linked := testBooking()
	linked.CustomerID = &u.ID
	assert.NoError(t, bookings.Create(ctx, linked))

	guest := testBooking()
	guest.FullName = "Guest Walker"
	later := time.Date(2025, 10, 30, 10, 0, 0, 0, time.Local)
	guest.ScheduledAt = &later
	assert.NoError(t, bookings.Create(ctx, guest))

	rows, err := bookings.ListAllWithCustomer(ctx)
	assert.NoError(t, err)
	if assert.Len(t, rows, 2) {
		// Ordered soonest first.
		assert.Equal(t, linked.ID, rows[0].Booking.ID)
		assert.Equal(t, "Marie Curie", rows[0].CustomerName)
		assert.Equal(t, guest.ID, rows[1].Booking.ID)
		assert.Empty(t, rows[1].CustomerName)
	}
}
