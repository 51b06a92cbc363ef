package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"carwash/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	FullName     string    `gorm:"column:full_name;size:100;not null"`
	Phone        string    `gorm:"column:phone;size:30;not null"`
	Email        string    `gorm:"column:email;size:100;uniqueIndex;not null"`
	Address      *string   `gorm:"column:address;size:255"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null"`
	Role         string    `gorm:"column:role;size:20;not null;default:'client'"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	var address string
	if m.Address != nil {
		address = *m.Address
	}

	return &domain.User{
		ID:           m.ID,
		FullName:     m.FullName,
		Phone:        m.Phone,
		Email:        m.Email,
		Address:      address,
		PasswordHash: m.PasswordHash,
		Role:         domain.UserRole(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	var address *string
	if u.Address != "" {
		v := u.Address
		address = &v
	}

	return userModel{
		ID:           u.ID,
		FullName:     u.FullName,
		Phone:        u.Phone,
		Email:        strings.ToLower(strings.TrimSpace(u.Email)),
		Address:      address,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// UpdateRoleByEmail is the out-of-band promotion path used by cmd/makeadmin.
// It returns the updated user so the operator sees what changed.
func (r *UserRepository) UpdateRoleByEmail(ctx context.Context, email string, role domain.UserRole) (*domain.User, error) {
	user, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("id = ?", user.ID).
		Update("role", string(role))
	if tx.Error != nil {
		return nil, tx.Error
	}

	user.Role = role
	return user, nil
}
