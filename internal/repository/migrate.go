package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table the
// repositories own. Called from cmd/api and cmd/seed.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&serviceModel{},
		&bookingModel{},
	)
}
