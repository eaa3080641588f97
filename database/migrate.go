package database

import (
	"gorm.io/gorm"

	"schoolhub_backend/internal/models"
)

// Migrate applies the schema for every model. The uuid-ossp extension backs
// the uuid_generate_v4 column defaults.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.School{},
		&models.Review{},
		&models.Notification{},
	)
}
