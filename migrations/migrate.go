package migrations

import (
	"gorm.io/gorm"

	"github.com/teg-hub/fair-chance-workforce-platform/models"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Referral{},
		&models.Case{},
		&models.ProgressNote{},
	)
}
