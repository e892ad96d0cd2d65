package database

import (
	"eventdeck/eventdeck/models"

	"gorm.io/gorm"
)

// RunMigrations keeps the schema in sync with the models. Foreign keys are
// created with ON DELETE CASCADE, so removing an event removes its tasks
// and their updates at the store level.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Task{},
		&models.TaskUpdate{},
	)
}
