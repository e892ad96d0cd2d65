package database

import (
	"log"
	"time"

	"eventdeck/eventdeck/models"

	"golang.org/x/crypto/bcrypt"
)

// Seed loads a small development fixture: one admin, two regular users,
// and a handful of events, tasks and task updates spread across them.
// It is a no-op when any user already exists.
func Seed(d *Database) error {
	var userCount int64
	if err := d.DB.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		log.Println("Database already seeded, skipping")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []models.User{
		{Name: "admin", Email: "admin@example.com", PasswordHash: string(hashed), Role: models.RoleAdmin},
		{Name: "user1", Email: "user1@example.com", PasswordHash: string(hashed), Role: models.RoleUser},
		{Name: "user2", Email: "user2@example.com", PasswordHash: string(hashed), Role: models.RoleUser},
	}
	if err := d.DB.Create(&users).Error; err != nil {
		return err
	}

	nextWeek := time.Now().AddDate(0, 0, 7)
	events := []models.Event{
		{UserID: users[1].ID, Name: "Team Offsite", Description: "Quarterly planning offsite", Date: nextWeek},
		{UserID: users[2].ID, Name: "Product Launch", Description: "Launch day coordination", Date: nextWeek.AddDate(0, 0, 7)},
	}
	if err := d.DB.Create(&events).Error; err != nil {
		return err
	}

	tasks := []models.Task{
		{EventID: events[0].ID, UserID: users[1].ID, Name: "Book venue", Status: models.TaskStatusDefault, DueDate: nextWeek.AddDate(0, 0, -2)},
		{EventID: events[1].ID, UserID: users[2].ID, Name: "Prepare press kit", Status: models.TaskStatusDefault, DueDate: nextWeek.AddDate(0, 0, 5)},
	}
	if err := d.DB.Create(&tasks).Error; err != nil {
		return err
	}

	updates := []models.TaskUpdate{
		{TaskID: tasks[0].ID, UserID: users[1].ID, UpdateText: "Shortlisted three venues"},
		{TaskID: tasks[1].ID, UserID: users[2].ID, UpdateText: "Draft sent for review"},
	}
	if err := d.DB.Create(&updates).Error; err != nil {
		return err
	}

	log.Println("Seeded development data")
	return nil
}
