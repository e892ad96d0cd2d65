package services

import (
	"errors"
	"strings"
	"time"

	"eventdeck/eventdeck/database"
	"eventdeck/eventdeck/models"

	"gorm.io/gorm"
)

// EventInput carries the fields for creating an event. Dates travel as
// YYYY-MM-DD strings and are validated before any store access.
type EventInput struct {
	Name        string
	Description string
	Date        string
}

// EventPatch carries a partial update; nil fields keep their value.
type EventPatch struct {
	Name        *string
	Description *string
	Date        *string
}

type EventServiceInterface interface {
	CreateEvent(db *database.Database, actor models.Principal, input EventInput) (models.Event, error)
	GetEvents(db *database.Database, actor models.Principal) ([]models.Event, error)
	GetEventById(db *database.Database, actor models.Principal, id uint) (models.Event, error)
	UpdateEvent(db *database.Database, actor models.Principal, id uint, patch EventPatch) (models.Event, error)
	DeleteEvent(db *database.Database, actor models.Principal, id uint) error
	GetEventTasks(db *database.Database, actor models.Principal, id uint) ([]models.Task, error)
}

type EventService struct {
	access AccessServiceInterface
}

func NewEventService(access AccessServiceInterface) *EventService {
	return &EventService{access: access}
}

func (s *EventService) CreateEvent(db *database.Database, actor models.Principal, input EventInput) (models.Event, error) {
	ve := &ValidationError{}
	validateName(ve, "name", input.Name)
	validateDescription(ve, "description", input.Description)
	date := parseDate(ve, "date", input.Date)
	if err := ve.OrNil(); err != nil {
		return models.Event{}, err
	}

	event := models.Event{
		UserID:      actor.UserID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Date:        date,
	}

	if err := db.DB.Create(&event).Error; err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (s *EventService) GetEvents(db *database.Database, actor models.Principal) ([]models.Event, error) {
	var events []models.Event
	if err := s.access.ScopedEvents(db, actor).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventService) GetEventById(db *database.Database, actor models.Principal, id uint) (models.Event, error) {
	if err := s.access.CanAccess(db, actor, models.EventResource, id); err != nil {
		return models.Event{}, err
	}

	var event models.Event
	if err := db.DB.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Event{}, ErrEventNotFound
		}
		return models.Event{}, err
	}
	return event, nil
}

func (s *EventService) UpdateEvent(db *database.Database, actor models.Principal, id uint, patch EventPatch) (models.Event, error) {
	ve := &ValidationError{}
	var date time.Time
	if patch.Name != nil {
		validateName(ve, "name", *patch.Name)
	}
	if patch.Description != nil {
		validateDescription(ve, "description", *patch.Description)
	}
	if patch.Date != nil {
		date = parseDate(ve, "date", *patch.Date)
	}
	if err := ve.OrNil(); err != nil {
		return models.Event{}, err
	}

	// The ownership check and the write share one transaction so the row
	// cannot disappear between them.
	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Event{}, tx.Error
	}
	txdb := &database.Database{DB: tx}

	if err := s.access.CanAccess(txdb, actor, models.EventResource, id); err != nil {
		tx.Rollback()
		return models.Event{}, err
	}

	var event models.Event
	if err := tx.First(&event, "id = ?", id).Error; err != nil {
		tx.Rollback()
		return models.Event{}, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		event.Name = strings.TrimSpace(*patch.Name)
		updates["name"] = event.Name
	}
	if patch.Description != nil {
		event.Description = strings.TrimSpace(*patch.Description)
		updates["description"] = event.Description
	}
	if patch.Date != nil {
		event.Date = date
		updates["date"] = date
	}

	if len(updates) > 0 {
		if err := tx.Model(&event).Updates(updates).Error; err != nil {
			tx.Rollback()
			return models.Event{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Event{}, err
	}
	return event, nil
}

func (s *EventService) DeleteEvent(db *database.Database, actor models.Principal, id uint) error {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	txdb := &database.Database{DB: tx}

	if err := s.access.CanAccess(txdb, actor, models.EventResource, id); err != nil {
		tx.Rollback()
		return err
	}

	// ON DELETE CASCADE removes the event's tasks and their updates.
	if err := tx.Delete(&models.Event{}, "id = ?", id).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (s *EventService) GetEventTasks(db *database.Database, actor models.Principal, id uint) ([]models.Task, error) {
	if err := s.access.CanAccess(db, actor, models.EventResource, id); err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err := db.DB.Where("event_id = ?", id).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

var EventServiceInstance EventServiceInterface = NewEventService(AccessServiceInstance)
