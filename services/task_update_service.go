package services

import (
	"errors"
	"strings"

	"eventdeck/eventdeck/database"
	"eventdeck/eventdeck/models"

	"gorm.io/gorm"
)

// TaskUpdateInput carries the fields for posting a progress update on a task.
type TaskUpdateInput struct {
	TaskID     uint
	UpdateText string
}

// TaskUpdatePatch carries a partial update; nil fields keep their value.
type TaskUpdatePatch struct {
	UpdateText *string
}

type TaskUpdateServiceInterface interface {
	CreateTaskUpdate(db *database.Database, actor models.Principal, input TaskUpdateInput) (models.TaskUpdate, error)
	GetTaskUpdates(db *database.Database, actor models.Principal) ([]models.TaskUpdate, error)
	GetTaskUpdateById(db *database.Database, actor models.Principal, id uint) (models.TaskUpdate, error)
	UpdateTaskUpdate(db *database.Database, actor models.Principal, id uint, patch TaskUpdatePatch) (models.TaskUpdate, error)
	DeleteTaskUpdate(db *database.Database, actor models.Principal, id uint) error
}

type TaskUpdateService struct {
	access AccessServiceInterface
}

func NewTaskUpdateService(access AccessServiceInterface) *TaskUpdateService {
	return &TaskUpdateService{access: access}
}

func validateUpdateText(ve *ValidationError, value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		ve.Add("update_text", "is required")
	} else if len(trimmed) > updateTextMaxLen {
		ve.Add("update_text", "must be between 1 and 500 characters")
	}
	return trimmed
}

// CreateTaskUpdate posts an update under an existing task. The actor must
// be in the task's owner chain (task creator, event owner, or admin).
func (s *TaskUpdateService) CreateTaskUpdate(db *database.Database, actor models.Principal, input TaskUpdateInput) (models.TaskUpdate, error) {
	ve := &ValidationError{}
	if input.TaskID == 0 {
		ve.Add("task_id", "is required")
	}
	text := validateUpdateText(ve, input.UpdateText)
	if err := ve.OrNil(); err != nil {
		return models.TaskUpdate{}, err
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.TaskUpdate{}, tx.Error
	}
	txdb := &database.Database{DB: tx}

	if err := s.access.CanAccess(txdb, actor, models.TaskResource, input.TaskID); err != nil {
		tx.Rollback()
		return models.TaskUpdate{}, err
	}

	update := models.TaskUpdate{
		TaskID:     input.TaskID,
		UserID:     actor.UserID,
		UpdateText: text,
	}

	if err := tx.Create(&update).Error; err != nil {
		tx.Rollback()
		return models.TaskUpdate{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.TaskUpdate{}, err
	}
	return update, nil
}

func (s *TaskUpdateService) GetTaskUpdates(db *database.Database, actor models.Principal) ([]models.TaskUpdate, error) {
	var updates []models.TaskUpdate
	if err := s.access.ScopedTaskUpdates(db, actor).Find(&updates).Error; err != nil {
		return nil, err
	}
	return updates, nil
}

func (s *TaskUpdateService) GetTaskUpdateById(db *database.Database, actor models.Principal, id uint) (models.TaskUpdate, error) {
	if err := s.access.CanAccess(db, actor, models.TaskUpdateResource, id); err != nil {
		return models.TaskUpdate{}, err
	}

	var update models.TaskUpdate
	if err := db.DB.First(&update, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TaskUpdate{}, ErrTaskUpdateNotFound
		}
		return models.TaskUpdate{}, err
	}
	return update, nil
}

func (s *TaskUpdateService) UpdateTaskUpdate(db *database.Database, actor models.Principal, id uint, patch TaskUpdatePatch) (models.TaskUpdate, error) {
	ve := &ValidationError{}
	var text string
	if patch.UpdateText != nil {
		text = validateUpdateText(ve, *patch.UpdateText)
	}
	if err := ve.OrNil(); err != nil {
		return models.TaskUpdate{}, err
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.TaskUpdate{}, tx.Error
	}
	txdb := &database.Database{DB: tx}

	if err := s.access.CanAccess(txdb, actor, models.TaskUpdateResource, id); err != nil {
		tx.Rollback()
		return models.TaskUpdate{}, err
	}

	var update models.TaskUpdate
	if err := tx.First(&update, "id = ?", id).Error; err != nil {
		tx.Rollback()
		return models.TaskUpdate{}, err
	}

	if patch.UpdateText != nil {
		update.UpdateText = text
		if err := tx.Model(&update).Update("update_text", text).Error; err != nil {
			tx.Rollback()
			return models.TaskUpdate{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.TaskUpdate{}, err
	}
	return update, nil
}

func (s *TaskUpdateService) DeleteTaskUpdate(db *database.Database, actor models.Principal, id uint) error {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	txdb := &database.Database{DB: tx}

	if err := s.access.CanAccess(txdb, actor, models.TaskUpdateResource, id); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Delete(&models.TaskUpdate{}, "id = ?", id).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

var TaskUpdateServiceInstance TaskUpdateServiceInterface = NewTaskUpdateService(AccessServiceInstance)
