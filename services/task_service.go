package services

import (
	"errors"
	"strings"
	"time"

	"eventdeck/eventdeck/database"
	"eventdeck/eventdeck/models"

	"gorm.io/gorm"
)

// TaskInput carries the fields for creating a task under an event.
type TaskInput struct {
	EventID     uint
	Name        string
	Description string
	DueDate     string
	Status      string
}

// TaskPatch carries a partial update; nil fields keep their value.
type TaskPatch struct {
	Name        *string
	Description *string
	DueDate     *string
	Status      *string
}

type TaskServiceInterface interface {
	CreateTask(db *database.Database, actor models.Principal, input TaskInput) (models.Task, error)
	GetTasks(db *database.Database, actor models.Principal) ([]models.Task, error)
	GetTaskById(db *database.Database, actor models.Principal, id uint) (models.Task, error)
	UpdateTask(db *database.Database, actor models.Principal, id uint, patch TaskPatch) (models.Task, error)
	DeleteTask(db *database.Database, actor models.Principal, id uint) error
	GetTaskUpdates(db *database.Database, actor models.Principal, taskID uint) ([]models.TaskUpdate, error)
}

type TaskService struct {
	access AccessServiceInterface
}

func NewTaskService(access AccessServiceInterface) *TaskService {
	return &TaskService{access: access}
}

// CreateTask creates a task under an existing event. Only the event's
// owner or an admin may add tasks to it; the creator is recorded on the
// task independently of the event's owner.
func (s *TaskService) CreateTask(db *database.Database, actor models.Principal, input TaskInput) (models.Task, error) {
	ve := &ValidationError{}
	if input.EventID == 0 {
		ve.Add("event_id", "is required")
	}
	validateName(ve, "name", input.Name)
	validateDescription(ve, "description", input.Description)
	dueDate := parseDate(ve, "due_date", input.DueDate)
	if err := ve.OrNil(); err != nil {
		return models.Task{}, err
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = models.TaskStatusDefault
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Task{}, tx.Error
	}
	txdb := &database.Database{DB: tx}

	// Missing event reports not found, foreign event reports forbidden.
	if err := s.access.CanAccess(txdb, actor, models.EventResource, input.EventID); err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	task := models.Task{
		EventID:     input.EventID,
		UserID:      actor.UserID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Status:      status,
		DueDate:     dueDate,
	}

	if err := tx.Create(&task).Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}
	return task, nil
}

func (s *TaskService) GetTasks(db *database.Database, actor models.Principal) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.access.ScopedTasks(db, actor).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) GetTaskById(db *database.Database, actor models.Principal, id uint) (models.Task, error) {
	if err := s.access.CanAccess(db, actor, models.TaskResource, id); err != nil {
		return models.Task{}, err
	}

	var task models.Task
	if err := db.DB.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}
	return task, nil
}

func (s *TaskService) UpdateTask(db *database.Database, actor models.Principal, id uint, patch TaskPatch) (models.Task, error) {
	ve := &ValidationError{}
	var dueDate time.Time
	if patch.Name != nil {
		validateName(ve, "name", *patch.Name)
	}
	if patch.Description != nil {
		validateDescription(ve, "description", *patch.Description)
	}
	if patch.DueDate != nil {
		dueDate = parseDate(ve, "due_date", *patch.DueDate)
	}
	if err := ve.OrNil(); err != nil {
		return models.Task{}, err
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Task{}, tx.Error
	}
	txdb := &database.Database{DB: tx}

	if err := s.access.CanAccess(txdb, actor, models.TaskResource, id); err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	var task models.Task
	if err := tx.First(&task, "id = ?", id).Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		task.Name = strings.TrimSpace(*patch.Name)
		updates["name"] = task.Name
	}
	if patch.Description != nil {
		task.Description = strings.TrimSpace(*patch.Description)
		updates["description"] = task.Description
	}
	if patch.DueDate != nil {
		task.DueDate = dueDate
		updates["due_date"] = dueDate
	}
	if patch.Status != nil {
		task.Status = strings.TrimSpace(*patch.Status)
		updates["status"] = task.Status
	}

	if len(updates) > 0 {
		if err := tx.Model(&task).Updates(updates).Error; err != nil {
			tx.Rollback()
			return models.Task{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(db *database.Database, actor models.Principal, id uint) error {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	txdb := &database.Database{DB: tx}

	if err := s.access.CanAccess(txdb, actor, models.TaskResource, id); err != nil {
		tx.Rollback()
		return err
	}

	// ON DELETE CASCADE removes the task's updates.
	if err := tx.Delete(&models.Task{}, "id = ?", id).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// GetTaskUpdates lists the updates of one task after checking the task's
// owner chain.
func (s *TaskService) GetTaskUpdates(db *database.Database, actor models.Principal, taskID uint) ([]models.TaskUpdate, error) {
	if err := s.access.CanAccess(db, actor, models.TaskResource, taskID); err != nil {
		return nil, err
	}

	var updates []models.TaskUpdate
	if err := db.DB.Where("task_id = ?", taskID).Find(&updates).Error; err != nil {
		return nil, err
	}
	return updates, nil
}

var TaskServiceInstance TaskServiceInterface = NewTaskService(AccessServiceInstance)
