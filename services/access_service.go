package services

import (
	"errors"

	"eventdeck/eventdeck/database"
	"eventdeck/eventdeck/models"

	"gorm.io/gorm"
)

// AccessServiceInterface answers two questions: may this principal act on
// this one resource, and which rows of a kind may this principal list.
//
// Ownership is hierarchical. A resource can be acted on by its own creator
// or by the owner of any ancestor: a task by its creator or its event's
// owner, a task update by its creator, its task's creator or its task's
// event's owner. Admins bypass ownership entirely, but a missing resource
// is reported as not found for every role.
type AccessServiceInterface interface {
	CanAccess(db *database.Database, actor models.Principal, kind models.ResourceKind, id uint) error
	ScopedEvents(db *database.Database, actor models.Principal) *gorm.DB
	ScopedTasks(db *database.Database, actor models.Principal) *gorm.DB
	ScopedTaskUpdates(db *database.Database, actor models.Principal) *gorm.DB
}

type AccessService struct{}

func NewAccessService() *AccessService {
	return &AccessService{}
}

// CanAccess resolves the effective owner chain for the resource and checks
// the actor against it. It returns nil when access is granted, the kind's
// not-found error when the resource does not exist, ErrForbidden when the
// actor is outside the chain, and the store error otherwise. Not-found and
// forbidden are never conflated: existence is established first, ownership
// is only evaluated for resources that exist.
func (s *AccessService) CanAccess(db *database.Database, actor models.Principal, kind models.ResourceKind, id uint) error {
	switch kind {
	case models.EventResource:
		return s.canAccessEvent(db, actor, id)
	case models.TaskResource:
		return s.canAccessTask(db, actor, id)
	case models.TaskUpdateResource:
		return s.canAccessTaskUpdate(db, actor, id)
	default:
		return errors.New("invalid resource kind")
	}
}

func (s *AccessService) canAccessEvent(db *database.Database, actor models.Principal, id uint) error {
	var event models.Event
	if err := db.DB.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	if actor.IsAdmin() || event.UserID == actor.UserID {
		return nil
	}
	return ErrForbidden
}

func (s *AccessService) canAccessTask(db *database.Database, actor models.Principal, id uint) error {
	var task models.Task
	if err := db.DB.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	if actor.IsAdmin() || task.UserID == actor.UserID {
		return nil
	}

	// Walk up to the parent event: its owner may act on the task too.
	ownerID, err := eventOwner(db, task.EventID)
	if err != nil {
		return err
	}
	if ownerID == actor.UserID {
		return nil
	}
	return ErrForbidden
}

func (s *AccessService) canAccessTaskUpdate(db *database.Database, actor models.Principal, id uint) error {
	var update models.TaskUpdate
	if err := db.DB.First(&update, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskUpdateNotFound
		}
		return err
	}

	if actor.IsAdmin() || update.UserID == actor.UserID {
		return nil
	}

	// The chain spans two ancestor levels: task creator, then event owner.
	var task models.Task
	if err := db.DB.First(&task, "id = ?", update.TaskID).Error; err != nil {
		return err
	}
	if task.UserID == actor.UserID {
		return nil
	}

	ownerID, err := eventOwner(db, task.EventID)
	if err != nil {
		return err
	}
	if ownerID == actor.UserID {
		return nil
	}
	return ErrForbidden
}

func eventOwner(db *database.Database, eventID uint) (uint, error) {
	var ownerID uint
	err := db.DB.Model(&models.Event{}).
		Where("id = ?", eventID).
		Select("user_id").
		Take(&ownerID).Error
	return ownerID, err
}

// ScopedEvents restricts an event listing to rows the actor is entitled to
// see. Admins get the unrestricted query.
func (s *AccessService) ScopedEvents(db *database.Database, actor models.Principal) *gorm.DB {
	query := db.DB.Model(&models.Event{})
	if actor.IsAdmin() {
		return query
	}
	return query.Where("events.user_id = ?", actor.UserID)
}

// ScopedTasks restricts a task listing to tasks the actor created or tasks
// under events the actor owns, as a single joined query.
func (s *AccessService) ScopedTasks(db *database.Database, actor models.Principal) *gorm.DB {
	query := db.DB.Model(&models.Task{})
	if actor.IsAdmin() {
		return query
	}
	return query.
		Select("tasks.*").
		Joins("JOIN events ON events.id = tasks.event_id").
		Where("tasks.user_id = ? OR events.user_id = ?", actor.UserID, actor.UserID)
}

// ScopedTaskUpdates restricts a task-update listing to the actor's full
// owner chain: own updates, updates on tasks the actor created, and
// updates under events the actor owns.
func (s *AccessService) ScopedTaskUpdates(db *database.Database, actor models.Principal) *gorm.DB {
	query := db.DB.Model(&models.TaskUpdate{})
	if actor.IsAdmin() {
		return query
	}
	return query.
		Select("task_updates.*").
		Joins("JOIN tasks ON tasks.id = task_updates.task_id").
		Joins("JOIN events ON events.id = tasks.event_id").
		Where("task_updates.user_id = ? OR tasks.user_id = ? OR events.user_id = ?",
			actor.UserID, actor.UserID, actor.UserID)
}

var AccessServiceInstance AccessServiceInterface = NewAccessService()
