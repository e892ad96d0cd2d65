package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"eventdeck/eventdeck/database"
	"eventdeck/eventdeck/models"
	"eventdeck/eventdeck/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockTaskService struct {
	createFn      func(models.Principal, services.TaskInput) (models.Task, error)
	listFn        func(models.Principal) ([]models.Task, error)
	getFn         func(models.Principal, uint) (models.Task, error)
	updateFn      func(models.Principal, uint, services.TaskPatch) (models.Task, error)
	deleteFn      func(models.Principal, uint) error
	listUpdatesFn func(models.Principal, uint) ([]models.TaskUpdate, error)
}

func (m *mockTaskService) CreateTask(db *database.Database, actor models.Principal, input services.TaskInput) (models.Task, error) {
	return m.createFn(actor, input)
}

func (m *mockTaskService) GetTasks(db *database.Database, actor models.Principal) ([]models.Task, error) {
	return m.listFn(actor)
}

func (m *mockTaskService) GetTaskById(db *database.Database, actor models.Principal, id uint) (models.Task, error) {
	return m.getFn(actor, id)
}

func (m *mockTaskService) UpdateTask(db *database.Database, actor models.Principal, id uint, patch services.TaskPatch) (models.Task, error) {
	return m.updateFn(actor, id, patch)
}

func (m *mockTaskService) DeleteTask(db *database.Database, actor models.Principal, id uint) error {
	return m.deleteFn(actor, id)
}

func (m *mockTaskService) GetTaskUpdates(db *database.Database, actor models.Principal, taskID uint) ([]models.TaskUpdate, error) {
	return m.listUpdatesFn(actor, taskID)
}

func taskRouter(principal *models.Principal, service services.TaskServiceInterface) *gin.Engine {
	return newTestRouter(principal, func(group *gin.RouterGroup) {
		RegisterTaskRoutes(group, nil, service)
	})
}

func TestCreateTaskRoute_Created(t *testing.T) {
	service := &mockTaskService{
		createFn: func(actor models.Principal, input services.TaskInput) (models.Task, error) {
			return models.Task{ID: 20, EventID: input.EventID, UserID: actor.UserID, Name: input.Name}, nil
		},
	}
	router := taskRouter(&ownerPrincipal, service)

	w := performRequest(router, http.MethodPost, "/tasks", gin.H{
		"event_id": 10,
		"name":     "Book venue",
		"due_date": "2030-06-01",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var task models.Task
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	assert.Equal(t, uint(20), task.ID)
	assert.Equal(t, uint(10), task.EventID)
}

func TestCreateTaskRoute_MissingEventNotFound(t *testing.T) {
	service := &mockTaskService{
		createFn: func(actor models.Principal, input services.TaskInput) (models.Task, error) {
			return models.Task{}, services.ErrEventNotFound
		},
	}
	router := taskRouter(&ownerPrincipal, service)

	w := performRequest(router, http.MethodPost, "/tasks", gin.H{
		"event_id": 404,
		"name":     "Book venue",
		"due_date": "2030-06-01",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateTaskRoute_ForeignEventForbidden(t *testing.T) {
	service := &mockTaskService{
		createFn: func(actor models.Principal, input services.TaskInput) (models.Task, error) {
			return models.Task{}, services.ErrForbidden
		},
	}
	router := taskRouter(&strangerPrincipal, service)

	w := performRequest(router, http.MethodPost, "/tasks", gin.H{
		"event_id": 10,
		"name":     "Book venue",
		"due_date": "2030-06-01",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetTaskByIdRoute_NotFound(t *testing.T) {
	service := &mockTaskService{
		getFn: func(actor models.Principal, id uint) (models.Task, error) {
			return models.Task{}, services.ErrTaskNotFound
		},
	}
	router := taskRouter(&ownerPrincipal, service)

	w := performRequest(router, http.MethodGet, "/tasks/404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTaskRoute_Ok(t *testing.T) {
	service := &mockTaskService{
		updateFn: func(actor models.Principal, id uint, patch services.TaskPatch) (models.Task, error) {
			task := models.Task{ID: id, Status: models.TaskStatusDefault}
			if patch.Status != nil {
				task.Status = *patch.Status
			}
			return task, nil
		},
	}
	router := taskRouter(&ownerPrincipal, service)

	w := performRequest(router, http.MethodPut, "/tasks/20", gin.H{"status": "Completed"})

	assert.Equal(t, http.StatusOK, w.Code)
	var task models.Task
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	assert.Equal(t, "Completed", task.Status)
}

func TestDeleteTaskRoute_NoContent(t *testing.T) {
	service := &mockTaskService{
		deleteFn: func(actor models.Principal, id uint) error { return nil },
	}
	router := taskRouter(&ownerPrincipal, service)

	w := performRequest(router, http.MethodDelete, "/tasks/20", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteTaskRoute_StrangerForbidden(t *testing.T) {
	service := &mockTaskService{
		deleteFn: func(actor models.Principal, id uint) error { return services.ErrForbidden },
	}
	router := taskRouter(&strangerPrincipal, service)

	w := performRequest(router, http.MethodDelete, "/tasks/20", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetTaskUpdatesRoute_ListsChildren(t *testing.T) {
	service := &mockTaskService{
		listUpdatesFn: func(actor models.Principal, taskID uint) ([]models.TaskUpdate, error) {
			return []models.TaskUpdate{{ID: 30, TaskID: taskID}}, nil
		},
	}
	router := taskRouter(&ownerPrincipal, service)

	w := performRequest(router, http.MethodGet, "/tasks/20/updates", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var updates []models.TaskUpdate
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updates))
	assert.Len(t, updates, 1)
}

func TestTaskRoutes_MissingPrincipalUnauthorized(t *testing.T) {
	service := &mockTaskService{}
	router := taskRouter(nil, service)

	w := performRequest(router, http.MethodGet, "/tasks", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
