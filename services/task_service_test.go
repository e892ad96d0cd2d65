package services

import (
	"testing"

	"eventdeck/eventdeck/models"
	"eventdeck/eventdeck/testutils"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCreateTask_EventOwner(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WithArgs(10, 1).
		WillReturnRows(eventRows(10, ownerPrincipal.UserID))
	mock.ExpectQuery(`INSERT INTO "tasks"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(20))
	mock.ExpectCommit()

	taskService := NewTaskService(NewAccessService())
	task, err := taskService.CreateTask(db, ownerPrincipal, TaskInput{
		EventID: 10,
		Name:    "Book venue",
		DueDate: futureDate(),
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(20), task.ID)
	assert.Equal(t, uint(10), task.EventID)
	assert.Equal(t, ownerPrincipal.UserID, task.UserID)
	assert.Equal(t, models.TaskStatusDefault, task.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTask_EventNotFound(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WithArgs(404, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	taskService := NewTaskService(NewAccessService())
	_, err := taskService.CreateTask(db, ownerPrincipal, TaskInput{
		EventID: 404,
		Name:    "Book venue",
		DueDate: futureDate(),
	})

	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTask_NotEventOwnerForbidden(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WithArgs(10, 1).
		WillReturnRows(eventRows(10, ownerPrincipal.UserID))
	mock.ExpectRollback()

	taskService := NewTaskService(NewAccessService())
	_, err := taskService.CreateTask(db, strangerPrincipal, TaskInput{
		EventID: 10,
		Name:    "Book venue",
		DueDate: futureDate(),
	})

	assert.ErrorIs(t, err, ErrForbidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTask_ValidationRejectedBeforeStore(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	taskService := NewTaskService(NewAccessService())
	_, err := taskService.CreateTask(db, ownerPrincipal, TaskInput{
		Name:    "x",
		DueDate: "2020-01-01",
	})

	ve, ok := AsValidation(err)
	assert.True(t, ok)
	fields := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		fields = append(fields, f.Field)
	}
	assert.Contains(t, fields, "event_id")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "due_date")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTasks_ScopedToChain(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT tasks\.\* FROM "tasks" JOIN events`).
		WithArgs(ownerPrincipal.UserID, ownerPrincipal.UserID).
		WillReturnRows(taskRows(20, 10, ownerPrincipal.UserID))

	taskService := NewTaskService(NewAccessService())
	tasks, err := taskService.GetTasks(db, ownerPrincipal)

	assert.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTaskById_ViaEventOwner(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT \* FROM "tasks"`).
		WithArgs(20, 1).
		WillReturnRows(taskRows(20, 10, strangerPrincipal.UserID))
	mock.ExpectQuery(`SELECT "user_id" FROM "events"`).
		WithArgs(10, 1).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(ownerPrincipal.UserID))
	mock.ExpectQuery(`SELECT \* FROM "tasks"`).
		WithArgs(20, 1).
		WillReturnRows(taskRows(20, 10, strangerPrincipal.UserID))

	taskService := NewTaskService(NewAccessService())
	task, err := taskService.GetTaskById(db, ownerPrincipal, 20)

	assert.NoError(t, err)
	assert.Equal(t, uint(20), task.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTask_Status(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "tasks"`).
		WithArgs(20, 1).
		WillReturnRows(taskRows(20, 10, ownerPrincipal.UserID))
	mock.ExpectQuery(`SELECT \* FROM "tasks"`).
		WithArgs(20, 1).
		WillReturnRows(taskRows(20, 10, ownerPrincipal.UserID))
	mock.ExpectExec(`UPDATE "tasks"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	status := "Completed"
	taskService := NewTaskService(NewAccessService())
	task, err := taskService.UpdateTask(db, ownerPrincipal, 20, TaskPatch{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, "Completed", task.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTask_StrangerForbidden(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "tasks"`).
		WithArgs(20, 1).
		WillReturnRows(taskRows(20, 10, 7))
	mock.ExpectQuery(`SELECT "user_id" FROM "events"`).
		WithArgs(10, 1).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(8))
	mock.ExpectRollback()

	taskService := NewTaskService(NewAccessService())
	err := taskService.DeleteTask(db, strangerPrincipal, 20)

	assert.ErrorIs(t, err, ErrForbidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTask_Creator(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "tasks"`).
		WithArgs(20, 1).
		WillReturnRows(taskRows(20, 10, ownerPrincipal.UserID))
	mock.ExpectExec(`DELETE FROM "tasks"`).
		WithArgs(20).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	taskService := NewTaskService(NewAccessService())
	err := taskService.DeleteTask(db, ownerPrincipal, 20)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTaskUpdates_ChecksTaskChain(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT \* FROM "tasks"`).
		WithArgs(20, 1).
		WillReturnRows(taskRows(20, 10, ownerPrincipal.UserID))
	mock.ExpectQuery(`SELECT \* FROM "task_updates"`).
		WithArgs(20).
		WillReturnRows(taskUpdateRows(30, 20, ownerPrincipal.UserID))

	taskService := NewTaskService(NewAccessService())
	updates, err := taskService.GetTaskUpdates(db, ownerPrincipal, 20)

	assert.NoError(t, err)
	assert.Len(t, updates, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
