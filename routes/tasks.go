package routes

import (
	"net/http"

	"eventdeck/eventdeck/database"
	"eventdeck/eventdeck/services"

	"github.com/gin-gonic/gin"
)

type taskRequest struct {
	EventID     uint   `json:"event_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
}

type taskPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
}

func RegisterTaskRoutes(group *gin.RouterGroup, db *database.Database, taskService services.TaskServiceInterface) {
	tasks := group.Group("/tasks")
	{
		tasks.GET("", func(c *gin.Context) { GetTasks(c, db, taskService) })
		tasks.POST("", func(c *gin.Context) { CreateTask(c, db, taskService) })
		tasks.GET("/:id", func(c *gin.Context) { GetTaskById(c, db, taskService) })
		tasks.PUT("/:id", func(c *gin.Context) { UpdateTask(c, db, taskService) })
		tasks.DELETE("/:id", func(c *gin.Context) { DeleteTask(c, db, taskService) })
		tasks.GET("/:id/updates", func(c *gin.Context) { GetTaskUpdatesForTask(c, db, taskService) })
	}
}

func GetTasks(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	tasks, err := taskService.GetTasks(db, principal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func CreateTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var request taskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := taskService.CreateTask(db, principal, services.TaskInput{
		EventID:     request.EventID,
		Name:        request.Name,
		Description: request.Description,
		DueDate:     request.DueDate,
		Status:      request.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func GetTaskById(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := taskService.GetTaskById(db, principal, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func UpdateTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request taskPatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := taskService.UpdateTask(db, principal, id, services.TaskPatch{
		Name:        request.Name,
		Description: request.Description,
		DueDate:     request.DueDate,
		Status:      request.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func DeleteTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := taskService.DeleteTask(db, principal, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func GetTaskUpdatesForTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	updates, err := taskService.GetTaskUpdates(db, principal, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updates)
}
