package routes

import (
	"net/http"

	"eventdeck/eventdeck/database"
	"eventdeck/eventdeck/services"

	"github.com/gin-gonic/gin"
)

type taskUpdateRequest struct {
	TaskID     uint   `json:"task_id"`
	UpdateText string `json:"update_text"`
}

type taskUpdatePatchRequest struct {
	UpdateText *string `json:"update_text"`
}

func RegisterTaskUpdateRoutes(group *gin.RouterGroup, db *database.Database, taskUpdateService services.TaskUpdateServiceInterface) {
	updates := group.Group("/task-updates")
	{
		updates.GET("", func(c *gin.Context) { GetTaskUpdates(c, db, taskUpdateService) })
		updates.POST("", func(c *gin.Context) { CreateTaskUpdate(c, db, taskUpdateService) })
		updates.GET("/:id", func(c *gin.Context) { GetTaskUpdateById(c, db, taskUpdateService) })
		updates.PUT("/:id", func(c *gin.Context) { UpdateTaskUpdate(c, db, taskUpdateService) })
		updates.DELETE("/:id", func(c *gin.Context) { DeleteTaskUpdate(c, db, taskUpdateService) })
	}
}

func GetTaskUpdates(c *gin.Context, db *database.Database, taskUpdateService services.TaskUpdateServiceInterface) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	updates, err := taskUpdateService.GetTaskUpdates(db, principal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updates)
}

func CreateTaskUpdate(c *gin.Context, db *database.Database, taskUpdateService services.TaskUpdateServiceInterface) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var request taskUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update, err := taskUpdateService.CreateTaskUpdate(db, principal, services.TaskUpdateInput{
		TaskID:     request.TaskID,
		UpdateText: request.UpdateText,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, update)
}

func GetTaskUpdateById(c *gin.Context, db *database.Database, taskUpdateService services.TaskUpdateServiceInterface) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	update, err := taskUpdateService.GetTaskUpdateById(db, principal, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, update)
}

func UpdateTaskUpdate(c *gin.Context, db *database.Database, taskUpdateService services.TaskUpdateServiceInterface) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request taskUpdatePatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update, err := taskUpdateService.UpdateTaskUpdate(db, principal, id, services.TaskUpdatePatch{
		UpdateText: request.UpdateText,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, update)
}

func DeleteTaskUpdate(c *gin.Context, db *database.Database, taskUpdateService services.TaskUpdateServiceInterface) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := taskUpdateService.DeleteTaskUpdate(db, principal, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
