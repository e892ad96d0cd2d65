package routes

import (
	"net/http"

	"eventdeck/eventdeck/database"
	"eventdeck/eventdeck/services"

	"github.com/gin-gonic/gin"
)

type eventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type eventPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
}

func RegisterEventRoutes(group *gin.RouterGroup, db *database.Database, eventService services.EventServiceInterface) {
	events := group.Group("/events")
	{
		events.GET("", func(c *gin.Context) { GetEvents(c, db, eventService) })
		events.POST("", func(c *gin.Context) { CreateEvent(c, db, eventService) })
		events.GET("/:id", func(c *gin.Context) { GetEventById(c, db, eventService) })
		events.PUT("/:id", func(c *gin.Context) { UpdateEvent(c, db, eventService) })
		events.DELETE("/:id", func(c *gin.Context) { DeleteEvent(c, db, eventService) })
		events.GET("/:id/tasks", func(c *gin.Context) { GetEventTasks(c, db, eventService) })
	}
}

func GetEvents(c *gin.Context, db *database.Database, eventService services.EventServiceInterface) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	events, err := eventService.GetEvents(db, principal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func CreateEvent(c *gin.Context, db *database.Database, eventService services.EventServiceInterface) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var request eventRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := eventService.CreateEvent(db, principal, services.EventInput{
		Name:        request.Name,
		Description: request.Description,
		Date:        request.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

func GetEventById(c *gin.Context, db *database.Database, eventService services.EventServiceInterface) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	event, err := eventService.GetEventById(db, principal, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func UpdateEvent(c *gin.Context, db *database.Database, eventService services.EventServiceInterface) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request eventPatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := eventService.UpdateEvent(db, principal, id, services.EventPatch{
		Name:        request.Name,
		Description: request.Description,
		Date:        request.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func DeleteEvent(c *gin.Context, db *database.Database, eventService services.EventServiceInterface) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := eventService.DeleteEvent(db, principal, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func GetEventTasks(c *gin.Context, db *database.Database, eventService services.EventServiceInterface) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tasks, err := eventService.GetEventTasks(db, principal, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}
