package routes

import (
	"errors"
	"net/http"
	"strconv"

	"eventdeck/eventdeck/middleware"
	"eventdeck/eventdeck/models"
	"eventdeck/eventdeck/services"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the HTTP taxonomy: 422 for
// validation failures (with the field list), 404/403 as resolved by the
// access service, 401 for credential failures, 400 for constraint
// violations, 500 for everything else.
func respondError(c *gin.Context, err error) {
	if ve, ok := services.AsValidation(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": ve.Fields})
		return
	}

	switch {
	case errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrTaskUpdateNotFound),
		errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to access this resource"})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// parseIDParam reads an integer path parameter; anything else fails
// validation the same way a bad body field does.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors": []services.FieldError{{Field: name, Message: "must be an integer"}},
		})
		return 0, false
	}
	return uint(value), true
}

// requirePrincipal fetches the authenticated identity set by the auth
// middleware; its absence means the route was wired without it.
func requirePrincipal(c *gin.Context) (models.Principal, bool) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return models.Principal{}, false
	}
	return principal, true
}
