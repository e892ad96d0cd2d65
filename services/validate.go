package services

import (
	"strings"
	"time"

	"eventdeck/eventdeck/models"
)

const (
	nameMinLen        = 2
	nameMaxLen        = 100
	descriptionMaxLen = 500
	updateTextMaxLen  = 500
)

func validateName(ve *ValidationError, field, value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		ve.Add(field, "is required")
		return
	}
	if len(trimmed) < nameMinLen || len(trimmed) > nameMaxLen {
		ve.Add(field, "must be between 2 and 100 characters")
	}
}

func validateDescription(ve *ValidationError, field, value string) {
	if len(strings.TrimSpace(value)) > descriptionMaxLen {
		ve.Add(field, "cannot exceed 500 characters")
	}
}

// parseDate parses a YYYY-MM-DD value and rejects dates strictly before
// today. The zero time is returned when any rule fails.
func parseDate(ve *ValidationError, field, value string) time.Time {
	if strings.TrimSpace(value) == "" {
		ve.Add(field, "is required")
		return time.Time{}
	}
	parsed, err := time.ParseInLocation(models.DateOnly, value, time.Local)
	if err != nil {
		ve.Add(field, "invalid date format, use YYYY-MM-DD")
		return time.Time{}
	}
	if parsed.Before(startOfToday()) {
		ve.Add(field, "cannot be in the past")
	}
	return parsed
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
