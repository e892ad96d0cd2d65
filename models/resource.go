package models

import "errors"

// ResourceKind identifies which level of the Event -> Task -> TaskUpdate
// hierarchy an access check targets.
type ResourceKind string

const (
	EventResource      ResourceKind = "event"
	TaskResource       ResourceKind = "task"
	TaskUpdateResource ResourceKind = "task_update"
)

// ResourceKindFromString converts a string to a ResourceKind.
func ResourceKindFromString(kind string) (ResourceKind, error) {
	switch kind {
	case "event":
		return EventResource, nil
	case "task":
		return TaskResource, nil
	case "task_update":
		return TaskUpdateResource, nil
	default:
		return "", errors.New("invalid resource kind")
	}
}
