package models

import (
	"encoding/json"
	"time"
)

// TaskStatusDefault is assigned when a task is created without a status.
// Status is otherwise a free-form string ("To Do", "Completed", ...).
const TaskStatusDefault = "To Do"

type Task struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	EventID     uint         `gorm:"not null;index" json:"event_id"`
	UserID      uint         `gorm:"not null;index" json:"user_id"`
	Name        string       `gorm:"not null" json:"name"`
	Description string       `json:"description"`
	Status      string       `gorm:"not null;default:'To Do'" json:"status"`
	DueDate     time.Time    `gorm:"type:date;not null" json:"due_date"`
	Updates     []TaskUpdate `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"updates,omitempty"`
	CreatedAt   time.Time    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:now()" json:"updated_at"`
}

func (t *Task) FromJSON(data []byte) error {
	return json.Unmarshal(data, t)
}

func (t *Task) ToJSON() ([]byte, error) {
	return json.Marshal(t)
}
