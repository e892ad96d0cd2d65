package models

import (
	"encoding/json"
	"time"
)

// DateOnly is the wire format for calendar dates (event date, task due date).
const DateOnly = "2006-01-02"

type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	Tasks       []Task    `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (e *Event) FromJSON(data []byte) error {
	return json.Unmarshal(data, e)
}

func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
