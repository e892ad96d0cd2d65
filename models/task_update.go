package models

import (
	"encoding/json"
	"time"
)

type TaskUpdate struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TaskID     uint      `gorm:"not null;index" json:"task_id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	UpdateText string    `gorm:"not null" json:"update_text"`
	CreatedAt  time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (u *TaskUpdate) FromJSON(data []byte) error {
	return json.Unmarshal(data, u)
}

func (u *TaskUpdate) ToJSON() ([]byte, error) {
	return json.Marshal(u)
}
