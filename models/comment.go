package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is attached to a task. Deleting a comment cascades to nothing.
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Text      string    `json:"text" gorm:"not null"`
	TaskID    string    `json:"task" gorm:"type:uuid;not null;index"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
