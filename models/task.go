package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskStatus represents a board column.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

// Valid reports whether s is one of the known board columns.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// Task belongs to exactly one project. It may be edited by its creator or its
// current assignee. Deleting a task removes its comments.
type Task struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid"`
	Title        string     `json:"title" gorm:"not null"`
	Description  string     `json:"description"`
	Status       TaskStatus `json:"status" gorm:"type:varchar(20);default:'todo'"`
	ProjectID    string     `json:"project" gorm:"type:uuid;not null;index"`
	AssignedToID *string    `json:"assignedToId,omitempty" gorm:"type:uuid"`
	AssignedTo   *User      `json:"assignedTo,omitempty" gorm:"foreignKey:AssignedToID"`
	CreatedByID  string     `json:"createdById" gorm:"type:uuid;not null"`
	CreatedBy    User       `json:"createdBy" gorm:"foreignKey:CreatedByID"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// EditableBy reports whether the user may update this task.
func (t *Task) EditableBy(userID string) bool {
	if t.CreatedByID == userID {
		return true
	}
	return t.AssignedToID != nil && *t.AssignedToID == userID
}
