package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultDescription is applied when a project or task is created without one.
const DefaultDescription = "add description"

// Project is a container of tasks owned by its creator. Members get read
// access; only the owner may update or delete the project.
type Project struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string    `json:"title" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	Members     []User    `json:"members" gorm:"many2many:project_members"`
	CreatedByID string    `json:"createdById" gorm:"type:uuid;not null;index"`
	CreatedBy   User      `json:"createdBy" gorm:"foreignKey:CreatedByID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// HasMember reports whether the user is in the member list.
func (p *Project) HasMember(userID string) bool {
	for _, m := range p.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}
