package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Objective statuses. Completed and archived objectives stay in the store
// and are excluded from active views by filter, never by deletion.
const (
	StatusDraft     = "draft"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusArchived  = "archived"
)

type Objective struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Description *string        `json:"description"`
	Quarter     string         `json:"quarter" gorm:"index;not null"`            // e.g. "2025-Q1"
	Status      string         `json:"status" gorm:"not null;default:'active'"`  // draft, active, completed, archived
	Health      string         `json:"health" gorm:"not null;default:'unknown'"` // on-track, at-risk, blocked, unknown
	TargetDate  time.Time      `json:"targetDate" gorm:"not null"`
	CreatedBy   string         `json:"createdBy"`
	CompletedAt *time.Time     `json:"completedAt"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	KeyResults  []KeyResult    `json:"keyResults,omitempty" gorm:"foreignKey:ObjectiveID"`
	Comments    []Comment      `json:"comments,omitempty" gorm:"foreignKey:ObjectiveID"`
}

func (o *Objective) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// Objective DTOs
type CreateObjectiveRequest struct {
	Title       string           `json:"title" validate:"required"`
	Description *string          `json:"description"`
	TargetDate  time.Time        `json:"targetDate"`
	Author      string           `json:"author"`
	KeyResults  []KeyResultInput `json:"keyResults"`
}

type UpdateObjectiveRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	TargetDate  *time.Time `json:"targetDate"`
	Author      string     `json:"author"`
}
