package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity types.
const (
	ActivityCreated   = "created"
	ActivityUpdated   = "updated"
	ActivityCompleted = "completed"
	ActivityCommented = "commented"
)

// Activity is an append-only audit record. Every state-changing write-set
// carries exactly one; activities themselves are never updated or deleted.
type Activity struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Type        string         `json:"type" gorm:"not null"` // created, updated, completed, commented
	Description string         `json:"description" gorm:"not null"`
	Author      string         `json:"author" gorm:"not null"`
	Timestamp   time.Time      `json:"timestamp" gorm:"index;not null"`
	Metadata    *string        `json:"metadata"` // JSON string for activity-specific data
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	Notes []Comment `json:"notes,omitempty" gorm:"foreignKey:ActivityID"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
