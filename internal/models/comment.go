package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment annotates exactly one parent: an activity (reflection note), an
// objective, or a key result.
type Comment struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	ActivityID  *uuid.UUID     `json:"activityId" gorm:"type:uuid;index"`
	ObjectiveID *uuid.UUID     `json:"objectiveId" gorm:"type:uuid;index"`
	KeyResultID *uuid.UUID     `json:"keyResultId" gorm:"type:uuid;index"`
	Content     string         `json:"content" gorm:"type:text;not null"`
	Author      string         `json:"author" gorm:"not null"`
	IsResolved  bool           `json:"isResolved" gorm:"default:false"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type CreateNoteRequest struct {
	Content string `json:"content" validate:"required"`
	Author  string `json:"author"`
}
