package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KeyResult struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	ObjectiveID uuid.UUID      `json:"objectiveId" gorm:"type:uuid;index;not null"`
	Description string         `json:"description" gorm:"not null"`
	Target      float64        `json:"target" gorm:"not null"` // zero means the target is undefined, not already met
	Current     float64        `json:"current" gorm:"default:0"`
	Unit        string         `json:"unit"` // e.g. "users", "revenue", "%", "days"
	Status      string         `json:"status" gorm:"default:'on-track'"`
	Owner       string         `json:"owner" gorm:"default:'Unassigned'"` // member name label, not a foreign key
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (kr *KeyResult) BeforeCreate(tx *gorm.DB) error {
	if kr.ID == uuid.Nil {
		kr.ID = uuid.New()
	}
	return nil
}

// KeyResult DTOs
type KeyResultInput struct {
	Description string  `json:"description" validate:"required"`
	Target      float64 `json:"target"`
	Unit        string  `json:"unit"`
	Owner       string  `json:"owner"`
}

type UpdateKeyResultRequest struct {
	Description *string  `json:"description"`
	Target      *float64 `json:"target"`
	Unit        *string  `json:"unit"`
	Owner       *string  `json:"owner"`
	Author      string   `json:"author"`
}

type UpdateProgressRequest struct {
	Current *float64 `json:"current" validate:"required"`
	Author  string   `json:"author"`
}
