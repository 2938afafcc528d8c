package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reflection types, used during the planning phase of a quarter.
var ReflectionTypes = map[string]bool{
	"moment":   true,
	"learning": true,
	"advice":   true,
	"trend":    true,
	"event":    true,
}

type Reflection struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Type      string         `json:"type" gorm:"not null"` // moment, learning, advice, trend, event
	Content   string         `json:"content" gorm:"type:text;not null"`
	Author    string         `json:"author" gorm:"not null"`
	Votes     int            `json:"votes" gorm:"default:0"`
	Quarter   string         `json:"quarter" gorm:"index;not null"`
	IsPinned  bool           `json:"isPinned" gorm:"default:false"` // carry forward into OKR formation
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (r *Reflection) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Reflection DTOs
type CreateReflectionRequest struct {
	Type    string `json:"type" validate:"required"`
	Content string `json:"content" validate:"required"`
	Quarter string `json:"quarter"`
	Author  string `json:"author"`
}
