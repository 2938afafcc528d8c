package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Member struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	CrewRole  string         `json:"crewRole" gorm:"not null"`              // e.g. "Captain", "Pilot", "Engineer"
	Role      string         `json:"role" gorm:"not null;default:'member'"` // member, facilitator, admin
	IsActive  bool           `json:"isActive" gorm:"default:true"`
	JoinedAt  time.Time      `json:"joinedAt"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Member DTOs
type CreateMemberRequest struct {
	Name     string `json:"name" validate:"required"`
	CrewRole string `json:"crewRole" validate:"required"`
	Author   string `json:"author"`
}
