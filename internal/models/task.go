package model

import (
	"time"

	"taskpro.com/taskpro/internal/constants"
)

type Task struct {
	ID          string                 `gorm:"primaryKey;size:36" json:"id"`
	Title       string                 `gorm:"not null" json:"title"`
	Description string                 `gorm:"not null" json:"description"`
	Priority    constants.TaskPriority `gorm:"not null" json:"priority"`
	Deadline    time.Time              `gorm:"not null" json:"deadline"`
	CreatedBy   string                 `gorm:"size:36;not null;index" json:"created_by"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedBy   *string                `gorm:"size:36" json:"updated_by,omitempty"`
	UpdatedAt   *time.Time             `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`
	Version     uint                   `gorm:"not null;default:1" json:"version"`

	Assignments []TaskAssignment `gorm:"foreignKey:TaskID" json:"assignments,omitempty"`
}
