package model

import (
	"time"

	"taskpro.com/taskpro/internal/constants"
)

// TaskUpdate is the single mutable status record of an assignment. It is
// created as Pending together with its assignment and overwritten on every
// status change; an assignment without one is corrupt.
type TaskUpdate struct {
	ID               string               `gorm:"primaryKey;size:36" json:"id"`
	TaskAssignmentID string               `gorm:"size:36;not null;uniqueIndex" json:"task_assignment_id"`
	Status           constants.TaskStatus `gorm:"not null" json:"status"`
	Comment          *string              `json:"comment,omitempty"`
	UpdatedBy        *string              `gorm:"size:36" json:"updated_by,omitempty"`
	UpdatedAt        time.Time            `gorm:"autoUpdateTime:false" json:"updated_at"`
}
