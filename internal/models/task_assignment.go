package model

import (
	"time"
)

// TaskAssignment pairs one task with one assignee. The composite unique
// index is what keeps a concurrent double-assign from creating duplicates.
type TaskAssignment struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	TaskID     string    `gorm:"size:36;not null;uniqueIndex:idx_task_assignee" json:"task_id"`
	AssignedTo string    `gorm:"size:36;not null;uniqueIndex:idx_task_assignee" json:"assigned_to"`
	AssignedAt time.Time `json:"assigned_at"`

	Task     *Task       `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	Assignee *User       `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
	Update   *TaskUpdate `gorm:"foreignKey:TaskAssignmentID" json:"update,omitempty"`
}
