package model

import (
	"time"
)

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	FullName  string    `gorm:"not null" json:"full_name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Role      string    `gorm:"type:varchar(20);not null" json:"role"`
	CreatedBy *string   `gorm:"size:36;index" json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
