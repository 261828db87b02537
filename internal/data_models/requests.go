package dto

import "time"

// Task priority and status travel as their labels ("High", "Pending");
// the validators map them onto the integer enums.

type CreateTaskRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Deadline    time.Time `json:"deadline"`
}

type UpdateTaskRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Deadline    time.Time `json:"deadline"`
	Version     uint      `json:"version"`
}

type AssignRequest struct {
	UserID string `json:"user_id"`
}

type StatusUpdateRequest struct {
	Status  string  `json:"status"`
	Comment *string `json:"comment,omitempty"`
}

type CreateUserRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// ReportRequest dates use yyyy-MM-dd; bounds are inclusive at date
// granularity.
type ReportRequest struct {
	UserID   *string `json:"user_id,omitempty"`
	FromDate *string `json:"from_date,omitempty"`
	ToDate   *string `json:"to_date,omitempty"`
	Status   *string `json:"status,omitempty"`
}
