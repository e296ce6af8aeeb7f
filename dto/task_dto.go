package dto

import "time"

// CreateTaskRequest carries the body of POST /api/tasks. Field names follow
// the wire contract: "project" and "assignedTo" hold entity ids.
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Project     string     `json:"project" binding:"required"`
	AssignedTo  string     `json:"assignedTo"`
	DueDate     *time.Time `json:"dueDate"`
}

// UpdateTaskRequest carries the body of PUT /api/tasks/:id.
// Nil fields are left untouched (partial update).
type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	AssignedTo  *string    `json:"assignedTo"`
	DueDate     *time.Time `json:"dueDate"`
}
