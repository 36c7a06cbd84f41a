package dto

import "time"

type CreateTaskRequest struct {
	Title string `json:"title" binding:"required,min=1,max=120"`
	Body  string `json:"body" binding:"max=2000"`
}

// UpdateTaskRequest carries a partial update. nil = leave the field as is;
// a present empty string still overwrites.
type UpdateTaskRequest struct {
	Title *string `json:"title" binding:"omitempty,max=120"`
	Body  *string `json:"body" binding:"omitempty,max=2000"`
}

type TaskResponse struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	OwnerID   int64      `json:"owner_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// DeleteTaskResponse confirms a delete and echoes the removed task.
type DeleteTaskResponse struct {
	Success bool         `json:"success"`
	Item    TaskResponse `json:"item"`
}
