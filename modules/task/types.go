package task

import (
	"context"
	"time"
)

// TaskDetails is the full task representation carried in responses.
type TaskDetails struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateTaskRequest is the request for creating a task. Any id supplied
// by the caller is ignored; the store allocates identifiers.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// CreateTaskResponse is the response for creating a task.
type CreateTaskResponse struct {
	Task TaskDetails `json:"task"`
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	TaskID int64 `json:"task_id"`
}

// GetTaskResponse is the response for getting a task. Found is false
// when no task exists for the requested id.
type GetTaskResponse struct {
	Task  *TaskDetails `json:"task,omitempty"`
	Found bool         `json:"found"`
}

// UpdateTaskRequest is the request for updating a task. Title,
// Description and Completed overwrite the stored values in full.
type UpdateTaskRequest struct {
	TaskID      int64  `json:"task_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// UpdateTaskResponse is the response for updating a task.
type UpdateTaskResponse struct {
	Task  *TaskDetails `json:"task,omitempty"`
	Found bool         `json:"found"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID int64 `json:"task_id"`
}

// DeleteTaskResponse is the response for deleting a task.
type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
}

// ListTasksRequest is the request for listing all tasks.
type ListTasksRequest struct{}

// ListTasksResponse is the response for listing tasks.
type ListTasksResponse struct {
	Tasks []TaskDetails `json:"tasks"`
	Total int           `json:"total"`
}

// CompleteTaskRequest is the request for marking a task complete.
type CompleteTaskRequest struct {
	TaskID int64 `json:"task_id"`
}

// CompleteTaskResponse is the response for marking a task complete.
type CompleteTaskResponse struct {
	Task  *TaskDetails `json:"task,omitempty"`
	Found bool         `json:"found"`
}

// CountTasksRequest is the request for the task count.
type CountTasksRequest struct{}

// CountTasksResponse is the response for the task count.
type CountTasksResponse struct {
	Total int `json:"total"`
}

// TaskPort defines the interface for task operations (hexagonal port).
// This is the contract that driving adapters (like the HTTP API) use to
// interact with the core domain. Absence of a record is reported
// through the response payloads, not as an error.
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*CreateTaskResponse, error)
	GetTask(ctx context.Context, taskID int64) (*GetTaskResponse, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*UpdateTaskResponse, error)
	DeleteTask(ctx context.Context, taskID int64) (*DeleteTaskResponse, error)
	ListTasks(ctx context.Context) (*ListTasksResponse, error)
	CompleteTask(ctx context.Context, taskID int64) (*CompleteTaskResponse, error)
	CountTasks(ctx context.Context) (*CountTasksResponse, error)
}
