package task

import (
	"context"
	"log"
	"time"

	domain "github.com/example/task-tracker/domain/task"
	"github.com/example/task-tracker/events"
	"github.com/go-monolith/mono"
)

// createTask handles the create-task service request. The domain
// service assigns timestamps and the store assigns the id.
func (m *TaskModule) createTask(_ context.Context, req CreateTaskRequest, _ *mono.Msg) (CreateTaskResponse, error) {
	created := m.service.CreateTask(domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})

	if m.eventBus != nil {
		event := events.TaskCreatedEvent{
			TaskID:      created.ID,
			Title:       created.Title,
			Description: created.Description,
			CreatedAt:   created.CreatedAt,
		}
		if err := events.TaskCreatedV1.Publish(m.eventBus, event, nil); err != nil {
			// Event publishing is best-effort; log but don't fail the operation
			log.Printf("[task] Warning: failed to publish TaskCreated event for task %d: %v", created.ID, err)
		}
	}

	return CreateTaskResponse{Task: toTaskDetails(created)}, nil
}

// getTask handles the get-task service request.
func (m *TaskModule) getTask(_ context.Context, req GetTaskRequest, _ *mono.Msg) (GetTaskResponse, error) {
	t, found := m.service.GetTaskByID(req.TaskID)
	if !found {
		return GetTaskResponse{Found: false}, nil
	}

	details := toTaskDetails(t)
	return GetTaskResponse{Task: &details, Found: true}, nil
}

// updateTask handles the update-task service request. The stored
// Title, Description and Completed are overwritten in full; id and
// CreatedAt are preserved by the domain service.
func (m *TaskModule) updateTask(_ context.Context, req UpdateTaskRequest, _ *mono.Msg) (UpdateTaskResponse, error) {
	updated, found := m.service.UpdateTask(req.TaskID, domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if !found {
		return UpdateTaskResponse{Found: false}, nil
	}

	if m.eventBus != nil {
		event := events.TaskUpdatedEvent{
			TaskID:    updated.ID,
			Title:     updated.Title,
			UpdatedAt: updated.UpdatedAt,
		}
		if err := events.TaskUpdatedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskUpdated event for task %d: %v", updated.ID, err)
		}
	}

	details := toTaskDetails(updated)
	return UpdateTaskResponse{Task: &details, Found: true}, nil
}

// deleteTask handles the delete-task service request. Deleting an
// absent id reports Deleted: false, not an error.
func (m *TaskModule) deleteTask(_ context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	deleted := m.service.DeleteTask(req.TaskID)
	if !deleted {
		return DeleteTaskResponse{Deleted: false}, nil
	}

	if m.eventBus != nil {
		event := events.TaskDeletedEvent{TaskID: req.TaskID, DeletedAt: time.Now()}
		if err := events.TaskDeletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskDeleted event for task %d: %v", req.TaskID, err)
		}
	}

	return DeleteTaskResponse{Deleted: true}, nil
}

// listTasks handles the list-tasks service request.
func (m *TaskModule) listTasks(_ context.Context, _ ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	tasks := m.service.GetAllTasks()

	response := ListTasksResponse{
		Tasks: make([]TaskDetails, 0, len(tasks)),
		Total: len(tasks),
	}
	for _, t := range tasks {
		response.Tasks = append(response.Tasks, toTaskDetails(t))
	}
	return response, nil
}

// completeTask handles the complete-task service request. Completing
// an already-completed task is valid and bumps UpdatedAt again.
func (m *TaskModule) completeTask(_ context.Context, req CompleteTaskRequest, _ *mono.Msg) (CompleteTaskResponse, error) {
	completed, found := m.service.CompleteTask(req.TaskID)
	if !found {
		return CompleteTaskResponse{Found: false}, nil
	}

	if m.eventBus != nil {
		event := events.TaskCompletedEvent{
			TaskID:      completed.ID,
			Title:       completed.Title,
			CompletedAt: completed.UpdatedAt,
		}
		if err := events.TaskCompletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskCompleted event for task %d: %v", completed.ID, err)
		}
	}

	details := toTaskDetails(completed)
	return CompleteTaskResponse{Task: &details, Found: true}, nil
}

// countTasks handles the count-tasks service request.
func (m *TaskModule) countTasks(_ context.Context, _ CountTasksRequest, _ *mono.Msg) (CountTasksResponse, error) {
	return CountTasksResponse{Total: m.service.TaskCount()}, nil
}

// toTaskDetails converts a domain Task to its response representation.
func toTaskDetails(t domain.Task) TaskDetails {
	return TaskDetails{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
