package notification

import (
	"context"
	"testing"
	"time"

	"github.com/example/task-tracker/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModule_RecordsTaskActivity(t *testing.T) {
	m := NewModule()
	ctx := context.Background()

	err := m.handleTaskCreated(ctx, events.TaskCreatedEvent{
		TaskID:    1,
		Title:     "Write spec",
		CreatedAt: time.Now(),
	}, nil)
	require.NoError(t, err)

	err = m.handleTaskCompleted(ctx, events.TaskCompletedEvent{
		TaskID:      1,
		Title:       "Write spec",
		CompletedAt: time.Now(),
	}, nil)
	require.NoError(t, err)

	err = m.handleTaskDeleted(ctx, events.TaskDeletedEvent{TaskID: 1}, nil)
	require.NoError(t, err)

	logs := m.GetNotifications()
	require.Len(t, logs, 3)

	assert.Equal(t, "task_created", logs[0].Type)
	assert.Equal(t, "task_completed", logs[1].Type)
	assert.Equal(t, "task_deleted", logs[2].Type)
	for _, entry := range logs {
		assert.Equal(t, int64(1), entry.TaskID)
		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, "event", entry.Channel)
	}
}

func TestModule_GetNotificationsReturnsCopy(t *testing.T) {
	m := NewModule()

	err := m.handleTaskUpdated(context.Background(), events.TaskUpdatedEvent{
		TaskID: 2,
		Title:  "renamed",
	}, nil)
	require.NoError(t, err)

	logs := m.GetNotifications()
	require.Len(t, logs, 1)
	logs[0].Message = "tampered"

	fresh := m.GetNotifications()
	assert.NotEqual(t, "tampered", fresh[0].Message)
}
