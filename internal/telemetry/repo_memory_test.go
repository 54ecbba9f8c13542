package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_RecordAndFilter(t *testing.T) {
	repo := NewMemoryRepository(0)

	require.NoError(t, repo.RecordEvent(EventTaskCreated, EventMetadata{"task_type": "basic"}))
	require.NoError(t, repo.RecordEvent(EventTaskCompleted, EventMetadata{"task_id": "t1"}))
	require.NoError(t, repo.RecordEvent(EventSearchPerformed, EventMetadata{"query": "milk"}))

	all, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 3, all[2].ID)

	completions, err := repo.GetEvents(time.Time{}, []EventType{EventTaskCompleted})
	require.NoError(t, err)
	require.Len(t, completions, 1)
	assert.Equal(t, EventTaskCompleted, completions[0].Type)

	future, err := repo.GetEvents(time.Now().Add(time.Hour), nil)
	require.NoError(t, err)
	assert.Empty(t, future)
}

func TestMemoryRepository_CapDropsOldest(t *testing.T) {
	repo := NewMemoryRepository(2)

	require.NoError(t, repo.RecordEvent(EventTaskCreated, nil))
	require.NoError(t, repo.RecordEvent(EventTaskUpdated, nil))
	require.NoError(t, repo.RecordEvent(EventTaskDeleted, nil))

	all, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, EventTaskUpdated, all[0].Type)
	assert.Equal(t, EventTaskDeleted, all[1].Type)
}

func TestMemoryRepository_Clear(t *testing.T) {
	repo := NewMemoryRepository(0)
	require.NoError(t, repo.RecordEvent(EventTaskCreated, nil))
	require.NoError(t, repo.Clear())

	all, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, repo.RecordEvent(EventTaskCreated, nil))
	next, _ := repo.GetEvents(time.Time{}, nil)
	assert.Equal(t, 1, next[0].ID, "ids restart after clear")
}

func TestCalculateStats(t *testing.T) {
	repo := NewMemoryRepository(0)
	require.NoError(t, repo.RecordEvent(EventTaskCreated, EventMetadata{"task_type": "basic"}))
	require.NoError(t, repo.RecordEvent(EventTaskCreated, EventMetadata{"task_type": "checklist"}))
	require.NoError(t, repo.RecordEvent(EventTaskCompleted, EventMetadata{"task_id": "t1"}))
	require.NoError(t, repo.RecordEvent(EventTaskReopened, EventMetadata{"task_id": "t1"}))
	require.NoError(t, repo.RecordEvent(EventChecklistItemToggled, EventMetadata{"task_id": "t2"}))
	require.NoError(t, repo.RecordEvent(EventSearchPerformed, EventMetadata{"query": "milk"}))
	require.NoError(t, repo.RecordEvent(EventTaskImported, EventMetadata{"task_type": "timed"}))
	require.NoError(t, repo.RecordEvent(EventUserCreated, EventMetadata{"user_id": "u1"}))

	events, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)

	stats, err := CalculateStats(events, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TasksCreated)
	assert.Equal(t, 1, stats.TaskCompletions)
	assert.Equal(t, 1, stats.TaskReopens)
	assert.Equal(t, 1, stats.ItemToggles)
	assert.Equal(t, 1, stats.Searches)
	assert.Equal(t, 1, stats.TasksImported)
	assert.Equal(t, 1, stats.UsersCreated)
	assert.Equal(t, 1, stats.TasksByType["basic"])
	assert.Equal(t, 1, stats.TasksByType["checklist"])
	assert.Equal(t, 1, stats.TasksByType["timed"])
	assert.Equal(t, 2, stats.EventCounts[EventTaskCreated])
}
