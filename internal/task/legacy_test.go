package task

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreyyiizz/ComponentsAct-Ardiente/internal/model"
)

func TestFromLegacy_SnakeCaseRoundTrip(t *testing.T) {
	raw := []byte(`{"name":"Buy milk","due_date":"2024-05-01","is_completed":false,"estimated_time":"30"}`)

	var in LegacyTask
	require.NoError(t, json.Unmarshal(raw, &in))

	now := time.Now()
	task := FromLegacy(in, now)

	assert.Equal(t, "Buy milk", task.Title)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2024-05-01", *task.DueDate)
	assert.False(t, task.Completed)
	assert.Equal(t, model.TypeTimed, task.Type)
	assert.Equal(t, "30", task.EstimatedTime)
	assert.NotEmpty(t, task.ID, "missing id is generated")
	assert.True(t, task.CreatedAt.Equal(now), "missing createdAt is stamped")

	out := ToLegacy(task)
	require.NotNil(t, out.DueDateSnake)
	assert.Equal(t, "2024-05-01", *out.DueDateSnake)
	require.NotNil(t, out.IsCompleted)
	assert.False(t, *out.IsCompleted)
	assert.Equal(t, "30", out.EstimatedTimeSnake)
}

func TestFromLegacy_CamelCaseWinsPrecedence(t *testing.T) {
	camel := "2025-01-01"
	snake := "2020-01-01"
	yes := true
	no := false

	task := FromLegacy(LegacyTask{
		Title:        "camel beats snake",
		DueDate:      &camel,
		DueDateSnake: &snake,
		Completed:    &yes,
		IsCompleted:  &no,
	}, time.Now())

	require.NotNil(t, task.DueDate)
	assert.Equal(t, camel, *task.DueDate)
	assert.True(t, task.Completed)
}

func TestFromLegacy_TypeInference(t *testing.T) {
	now := time.Now()

	// Explicit known type is trusted even with checklist fields.
	explicit := FromLegacy(LegacyTask{
		Type:  "basic",
		Items: []LegacyChecklistItem{{Text: "x"}},
	}, now)
	assert.Equal(t, model.TypeBasic, explicit.Type)

	// Unknown explicit type falls through to inference.
	checklist := FromLegacy(LegacyTask{
		Type:      "someday",
		Checklist: []LegacyChecklistItem{{Text: "x"}},
	}, now)
	assert.Equal(t, model.TypeChecklist, checklist.Type)

	timed := FromLegacy(LegacyTask{Duration: "45"}, now)
	assert.Equal(t, model.TypeTimed, timed.Type)

	basic := FromLegacy(LegacyTask{Title: "plain"}, now)
	assert.Equal(t, model.TypeBasic, basic.Type)
}

func TestFromLegacy_Defaults(t *testing.T) {
	task := FromLegacy(LegacyTask{}, time.Now())

	assert.Equal(t, PlaceholderTitle, task.Title)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, 0, task.Priority)
}

func TestFromLegacy_ChecklistItemAliases(t *testing.T) {
	done := true
	task := FromLegacy(LegacyTask{
		Items: []LegacyChecklistItem{
			{Text: "by text"},
			{Name: "by name", IsCompleted: &done},
			{Title: "by title"},
			{},
		},
	}, time.Now())

	require.Len(t, task.ChecklistItems, 4)
	assert.Equal(t, "by text", task.ChecklistItems[0].Text)
	assert.Equal(t, "by name", task.ChecklistItems[1].Text)
	assert.True(t, task.ChecklistItems[1].Completed)
	assert.Equal(t, "by title", task.ChecklistItems[2].Text)
	assert.Equal(t, "Untitled Item", task.ChecklistItems[3].Text)

	for _, item := range task.ChecklistItems {
		assert.NotEmpty(t, item.ID)
	}
}

func TestToLegacy_OmitsAbsentFields(t *testing.T) {
	task := model.Task{
		ID:    model.NewTaskID(),
		Title: "bare",
		Type:  model.TypeBasic,
	}

	b, err := json.Marshal(ToLegacy(task))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))

	assert.NotContains(t, m, "due_date")
	assert.NotContains(t, m, "dueDate")
	assert.NotContains(t, m, "checklist")
	assert.NotContains(t, m, "created_at")
	// Completion and priority have defined values on every task, so
	// they are always present, even at their defaults.
	assert.Contains(t, m, "is_completed")
	assert.Equal(t, float64(0), m["priority"])
}

func TestToLegacy_ChecklistUsesSnakeCase(t *testing.T) {
	task := model.Task{
		ID:    model.NewTaskID(),
		Title: "groceries",
		Type:  model.TypeChecklist,
		ChecklistItems: []model.ChecklistItem{
			{ID: "i1", Text: "milk", Completed: true},
		},
	}

	b, err := json.Marshal(ToLegacy(task))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))

	require.Contains(t, m, "checklist")
	items := m["checklist"].([]any)
	item := items[0].(map[string]any)
	assert.Equal(t, true, item["is_completed"])
	assert.NotContains(t, item, "completed")
}

func TestLegacy_KnownFieldsRoundTripExactly(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	due := "2024-05-02"
	original := model.Task{
		ID:            "task-1",
		Title:         "round trip",
		Description:   "all known fields",
		DueDate:       &due,
		Completed:     true,
		Type:          model.TypeTimed,
		Priority:      3,
		EstimatedTime: "90",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	back := FromLegacy(ToLegacy(original), time.Now())

	assert.Equal(t, original.ID, back.ID)
	assert.Equal(t, original.Title, back.Title)
	assert.Equal(t, original.Description, back.Description)
	assert.Equal(t, *original.DueDate, *back.DueDate)
	assert.Equal(t, original.Completed, back.Completed)
	assert.Equal(t, original.Type, back.Type)
	assert.Equal(t, original.Priority, back.Priority)
	assert.Equal(t, original.EstimatedTime, back.EstimatedTime)
	assert.True(t, back.CreatedAt.Equal(original.CreatedAt))
}
