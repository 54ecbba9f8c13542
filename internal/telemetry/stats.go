package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period          string            `json:"period"`
	EventCounts     map[EventType]int `json:"event_counts"`
	TasksCreated    int               `json:"tasks_created"`
	TaskCompletions int               `json:"task_completions"`
	TaskReopens     int               `json:"task_reopens"`
	TasksDeleted    int               `json:"tasks_deleted"`
	TasksImported   int               `json:"tasks_imported"`
	ItemToggles     int               `json:"item_toggles"`
	Searches        int               `json:"searches"`
	TasksByType     map[string]int    `json:"tasks_by_type"`
	UsersCreated    int               `json:"users_created"`
}

// CalculateStats aggregates activity stats from events recorded since
// the given time.
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:      since.Format("2006-01-02"),
		EventCounts: make(map[EventType]int),
		TasksByType: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventTaskCreated:
			stats.TasksCreated++
			if taskType, ok := metadata["task_type"].(string); ok {
				stats.TasksByType[taskType]++
			}
		case EventTaskCompleted:
			stats.TaskCompletions++
		case EventTaskReopened:
			stats.TaskReopens++
		case EventTaskDeleted:
			stats.TasksDeleted++
		case EventTaskImported:
			stats.TasksImported++
			if taskType, ok := metadata["task_type"].(string); ok {
				stats.TasksByType[taskType]++
			}
		case EventChecklistItemToggled:
			stats.ItemToggles++
		case EventSearchPerformed:
			stats.Searches++
		case EventUserCreated:
			stats.UsersCreated++
		}
	}

	return stats, nil
}
