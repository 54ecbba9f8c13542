package telemetry

import "time"

type EventType string

const (
	EventTaskCreated          EventType = "task_created"
	EventTaskUpdated          EventType = "task_updated"
	EventTaskCompleted        EventType = "task_completed"
	EventTaskReopened         EventType = "task_reopened"
	EventTaskDeleted          EventType = "task_deleted"
	EventChecklistItemToggled EventType = "checklist_item_toggled"
	EventTaskImported         EventType = "task_imported"
	EventSearchPerformed      EventType = "search_performed"
	EventUserCreated          EventType = "user_created"
	EventUserUpdated          EventType = "user_updated"
	EventUserDeleted          EventType = "user_deleted"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
