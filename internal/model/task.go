package model

import (
	"time"

	"github.com/google/uuid"
)

type TaskID string

// TaskType tags the three task variants.
type TaskType string

const (
	TypeBasic     TaskType = "basic"
	TypeTimed     TaskType = "timed"
	TypeChecklist TaskType = "checklist"
)

// KnownType reports whether t is one of the three task variants.
func KnownType(t TaskType) bool {
	switch t {
	case TypeBasic, TypeTimed, TypeChecklist:
		return true
	}
	return false
}

type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Task is the tagged union over the three variants. EstimatedTime is
// only meaningful for timed tasks, ChecklistItems only for checklist
// tasks; both are empty otherwise.
type Task struct {
	ID          TaskID   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	DueDate     *string  `json:"dueDate,omitempty"`
	Completed   bool     `json:"completed"`
	Type        TaskType `json:"type"`
	Priority    int      `json:"priority"`

	// EstimatedTime is a string-encoded non-negative minute count,
	// e.g. "120".
	EstimatedTime string `json:"estimatedTime,omitempty"`

	ChecklistItems []ChecklistItem `json:"checklistItems,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TaskUpsert is the create/update request body for tasks.
type TaskUpsert struct {
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	DueDate        *string             `json:"dueDate,omitempty"`
	Type           TaskType            `json:"type"`
	Priority       *int                `json:"priority,omitempty"`
	EstimatedTime  string              `json:"estimatedTime,omitempty"`
	ChecklistItems []ChecklistItemSpec `json:"checklistItems,omitempty"`
}

// ChecklistItemSpec is the creation shape of a checklist item; the id
// is generated server-side.
type ChecklistItemSpec struct {
	Text string `json:"text"`
}

// NewTaskID returns a fresh unique task id.
func NewTaskID() TaskID {
	return TaskID(uuid.NewString())
}

// NewItemID returns a fresh unique checklist item id.
func NewItemID() string {
	return uuid.NewString()
}

// Clone returns a deep copy of t; mutating the copy never affects the
// original's checklist items.
func (t Task) Clone() Task {
	out := t
	if t.DueDate != nil {
		d := *t.DueDate
		out.DueDate = &d
	}
	if t.ChecklistItems != nil {
		out.ChecklistItems = make([]ChecklistItem, len(t.ChecklistItems))
		copy(out.ChecklistItems, t.ChecklistItems)
	}
	return out
}

// AllItemsCompleted reports whether every checklist item is completed.
// Vacuously true for an empty list; callers guard against that at
// creation time (checklist tasks require at least one item).
func (t Task) AllItemsCompleted() bool {
	for _, it := range t.ChecklistItems {
		if !it.Completed {
			return false
		}
	}
	return true
}
