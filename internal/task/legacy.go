package task

import (
	"time"

	"github.com/dreyyiizz/ComponentsAct-Ardiente/internal/model"
)

// PlaceholderTitle is substituted when an imported payload carries no
// recognizable title.
const PlaceholderTitle = "Untitled Task"

// LegacyTask is the external/legacy wire shape. Imports accept both
// the camel-case and snake_case spellings of each field; exports only
// ever emit the snake_case ones. Pointer fields distinguish "absent"
// from a zero value so alternate-name precedence works.
type LegacyTask struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title,omitempty"`
	// Name is a legacy alias for Title (import only).
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	// Notes is a legacy alias for Description (import only).
	Notes string `json:"notes,omitempty"`

	DueDate      *string `json:"dueDate,omitempty"`
	DueDateSnake *string `json:"due_date,omitempty"`

	Completed   *bool `json:"completed,omitempty"`
	IsCompleted *bool `json:"is_completed,omitempty"`

	Type string `json:"type,omitempty"`

	CreatedAt      string `json:"createdAt,omitempty"`
	CreatedAtSnake string `json:"created_at,omitempty"`

	// Priority always has an internal value (0 is the default), so it
	// is carried plainly and always emitted.
	Priority int `json:"priority"`

	EstimatedTime      string `json:"estimatedTime,omitempty"`
	EstimatedTimeSnake string `json:"estimated_time,omitempty"`
	// Duration is a timed-task hint only; it never maps to a field.
	Duration string `json:"duration,omitempty"`

	ChecklistItems []LegacyChecklistItem `json:"checklistItems,omitempty"`
	Checklist      []LegacyChecklistItem `json:"checklist,omitempty"`
	Items          []LegacyChecklistItem `json:"items,omitempty"`
}

type LegacyChecklistItem struct {
	ID          string `json:"id,omitempty"`
	Text        string `json:"text,omitempty"`
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	Completed   *bool  `json:"completed,omitempty"`
	IsCompleted *bool  `json:"is_completed,omitempty"`
}

func firstString(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstBool(vals ...*bool) bool {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return false
}

func firstDate(vals ...*string) *string {
	for _, v := range vals {
		if v != nil && *v != "" {
			d := *v
			return &d
		}
	}
	return nil
}

// inferType applies the documented precedence: an explicit known type
// is trusted; otherwise any checklist-like field means checklist, any
// timed-like field means timed, else basic.
func inferType(in LegacyTask) model.TaskType {
	if model.KnownType(model.TaskType(in.Type)) {
		return model.TaskType(in.Type)
	}
	if len(in.ChecklistItems) > 0 || len(in.Checklist) > 0 || len(in.Items) > 0 {
		return model.TypeChecklist
	}
	if in.EstimatedTime != "" || in.EstimatedTimeSnake != "" || in.Duration != "" {
		return model.TypeTimed
	}
	return model.TypeBasic
}

func convertItems(in LegacyTask) []model.ChecklistItem {
	var src []LegacyChecklistItem
	switch {
	case len(in.ChecklistItems) > 0:
		src = in.ChecklistItems
	case len(in.Checklist) > 0:
		src = in.Checklist
	case len(in.Items) > 0:
		src = in.Items
	default:
		return nil
	}

	out := make([]model.ChecklistItem, len(src))
	for i, it := range src {
		id := it.ID
		if id == "" {
			id = model.NewItemID()
		}
		text := firstString(it.Text, it.Name, it.Title)
		if text == "" {
			text = "Untitled Item"
		}
		out[i] = model.ChecklistItem{
			ID:        id,
			Text:      text,
			Completed: firstBool(it.Completed, it.IsCompleted),
		}
	}
	return out
}

// FromLegacy normalizes an external payload into the internal Task
// shape. Missing id and createdAt are generated fresh; a missing title
// becomes PlaceholderTitle. Unknown extra fields are dropped by
// decoding.
func FromLegacy(in LegacyTask, now time.Time) model.Task {
	id := model.TaskID(in.ID)
	if id == "" {
		id = model.NewTaskID()
	}

	title := firstString(in.Title, in.Name)
	if title == "" {
		title = PlaceholderTitle
	}

	createdAt := now
	if raw := firstString(in.CreatedAt, in.CreatedAtSnake); raw != "" {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			createdAt = ts
		}
	}

	return model.Task{
		ID:             id,
		Title:          title,
		Description:    firstString(in.Description, in.Notes),
		DueDate:        firstDate(in.DueDate, in.DueDateSnake),
		Completed:      firstBool(in.Completed, in.IsCompleted),
		Type:           inferType(in),
		Priority:       in.Priority,
		EstimatedTime:  firstString(in.EstimatedTime, in.EstimatedTimeSnake),
		ChecklistItems: convertItems(in),
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
}

// ToLegacy maps a task to the legacy wire shape, always using the
// snake_case field names. Fields without an internal value are
// omitted rather than emitted as null.
func ToLegacy(t model.Task) LegacyTask {
	out := LegacyTask{
		ID:                 string(t.ID),
		Title:              t.Title,
		Description:        t.Description,
		DueDateSnake:       t.DueDate,
		Type:               string(t.Type),
		Priority:           t.Priority,
		EstimatedTimeSnake: t.EstimatedTime,
	}

	completed := t.Completed
	out.IsCompleted = &completed

	if !t.CreatedAt.IsZero() {
		out.CreatedAtSnake = t.CreatedAt.Format(time.RFC3339)
	}

	if len(t.ChecklistItems) > 0 {
		out.Checklist = make([]LegacyChecklistItem, len(t.ChecklistItems))
		for i, it := range t.ChecklistItems {
			done := it.Completed
			out.Checklist[i] = LegacyChecklistItem{
				ID:          it.ID,
				Text:        it.Text,
				IsCompleted: &done,
			}
		}
	}

	return out
}
