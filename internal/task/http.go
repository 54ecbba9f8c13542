package task

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dreyyiizz/ComponentsAct-Ardiente/internal/model"
	"github.com/dreyyiizz/ComponentsAct-Ardiente/internal/telemetry"
)

type Handler struct {
	store       *Store
	sorter      *Sorter
	events      telemetry.Repository
	defaultSort string
}

func NewHandler(store *Store, sorter *Sorter) *Handler {
	return &Handler{store: store, sorter: sorter}
}

// SetDefaultSort names the strategy applied when a listing request
// carries no sort parameter. An unknown name leaves listings unsorted.
func (h *Handler) SetDefaultSort(name string) {
	h.defaultSort = name
}

// SetTelemetry wires an event repository; without one the handler
// simply skips recording.
func (h *Handler) SetTelemetry(repo telemetry.Repository) {
	h.events = repo
}

func (h *Handler) record(t telemetry.EventType, meta telemetry.EventMetadata) {
	if h.events == nil {
		return
	}
	_ = h.events.RecordEvent(t, meta)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// taskFromUpsert builds a persisted task from a validated request.
// Fields irrelevant to the variant are dropped.
func taskFromUpsert(in model.TaskUpsert, now time.Time) model.Task {
	t := model.Task{
		ID:          model.NewTaskID(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Type:        in.Type,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.DueDate != nil && strings.TrimSpace(*in.DueDate) != "" {
		t.DueDate = in.DueDate
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}

	switch in.Type {
	case model.TypeTimed:
		t.EstimatedTime = in.EstimatedTime
	case model.TypeChecklist:
		t.ChecklistItems = make([]model.ChecklistItem, len(in.ChecklistItems))
		for i, item := range in.ChecklistItems {
			t.ChecklistItems[i] = model.ChecklistItem{
				ID:   model.NewItemID(),
				Text: strings.TrimSpace(item.Text),
			}
		}
	}

	return t
}

// /api/tasks  (collection)
func (h *Handler) TasksRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		query := q.Get("q")

		ts := h.store.Search(query)
		if strings.TrimSpace(query) != "" {
			h.record(telemetry.EventSearchPerformed, telemetry.EventMetadata{
				"query": query,
				"hits":  len(ts),
			})
		}

		name := q.Get("sort")
		explicit := name != ""
		if !explicit {
			name = h.defaultSort
		}
		if name != "" {
			strategy := h.sorter.Strategy(name)
			if strategy == nil && explicit {
				writeErr(w, 400, "unknown sort strategy: "+name)
				return
			}
			if strategy != nil {
				ts = strategy(ts)
			}
		}

		writeJSON(w, 200, ts)
		return

	case http.MethodPost:
		var in model.TaskUpsert
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		if err := ValidateUpsert(in); err != nil {
			writeErr(w, 400, err.Error())
			return
		}

		t := taskFromUpsert(in, time.Now())
		if _, err := h.store.Add(t); err != nil {
			writeErr(w, 500, err.Error())
			return
		}

		h.record(telemetry.EventTaskCreated, telemetry.EventMetadata{
			"task_id":   string(t.ID),
			"task_type": string(t.Type),
		})
		writeJSON(w, 201, t)
		return

	default:
		writeErr(w, 405, "method not allowed")
		return
	}
}

// /api/tasks/{id} and below
func (h *Handler) TasksSub(w http.ResponseWriter, r *http.Request) {
	tail := strings.TrimPrefix(r.URL.Path, "/api/tasks/")
	tail = strings.Trim(tail, "/")
	if tail == "" {
		writeErr(w, 404, "not found")
		return
	}

	parts := strings.Split(tail, "/")

	// /api/tasks/export and /api/tasks/import
	if len(parts) == 1 {
		switch parts[0] {
		case "export":
			h.exportLegacy(w, r)
			return
		case "import":
			h.importLegacy(w, r)
			return
		}
	}

	id := model.TaskID(parts[0])

	switch {
	// /api/tasks/{id}
	case len(parts) == 1:
		h.taskByID(w, r, id)

	// /api/tasks/{id}/toggle
	case len(parts) == 2 && parts[1] == "toggle":
		h.toggleTask(w, r, id)

	// /api/tasks/{id}/checklist/{itemID}/toggle
	case len(parts) == 4 && parts[1] == "checklist" && parts[3] == "toggle":
		h.toggleItem(w, r, id, parts[2])

	default:
		writeErr(w, 404, "not found")
	}
}

func (h *Handler) taskByID(w http.ResponseWriter, r *http.Request, id model.TaskID) {
	switch r.Method {
	case http.MethodGet:
		t, err := h.store.Get(id)
		if errors.Is(err, ErrNotFound) {
			writeErr(w, 404, "not found")
			return
		}
		writeJSON(w, 200, t)

	case http.MethodPut:
		var in model.TaskUpsert
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		if err := ValidateUpsert(in); err != nil {
			writeErr(w, 400, err.Error())
			return
		}

		current, err := h.store.Get(id)
		if errors.Is(err, ErrNotFound) {
			writeErr(w, 404, "not found")
			return
		}

		next := taskFromUpsert(in, time.Now())
		next.ID = current.ID
		next.CreatedAt = current.CreatedAt
		next.Completed = current.Completed

		// Optional fields not supplied keep their current value; an
		// explicit empty dueDate clears it.
		if in.DueDate == nil {
			next.DueDate = current.DueDate
		}
		if in.Priority == nil {
			next.Priority = current.Priority
		}
		if next.Type == model.TypeTimed && in.EstimatedTime == "" {
			next.EstimatedTime = current.EstimatedTime
		}

		if next.Type == model.TypeChecklist && current.Type == model.TypeChecklist {
			// An update re-describes the checklist; completion state
			// is carried over for items whose text survives.
			prev := make(map[string]bool, len(current.ChecklistItems))
			for _, it := range current.ChecklistItems {
				prev[strings.ToLower(it.Text)] = it.Completed
			}
			for i := range next.ChecklistItems {
				next.ChecklistItems[i].Completed = prev[strings.ToLower(next.ChecklistItems[i].Text)]
			}
			next.Completed = next.AllItemsCompleted()
		}

		if _, err := h.store.Update(next); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeErr(w, 404, "not found")
				return
			}
			writeErr(w, 500, err.Error())
			return
		}

		h.record(telemetry.EventTaskUpdated, telemetry.EventMetadata{"task_id": string(id)})
		updated, _ := h.store.Get(id)
		writeJSON(w, 200, updated)

	case http.MethodDelete:
		h.store.Remove(id)
		h.record(telemetry.EventTaskDeleted, telemetry.EventMetadata{"task_id": string(id)})
		w.WriteHeader(204)

	default:
		writeErr(w, 405, "method not allowed")
	}
}

func (h *Handler) toggleTask(w http.ResponseWriter, r *http.Request, id model.TaskID) {
	if r.Method != http.MethodPost {
		writeErr(w, 405, "method not allowed")
		return
	}

	before, beforeErr := h.store.Get(id)
	snapshot := h.store.ToggleCompletion(id)

	if beforeErr == nil {
		event := telemetry.EventTaskCompleted
		if before.Completed {
			event = telemetry.EventTaskReopened
		}
		h.record(event, telemetry.EventMetadata{"task_id": string(id)})
	}

	writeJSON(w, 200, snapshot)
}

func (h *Handler) toggleItem(w http.ResponseWriter, r *http.Request, id model.TaskID, itemID string) {
	if r.Method != http.MethodPost {
		writeErr(w, 405, "method not allowed")
		return
	}

	snapshot := h.store.ToggleChecklistItem(id, itemID)
	h.record(telemetry.EventChecklistItemToggled, telemetry.EventMetadata{
		"task_id": string(id),
		"item_id": itemID,
	})
	writeJSON(w, 200, snapshot)
}

// exportLegacy serves GET /api/tasks/export: the full collection in
// the legacy snake_case shape.
func (h *Handler) exportLegacy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, 405, "method not allowed")
		return
	}

	tasks := h.store.List()
	out := make([]LegacyTask, len(tasks))
	for i, t := range tasks {
		out[i] = ToLegacy(t)
	}
	writeJSON(w, 200, out)
}

// importLegacy serves POST /api/tasks/import: an array in the legacy
// shape, normalized through the adapter and appended to the store.
func (h *Handler) importLegacy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, 405, "method not allowed")
		return
	}

	var in []LegacyTask
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, 400, "bad json")
		return
	}

	now := time.Now()
	imported := make([]model.Task, 0, len(in))
	for _, raw := range in {
		t := FromLegacy(raw, now)
		if _, err := h.store.Add(t); err != nil {
			// Duplicate ids in the payload: keep the first occurrence.
			continue
		}
		imported = append(imported, t)
		h.record(telemetry.EventTaskImported, telemetry.EventMetadata{
			"task_id":   string(t.ID),
			"task_type": string(t.Type),
		})
	}

	writeJSON(w, 200, map[string]any{
		"imported": len(imported),
		"tasks":    imported,
	})
}
