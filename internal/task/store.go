package task

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dreyyiizz/ComponentsAct-Ardiente/internal/model"
)

var (
	ErrNotFound    = errors.New("task not found")
	ErrDuplicateID = errors.New("duplicate task id")
)

// Store owns the authoritative in-memory task collection for the
// process lifetime. Every mutation installs a freshly built slice, so
// a snapshot handed to a caller is never changed by later operations.
type Store struct {
	mu    sync.RWMutex
	tasks []model.Task
}

func NewStore() *Store {
	return &Store{tasks: []model.Task{}}
}

// NewSeededStore returns a store preloaded with the three example
// tasks the service resets to on restart.
func NewSeededStore(now time.Time) *Store {
	day := 24 * time.Hour

	due := func(d time.Duration) *string {
		s := now.Add(d).Format(time.RFC3339)
		return &s
	}

	return &Store{tasks: []model.Task{
		{
			ID:          model.NewTaskID(),
			Title:       "Complete project documentation",
			Description: "Write up the final documentation for the project",
			DueDate:     due(2 * day),
			Type:        model.TypeBasic,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:            model.NewTaskID(),
			Title:         "Prepare presentation",
			Description:   "Create slides for the client meeting",
			DueDate:       due(-1 * day),
			Type:          model.TypeTimed,
			EstimatedTime: "120",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:          model.NewTaskID(),
			Title:       "Weekly grocery shopping",
			Description: "Buy items for the week",
			DueDate:     due(1 * day),
			Type:        model.TypeChecklist,
			ChecklistItems: []model.ChecklistItem{
				{ID: model.NewItemID(), Text: "Fruits and vegetables", Completed: true},
				{ID: model.NewItemID(), Text: "Milk and dairy"},
				{ID: model.NewItemID(), Text: "Bread and cereals"},
				{ID: model.NewItemID(), Text: "Meat and fish"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}}
}

// snapshot deep-copies the current collection. Callers must hold at
// least a read lock.
func (s *Store) snapshot() []model.Task {
	out := make([]model.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// List returns a defensive copy of every task in store order.
func (s *Store) List() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Get returns the task with the given id.
func (s *Store) Get(id model.TaskID) (model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return model.Task{}, ErrNotFound
}

// Add appends a fully populated task. The id must be unique; adding a
// task whose id is already present fails with ErrDuplicateID and
// leaves the collection untouched.
func (s *Store) Add(t model.Task) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.tasks {
		if existing.ID == t.ID {
			return nil, ErrDuplicateID
		}
	}

	next := make([]model.Task, 0, len(s.tasks)+1)
	next = append(next, s.tasks...)
	next = append(next, t.Clone())
	s.tasks = next

	return s.snapshot(), nil
}

// Remove deletes the task with the given id. Removing an absent id is
// a no-op, not an error.
func (s *Store) Remove(id model.TaskID) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	s.tasks = next

	return s.snapshot()
}

// Update replaces the task whose id matches t.ID and refreshes its
// UpdatedAt. CreatedAt is preserved from the stored task.
func (s *Store) Update(t model.Task) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, existing := range s.tasks {
		if existing.ID == t.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	t = t.Clone()
	t.CreatedAt = s.tasks[idx].CreatedAt
	t.UpdatedAt = time.Now()

	next := make([]model.Task, len(s.tasks))
	copy(next, s.tasks)
	next[idx] = t
	s.tasks = next

	return s.snapshot(), nil
}

// ToggleCompletion flips the task's completed flag. For checklist
// tasks every child item is synchronized to the new task-level value.
// An absent id is a silent no-op.
func (s *Store) ToggleCompletion(id model.TaskID) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Task, len(s.tasks))
	for i, t := range s.tasks {
		if t.ID != id {
			next[i] = t
			continue
		}

		t = t.Clone()
		t.Completed = !t.Completed
		for j := range t.ChecklistItems {
			t.ChecklistItems[j].Completed = t.Completed
		}
		t.UpdatedAt = time.Now()
		next[i] = t
	}
	s.tasks = next

	return s.snapshot()
}

// ToggleChecklistItem flips one checklist item and re-derives the
// parent task's completed flag as the AND over all items. Absent task
// or item ids are silent no-ops.
func (s *Store) ToggleChecklistItem(taskID model.TaskID, itemID string) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Task, len(s.tasks))
	for i, t := range s.tasks {
		if t.ID != taskID || t.Type != model.TypeChecklist {
			next[i] = t
			continue
		}

		t = t.Clone()
		touched := false
		for j := range t.ChecklistItems {
			if t.ChecklistItems[j].ID == itemID {
				t.ChecklistItems[j].Completed = !t.ChecklistItems[j].Completed
				touched = true
			}
		}
		if touched {
			t.Completed = t.AllItemsCompleted()
			t.UpdatedAt = time.Now()
		}
		next[i] = t
	}
	s.tasks = next

	return s.snapshot()
}

// Search returns tasks whose title or description contains the query,
// case-insensitively. An empty or whitespace-only query returns the
// full collection in store order.
func (s *Store) Search(query string) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.snapshot()
	}

	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Description), q) {
			out = append(out, t.Clone())
		}
	}
	return out
}
