package task

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dreyyiizz/ComponentsAct-Ardiente/internal/model"
)

// Sort strategy names accepted by the HTTP layer and config.
const (
	SortByDate       = "date"
	SortByName       = "name"
	SortByCreation   = "creation"
	SortByCompletion = "completion"
	SortByPriority   = "priority"
)

// SortFunc reorders a task snapshot. Every strategy is pure and
// stable: the input is never mutated, ties keep their input order, and
// the output always has the same length as the input.
type SortFunc func([]model.Task) []model.Task

// Sorter holds the five sorting strategies. Name comparison is
// collated for the configured locale.
type Sorter struct {
	coll *collate.Collator
}

func NewSorter(locale string) *Sorter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Sorter{coll: collate.New(tag)}
}

// Strategy returns the named strategy, or nil for an unknown name.
func (s *Sorter) Strategy(name string) SortFunc {
	switch name {
	case SortByDate:
		return s.ByDate
	case SortByName:
		return s.ByName
	case SortByCreation:
		return s.ByCreation
	case SortByCompletion:
		return s.ByCompletion
	case SortByPriority:
		return s.ByPriority
	}
	return nil
}

func cloneAll(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// dueTime parses a task's due date. RFC 3339 first, then plain
// YYYY-MM-DD; anything else counts as undated.
func dueTime(t model.Task) (time.Time, bool) {
	if t.DueDate == nil {
		return time.Time{}, false
	}
	if ts, err := time.Parse(time.RFC3339, *t.DueDate); err == nil {
		return ts, true
	}
	if ts, err := time.Parse("2006-01-02", *t.DueDate); err == nil {
		return ts, true
	}
	return time.Time{}, false
}

// ByDate sorts ascending by due date. Undated tasks come after all
// dated tasks and keep their relative order.
func (s *Sorter) ByDate(tasks []model.Task) []model.Task {
	out := cloneAll(tasks)
	sort.SliceStable(out, func(i, j int) bool {
		di, iOK := dueTime(out[i])
		dj, jOK := dueTime(out[j])
		switch {
		case iOK && jOK:
			return di.Before(dj)
		case iOK:
			return true
		default:
			return false
		}
	})
	return out
}

// ByName sorts ascending by title using locale-aware collation.
func (s *Sorter) ByName(tasks []model.Task) []model.Task {
	out := cloneAll(tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return s.coll.CompareString(out[i].Title, out[j].Title) < 0
	})
	return out
}

// ByCreation sorts ascending by CreatedAt. Tasks with a zero
// CreatedAt sort together ahead of dated ones and keep their input
// order.
func (s *Sorter) ByCreation(tasks []model.Task) []model.Task {
	out := cloneAll(tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// ByCompletion puts incomplete tasks before completed ones.
func (s *Sorter) ByCompletion(tasks []model.Task) []model.Task {
	out := cloneAll(tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return !out[i].Completed && out[j].Completed
	})
	return out
}

// ByPriority sorts descending by priority.
func (s *Sorter) ByPriority(tasks []model.Task) []model.Task {
	out := cloneAll(tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}
