package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreyyiizz/ComponentsAct-Ardiente/internal/model"
)

func strPtr(s string) *string { return &s }

func titles(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestByDate_UndatedAfterDatedStable(t *testing.T) {
	sorter := NewSorter("en")

	in := []model.Task{
		{Title: "A"},
		{Title: "B", DueDate: strPtr("2024-01-01")},
		{Title: "C"},
	}

	out := sorter.ByDate(in)
	assert.Equal(t, []string{"B", "A", "C"}, titles(out))
}

func TestByDate_Ascending(t *testing.T) {
	sorter := NewSorter("en")

	in := []model.Task{
		{Title: "later", DueDate: strPtr("2024-06-01")},
		{Title: "sooner", DueDate: strPtr("2024-01-15")},
		{Title: "rfc3339", DueDate: strPtr("2024-03-01T09:00:00Z")},
	}

	out := sorter.ByDate(in)
	assert.Equal(t, []string{"sooner", "rfc3339", "later"}, titles(out))
}

func TestByDate_DoesNotMutateInput(t *testing.T) {
	sorter := NewSorter("en")

	in := []model.Task{
		{Title: "z", DueDate: strPtr("2024-06-01")},
		{Title: "a", DueDate: strPtr("2024-01-01")},
	}

	_ = sorter.ByDate(in)
	assert.Equal(t, []string{"z", "a"}, titles(in))
}

func TestByName_Lexicographic(t *testing.T) {
	sorter := NewSorter("en")

	in := []model.Task{
		{Title: "cherry"},
		{Title: "apple"},
		{Title: "Banana"},
	}

	out := sorter.ByName(in)
	assert.Equal(t, []string{"apple", "Banana", "cherry"}, titles(out))
}

func TestByCreation_ZeroTimesTie(t *testing.T) {
	sorter := NewSorter("en")

	// The zero-created tasks are interleaved between the dated ones;
	// they must not block the dated tasks from ordering.
	base := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	in := []model.Task{
		{Title: "newest", CreatedAt: base.Add(2 * time.Hour)},
		{Title: "unknown-1"},
		{Title: "oldest", CreatedAt: base},
		{Title: "unknown-2"},
	}

	out := sorter.ByCreation(in)

	// Zero CreatedAt values sort together first, keeping their
	// relative input order, then the dated tasks ascending.
	assert.Equal(t, []string{"unknown-1", "unknown-2", "oldest", "newest"}, titles(out))
}

func TestByCompletion_IncompleteFirstStable(t *testing.T) {
	sorter := NewSorter("en")

	in := []model.Task{
		{Title: "done-1", Completed: true},
		{Title: "open-1"},
		{Title: "done-2", Completed: true},
		{Title: "open-2"},
	}

	out := sorter.ByCompletion(in)
	assert.Equal(t, []string{"open-1", "open-2", "done-1", "done-2"}, titles(out))
}

func TestByPriority_DescendingMissingZero(t *testing.T) {
	sorter := NewSorter("en")

	in := []model.Task{
		{Title: "none"},
		{Title: "high", Priority: 5},
		{Title: "low", Priority: 1},
		{Title: "also-none"},
	}

	out := sorter.ByPriority(in)
	assert.Equal(t, []string{"high", "low", "none", "also-none"}, titles(out))
}

func TestStrategies_NeverFilter(t *testing.T) {
	sorter := NewSorter("en")

	in := []model.Task{
		{Title: "a", DueDate: strPtr("not a date")},
		{Title: "b"},
		{Title: "c", Completed: true, Priority: -3},
	}

	for _, name := range []string{SortByDate, SortByName, SortByCreation, SortByCompletion, SortByPriority} {
		strategy := sorter.Strategy(name)
		require.NotNil(t, strategy, name)
		assert.Len(t, strategy(in), len(in), name)
	}
}

func TestStrategy_UnknownName(t *testing.T) {
	sorter := NewSorter("en")
	assert.Nil(t, sorter.Strategy("bogus"))
}

func TestNewSorter_BadLocaleFallsBack(t *testing.T) {
	sorter := NewSorter("not-a-locale!!")
	out := sorter.ByName([]model.Task{{Title: "b"}, {Title: "a"}})
	assert.Equal(t, []string{"a", "b"}, titles(out))
}
