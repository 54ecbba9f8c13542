package task

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/dreyyiizz/ComponentsAct-Ardiente/internal/model"
)

var (
	ErrEmptyTitle         = errors.New("title is required")
	ErrUnknownType        = errors.New("unknown task type")
	ErrBadEstimatedTime   = errors.New("estimatedTime must be a non-negative number of minutes")
	ErrNoChecklistItems   = errors.New("checklist tasks need at least one item")
	ErrEmptyChecklistText = errors.New("checklist item text is required")
	ErrBadDueDate         = errors.New("dueDate must be an ISO-8601 date")
)

// ValidateUpsert checks a create/update request before the store is
// touched. It returns the first violation found.
func ValidateUpsert(in model.TaskUpsert) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrEmptyTitle
	}
	if !model.KnownType(in.Type) {
		return ErrUnknownType
	}
	if in.DueDate != nil && strings.TrimSpace(*in.DueDate) != "" {
		if !validDueDate(*in.DueDate) {
			return ErrBadDueDate
		}
	}

	switch in.Type {
	case model.TypeTimed:
		if in.EstimatedTime != "" {
			n, err := strconv.Atoi(in.EstimatedTime)
			if err != nil || n < 0 {
				return ErrBadEstimatedTime
			}
		}
	case model.TypeChecklist:
		if len(in.ChecklistItems) == 0 {
			return ErrNoChecklistItems
		}
		for _, it := range in.ChecklistItems {
			if strings.TrimSpace(it.Text) == "" {
				return ErrEmptyChecklistText
			}
		}
	}

	return nil
}

func validDueDate(s string) bool {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
