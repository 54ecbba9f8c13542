package telemetry

import (
	"encoding/json"
	"sync"
	"time"
)

// Repository stores lifecycle events emitted by the task and user
// handlers.
type Repository interface {
	RecordEvent(eventType EventType, metadata EventMetadata) error
	GetEvents(since time.Time, eventTypes []EventType) ([]Event, error)
	Clear() error
}

// MemoryRepository stores events in memory. Like the rest of the
// service it holds no durable state; a restart starts an empty log.
type MemoryRepository struct {
	mu     sync.RWMutex
	events []Event
	nextID int

	// maxEvents caps the log; 0 means unbounded. Oldest events are
	// dropped first.
	maxEvents int
}

func NewMemoryRepository(maxEvents int) *MemoryRepository {
	return &MemoryRepository{
		events:    make([]Event, 0),
		nextID:    1,
		maxEvents: maxEvents,
	}
}

func (r *MemoryRepository) RecordEvent(eventType EventType, metadata EventMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return err
	}

	event := Event{
		ID:        r.nextID,
		Type:      eventType,
		Timestamp: time.Now(),
		Metadata:  string(metadataJSON),
	}

	r.events = append(r.events, event)
	r.nextID++

	if r.maxEvents > 0 && len(r.events) > r.maxEvents {
		overflow := len(r.events) - r.maxEvents
		r.events = append([]Event(nil), r.events[overflow:]...)
	}

	return nil
}

func (r *MemoryRepository) GetEvents(since time.Time, eventTypes []EventType) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	typeFilter := make(map[EventType]bool)
	for _, t := range eventTypes {
		typeFilter[t] = true
	}

	result := make([]Event, 0)
	for _, event := range r.events {
		if event.Timestamp.Before(since) {
			continue
		}
		if len(eventTypes) > 0 && !typeFilter[event.Type] {
			continue
		}
		result = append(result, event)
	}

	return result, nil
}

func (r *MemoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = make([]Event, 0)
	r.nextID = 1

	return nil
}
