package user

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dreyyiizz/ComponentsAct-Ardiente/internal/model"
)

var ErrNotFound = errors.New("user not found")

// Store owns the in-memory user collection. Unlike the task store it
// always starts empty; there is no seed set for users.
type Store struct {
	mu    sync.RWMutex
	users []model.User
}

func NewStore() *Store {
	return &Store{users: []model.User{}}
}

func (s *Store) snapshot() []model.User {
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) List() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *Store) Get(id model.UserID) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

// Create appends a new user built from an already-validated request.
func (s *Store) Create(in model.UserUpsert, now time.Time) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := model.User{
		ID:                    model.UserID(uuid.NewString()),
		FirstName:             in.FirstName,
		LastName:              in.LastName,
		GroupName:             in.GroupName,
		Role:                  in.Role,
		ExpectedSalary:        *in.ExpectedSalary,
		ExpectedDateOfDefense: in.ExpectedDateOfDefense,
		CreatedAt:             now,
	}

	next := make([]model.User, 0, len(s.users)+1)
	next = append(next, s.users...)
	next = append(next, u)
	s.users = next

	return u
}

// Update replaces every supplied field of the user with the given id,
// preserving CreatedAt and stamping UpdatedAt.
func (s *Store) Update(id model.UserID, in model.UserUpsert, now time.Time) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, u := range s.users {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return model.User{}, ErrNotFound
	}

	u := s.users[idx]
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	u.GroupName = in.GroupName
	u.Role = in.Role
	u.ExpectedSalary = *in.ExpectedSalary
	u.ExpectedDateOfDefense = in.ExpectedDateOfDefense
	u.UpdatedAt = now

	next := make([]model.User, len(s.users))
	copy(next, s.users)
	next[idx] = u
	s.users = next

	return u, nil
}

// Delete removes the user with the given id and reports whether one
// was present.
func (s *Store) Delete(id model.UserID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.User, 0, len(s.users))
	found := false
	for _, u := range s.users {
		if u.ID == id {
			found = true
			continue
		}
		next = append(next, u)
	}
	s.users = next

	return found
}
