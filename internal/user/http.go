package user

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
	store  *Store
	events telemetry.Repository
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

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
	writeJSON(w, code, map[string]any{"message": msg})
}

// validateUpsert enforces the users API contract: every field is
// required on both create and update.
func validateUpsert(in model.UserUpsert) error {
	if strings.TrimSpace(in.FirstName) == "" ||
		strings.TrimSpace(in.LastName) == "" ||
		strings.TrimSpace(in.GroupName) == "" ||
		strings.TrimSpace(in.Role) == "" ||
		in.ExpectedSalary == nil ||
		strings.TrimSpace(in.ExpectedDateOfDefense) == "" {
		return errors.New("all fields are required")
	}
	return nil
}

// /api/users  (collection)
func (h *Handler) UsersRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, 200, h.store.List())

	case http.MethodPost:
		var in model.UserUpsert
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		if err := validateUpsert(in); err != nil {
			writeErr(w, 400, err.Error())
			return
		}

		u := h.store.Create(in, time.Now())
		h.record(telemetry.EventUserCreated, telemetry.EventMetadata{"user_id": string(u.ID)})
		writeJSON(w, 201, u)

	default:
		writeErr(w, 405, "method not allowed")
	}
}

// /api/users/{id}
func (h *Handler) UsersSub(w http.ResponseWriter, r *http.Request) {
	tail := strings.TrimPrefix(r.URL.Path, "/api/users/")
	tail = strings.Trim(tail, "/")
	if tail == "" || strings.Contains(tail, "/") {
		writeErr(w, 404, "not found")
		return
	}
	id := model.UserID(tail)

	switch r.Method {
	case http.MethodGet:
		u, err := h.store.Get(id)
		if errors.Is(err, ErrNotFound) {
			writeErr(w, 404, "User not found")
			return
		}
		writeJSON(w, 200, u)

	case http.MethodPut:
		var in model.UserUpsert
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		if err := validateUpsert(in); err != nil {
			writeErr(w, 400, err.Error())
			return
		}

		u, err := h.store.Update(id, in, time.Now())
		if errors.Is(err, ErrNotFound) {
			writeErr(w, 404, "User not found")
			return
		}
		h.record(telemetry.EventUserUpdated, telemetry.EventMetadata{"user_id": string(u.ID)})
		writeJSON(w, 200, u)

	case http.MethodDelete:
		if !h.store.Delete(id) {
			writeErr(w, 404, "User not found")
			return
		}
		h.record(telemetry.EventUserDeleted, telemetry.EventMetadata{"user_id": string(id)})
		w.WriteHeader(204)

	default:
		writeErr(w, 405, "method not allowed")
	}
}
