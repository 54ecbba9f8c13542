package telemetry

import (
	"encoding/json"
	"net/http"
	"time"
)

// Handler serves the stats endpoint.
type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Stats handles GET /api/stats?since=YYYY-MM-DD. With no since
// parameter the summary covers the whole event log.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	since := time.Time{}
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": "since must be YYYY-MM-DD"})
			return
		}
		since = parsed
	}

	events, err := h.repo.GetEvents(since, nil)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	stats, err := CalculateStats(events, since)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(stats)
}
