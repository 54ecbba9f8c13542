package serverapp

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dreyyiizz/ComponentsAct-Ardiente/internal/config"
	"github.com/dreyyiizz/ComponentsAct-Ardiente/internal/httpmw"
	"github.com/dreyyiizz/ComponentsAct-Ardiente/internal/roster"
	"github.com/dreyyiizz/ComponentsAct-Ardiente/internal/task"
	"github.com/dreyyiizz/ComponentsAct-Ardiente/internal/telemetry"
	"github.com/dreyyiizz/ComponentsAct-Ardiente/internal/user"
	staticfiles "github.com/dreyyiizz/ComponentsAct-Ardiente/static"
)

type Options struct {
	Config        *config.Config
	StaticDir     string
	UseDiskStatic bool
	Logger        *log.Logger

	// Now stamps seed data; tests fix it, main leaves it nil for
	// time.Now.
	Now func() time.Time
}

// NewHandler assembles the full HTTP surface: the task API, the users
// variant, the roster display data, stats, health probes and the
// embedded UI.
func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if strings.TrimSpace(opts.StaticDir) == "" {
		opts.StaticDir = "static"
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	mux := http.NewServeMux()

	staticHandler := http.FileServer(http.FS(staticfiles.EmbeddedFS()))
	if opts.UseDiskStatic {
		staticHandler = http.FileServer(http.Dir(opts.StaticDir))
	}
	mux.Handle("/static/", http.StripPrefix("/static/", staticHandler))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "taskboard",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	events := telemetry.NewMemoryRepository(opts.Config.Telemetry.MaxEvents)

	var taskStore *task.Store
	if opts.Config.Tasks.Seed == config.SeedEmpty {
		taskStore = task.NewStore()
	} else {
		taskStore = task.NewSeededStore(now())
	}
	sorter := task.NewSorter(opts.Config.Tasks.Locale)

	taskHandler := task.NewHandler(taskStore, sorter)
	taskHandler.SetTelemetry(events)
	taskHandler.SetDefaultSort(opts.Config.Tasks.DefaultSort)
	mux.HandleFunc("/api/tasks", taskHandler.TasksRoot)
	mux.HandleFunc("/api/tasks/", taskHandler.TasksSub)

	userStore := user.NewStore()
	userHandler := user.NewHandler(userStore)
	userHandler.SetTelemetry(events)
	mux.HandleFunc("/api/users", userHandler.UsersRoot)
	mux.HandleFunc("/api/users/", userHandler.UsersSub)

	mux.HandleFunc("/api/employees", roster.EmployeesHandler)
	mux.HandleFunc("/api/achievements", roster.AchievementsHandler)

	statsHandler := telemetry.NewHandler(events)
	mux.HandleFunc("/api/stats", statsHandler.Stats)

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(opts.Config); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		_ = taskStore.List()
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "taskboard",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/static/index.html", http.StatusFound)
	})

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	), nil
}

func UseDiskStaticByEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TASKBOARD_DEV_STATIC"))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
