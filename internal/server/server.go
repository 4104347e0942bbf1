package server

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kupikrutcher/relationship-app/internal/records"
)

// Server is the relationship journal HTTP API server.
type Server struct {
	records *records.Store
	logger  *slog.Logger
	ping    func(context.Context) error
	storage string
	static  fs.FS
	router  chi.Router
	version string
	started time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithStorage reports the storage backend in the health check. ping may be
// nil for backends without a connection to check.
func WithStorage(name string, ping func(context.Context) error) Option {
	return func(s *Server) {
		s.storage = name
		s.ping = ping
	}
}

// WithStatic serves fsys at / with single-page-app fallback.
func WithStatic(fsys fs.FS) Option {
	return func(s *Server) { s.static = fsys }
}

// New creates a new Server over the given record store.
func New(rs *records.Store, version string, opts ...Option) *Server {
	s := &Server{
		records: rs,
		logger:  slog.Default(),
		storage: "memory",
		version: version,
		started: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/data", s.handleGetData)
		r.Post("/data", s.handleReplaceData)
		r.Get("/insights", s.handleInsights)

		r.Route("/events", func(r chi.Router) {
			r.Get("/", s.handleListEvents)
			r.Post("/", s.handleAddEvent)
			r.Patch("/{id}", s.handleUpdateEvent)
			r.Delete("/{id}", s.handleDeleteEvent)
		})

		r.Route("/wishes", func(r chi.Router) {
			r.Get("/", s.handleListWishes)
			r.Post("/", s.handleAddWish)
			r.Patch("/{id}", s.handleUpdateWish)
			r.Post("/{id}/fulfill", s.handleFulfillWish)
			r.Delete("/{id}", s.handleDeleteWish)
		})

		r.Route("/reminders", func(r chi.Router) {
			r.Get("/", s.handleListReminders)
			r.Post("/", s.handleAddReminder)
			r.Get("/status", s.handleReminderStatus)
			r.Patch("/{id}", s.handleUpdateReminder)
			r.Delete("/{id}", s.handleDeleteReminder)
		})

		r.Route("/moods", func(r chi.Router) {
			r.Get("/", s.handleListMoods)
			r.Post("/", s.handleAddMood)
			r.Patch("/{id}", s.handleUpdateMood)
		})

		r.Get("/settings", s.handleGetSettings)
		r.Patch("/settings", s.handleUpdateSettings)
	})

	if s.static != nil {
		r.Handle("/*", spaHandler(s.static))
	}

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	storageOK := true
	if s.ping != nil {
		if err := s.ping(r.Context()); err != nil {
			s.logger.Warn("storage ping failed", slog.String("error", err.Error()))
			storageOK = false
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"version":    s.version,
		"uptime":     time.Since(s.started).Seconds(),
		"storage":    s.storage,
		"storage_ok": storageOK,
	})
}
