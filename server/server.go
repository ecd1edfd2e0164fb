package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/episodarr/episodarr/pkg/catalog"
	"github.com/episodarr/episodarr/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/tracker.go -pkg mocks -skip-ensure -fmt goimports . Tracker
//go:generate moq -out mocks/catalog.go -pkg mocks -skip-ensure -fmt goimports . Catalog
//go:generate moq -out mocks/torrents.go -pkg mocks -skip-ensure -fmt goimports . TorrentClient

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	db       Database
	tracker  Tracker
	catalog  Catalog
	torrents TorrentClient
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for server operations
type Database interface {
	GetShows(ctx context.Context) ([]*domain.Show, error)
	GetShow(ctx context.Context, id int64) (*domain.Show, error)
	CreateShow(ctx context.Context, show *domain.Show) error
	UpdateShow(ctx context.Context, show *domain.Show) error
	DeleteShow(ctx context.Context, id int64) error

	GetAllRules(ctx context.Context) ([]domain.FilterRule, error)
	GetRule(ctx context.Context, id int64) (*domain.FilterRule, error)
	CreateRule(ctx context.Context, rule *domain.FilterRule) error
	UpdateRule(ctx context.Context, rule *domain.FilterRule) error
	DeleteRule(ctx context.Context, id int64) error
	ToggleRule(ctx context.Context, id int64) error

	GetShowOverrides(ctx context.Context, showID int64) ([]domain.ShowOverride, error)
	CreateOverride(ctx context.Context, override *domain.ShowOverride) error
	DeleteOverride(ctx context.Context, showID, overrideID int64) error

	GetShowHistory(ctx context.Context, showID int64) ([]domain.DownloadRecord, error)
	GetRecentHistory(ctx context.Context, limit int) ([]domain.DownloadRecord, error)

	GetPollConfig(ctx context.Context) (*domain.PollConfig, error)
	UpdatePollConfig(ctx context.Context, timesPerDay int, enabled bool) error
}

// Tracker interface for on-demand poll operations
type Tracker interface {
	RunOnce(ctx context.Context) (dispatched int, err error)
	Running() bool
	NextPoll() time.Time
}

// Catalog interface for metadata lookups
type Catalog interface {
	Search(ctx context.Context, query string) ([]catalog.Media, error)
}

// TorrentClient interface for download client maintenance
type TorrentClient interface {
	RemoveAll(ctx context.Context, deleteData bool) (int, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, tracker Tracker, cat Catalog, torrents TorrentClient, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		db:       db,
		tracker:  tracker,
		catalog:  cat,
		torrents: torrents,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("episodarr", "episodarr", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /sync", s.syncHandler)

		r.HandleFunc("GET /shows", s.listShowsHandler)
		r.HandleFunc("POST /shows", s.createShowHandler)
		r.HandleFunc("GET /shows/{id}", s.getShowHandler)
		r.HandleFunc("PUT /shows/{id}", s.updateShowHandler)
		r.HandleFunc("DELETE /shows/{id}", s.deleteShowHandler)
		r.HandleFunc("GET /shows/{id}/history", s.showHistoryHandler)
		r.HandleFunc("GET /shows/{id}/overrides", s.listOverridesHandler)
		r.HandleFunc("POST /shows/{id}/overrides", s.createOverrideHandler)
		r.HandleFunc("DELETE /shows/{id}/overrides/{overrideID}", s.deleteOverrideHandler)

		r.HandleFunc("GET /rules", s.listRulesHandler)
		r.HandleFunc("POST /rules", s.createRuleHandler)
		r.HandleFunc("PUT /rules/{id}", s.updateRuleHandler)
		r.HandleFunc("DELETE /rules/{id}", s.deleteRuleHandler)
		r.HandleFunc("POST /rules/{id}/toggle", s.toggleRuleHandler)

		r.HandleFunc("GET /history", s.historyHandler)
		r.HandleFunc("GET /poll", s.getPollHandler)
		r.HandleFunc("PUT /poll", s.updatePollHandler)
		r.HandleFunc("GET /search", s.searchHandler)
		r.HandleFunc("POST /transmission/clear", s.clearTorrentsHandler)
	})
}

// statusHandler returns server status including poll loop state
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":       "ok",
		"version":      s.version,
		"time":         time.Now().UTC(),
		"poll_running": s.tracker.Running(),
	}
	if next := s.tracker.NextPoll(); !next.IsZero() {
		status["next_poll"] = next.UTC()
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}

// renderStoreError maps repository errors to HTTP responses. Missing rows are
// the caller's mistake and rendered as 404 without logging; anything else is
// logged and rendered as 500.
func renderStoreError(w http.ResponseWriter, r *http.Request, err error, op string) {
	if errors.Is(err, domain.ErrNotFound) {
		RenderError(w, r, err, http.StatusNotFound)
		return
	}
	log.Printf("[ERROR] failed to %s: %v", op, err)
	RenderError(w, r, err, http.StatusInternalServerError)
}
