package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/episodarr/episodarr/pkg/domain"
)

// showRequest is the JSON payload for creating or updating a show. Omitted
// fields fall back to the defaults a fresh show gets: season 1, subsplease
// source, 1080p quality, tracked.
type showRequest struct {
	ID             int64      `json:"id"` // honored on create so catalog ids can serve as primary keys
	Title          string     `json:"title"`
	AlternateTitle string     `json:"alternate_title"`
	Season         *int       `json:"season"`
	Source         string     `json:"source"`
	Quality        string     `json:"quality"`
	DownloadPath   string     `json:"download_path"`
	Tracked        *bool      `json:"tracked"`
	LatestEpisode  int        `json:"latest_episode"`
	NextAirDate    *time.Time `json:"next_air_date"`
}

// toShow converts the request to a domain show, applying defaults
func (req *showRequest) toShow() (*domain.Show, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("show title is required")
	}

	show := &domain.Show{
		ID:             req.ID,
		Title:          req.Title,
		AlternateTitle: req.AlternateTitle,
		Season:         1,
		Source:         domain.SourceSubsPlease,
		Quality:        "1080p",
		DownloadPath:   req.DownloadPath,
		Tracked:        true,
		LatestEpisode:  req.LatestEpisode,
		NextAirDate:    req.NextAirDate,
	}

	if req.Season != nil {
		if *req.Season < 0 {
			return nil, fmt.Errorf("season must not be negative")
		}
		show.Season = *req.Season
	}
	if req.Source != "" {
		show.Source = req.Source
	}
	if req.Quality != "" {
		show.Quality = req.Quality
	}
	if req.Tracked != nil {
		show.Tracked = *req.Tracked
	}

	return show, nil
}

// listShowsHandler returns all shows
func (s *Server) listShowsHandler(w http.ResponseWriter, r *http.Request) {
	shows, err := s.db.GetShows(r.Context())
	if err != nil {
		renderStoreError(w, r, err, "get shows")
		return
	}
	RenderJSON(w, r, http.StatusOK, shows)
}

// createShowHandler adds a new show
func (s *Server) createShowHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req showRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	show, err := req.toShow()
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.db.CreateShow(ctx, show); err != nil {
		renderStoreError(w, r, err, "create show")
		return
	}

	// reload for database-assigned timestamps
	created, err := s.db.GetShow(ctx, show.ID)
	if err != nil {
		log.Printf("[ERROR] failed to get show after create: %v", err)
		RenderJSON(w, r, http.StatusCreated, show)
		return
	}
	RenderJSON(w, r, http.StatusCreated, created)
}

// getShowHandler returns a single show
func (s *Server) getShowHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid show ID"), http.StatusBadRequest)
		return
	}

	show, err := s.db.GetShow(r.Context(), id)
	if err != nil {
		renderStoreError(w, r, err, "get show")
		return
	}
	RenderJSON(w, r, http.StatusOK, show)
}

// updateShowHandler replaces the editable fields of a show. The download
// watermark is not editable through the API.
func (s *Server) updateShowHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid show ID"), http.StatusBadRequest)
		return
	}

	var req showRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	show, err := req.toShow()
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	show.ID = id

	if err := s.db.UpdateShow(ctx, show); err != nil {
		renderStoreError(w, r, err, "update show")
		return
	}

	updated, err := s.db.GetShow(ctx, id)
	if err != nil {
		renderStoreError(w, r, err, "get show after update")
		return
	}
	RenderJSON(w, r, http.StatusOK, updated)
}

// deleteShowHandler removes a show with its history and overrides
func (s *Server) deleteShowHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid show ID"), http.StatusBadRequest)
		return
	}

	if err := s.db.DeleteShow(r.Context(), id); err != nil {
		renderStoreError(w, r, err, "delete show")
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// showHistoryHandler returns the download history of one show
func (s *Server) showHistoryHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid show ID"), http.StatusBadRequest)
		return
	}

	// the history of a missing show is a 404, not an empty list
	if _, err := s.db.GetShow(ctx, id); err != nil {
		renderStoreError(w, r, err, "get show")
		return
	}

	records, err := s.db.GetShowHistory(ctx, id)
	if err != nil {
		renderStoreError(w, r, err, "get show history")
		return
	}
	RenderJSON(w, r, http.StatusOK, records)
}

// listOverridesHandler returns the filter overrides of one show
func (s *Server) listOverridesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid show ID"), http.StatusBadRequest)
		return
	}

	if _, err := s.db.GetShow(ctx, id); err != nil {
		renderStoreError(w, r, err, "get show")
		return
	}

	overrides, err := s.db.GetShowOverrides(ctx, id)
	if err != nil {
		renderStoreError(w, r, err, "get show overrides")
		return
	}
	RenderJSON(w, r, http.StatusOK, overrides)
}

// overrideRequest is the JSON payload for creating a show override. Kind
// selects the shape: a rule_toggle carries rule_id and the toggle state, a
// custom carries type/pattern/action and starts enabled.
type overrideRequest struct {
	Kind    domain.OverrideKind `json:"kind"`
	Enabled bool                `json:"enabled"`
	RuleID  int64               `json:"rule_id"`
	Type    domain.FilterType   `json:"type"`
	Pattern string              `json:"pattern"`
	Action  domain.FilterAction `json:"action"`
}

// createOverrideHandler adds a filter override to a show
func (s *Server) createOverrideHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid show ID"), http.StatusBadRequest)
		return
	}

	if _, err := s.db.GetShow(ctx, id); err != nil {
		renderStoreError(w, r, err, "get show")
		return
	}

	var req overrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	var override domain.ShowOverride
	switch req.Kind {
	case domain.OverrideRuleToggle:
		override = domain.NewRuleToggle(id, req.RuleID, req.Enabled)
	case domain.OverrideCustomRule:
		override = domain.NewCustomOverride(id, req.Type, req.Pattern, req.Action)
	default:
		RenderError(w, r, fmt.Errorf("unknown override kind %q", req.Kind), http.StatusBadRequest)
		return
	}

	if err := override.Validate(); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.db.CreateOverride(ctx, &override); err != nil {
		renderStoreError(w, r, err, "create override")
		return
	}
	RenderJSON(w, r, http.StatusCreated, override)
}

// deleteOverrideHandler removes one override of a show
func (s *Server) deleteOverrideHandler(w http.ResponseWriter, r *http.Request) {
	showID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid show ID"), http.StatusBadRequest)
		return
	}

	overrideID, err := strconv.ParseInt(r.PathValue("overrideID"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid override ID"), http.StatusBadRequest)
		return
	}

	if err := s.db.DeleteOverride(r.Context(), showID, overrideID); err != nil {
		renderStoreError(w, r, err, "delete override")
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}
