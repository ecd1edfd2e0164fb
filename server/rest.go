package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/episodarr/episodarr/pkg/scheduler"
)

// syncHandler runs one poll cycle immediately. The cycle keeps going even if
// the caller disconnects, so it runs on a background context.
func (s *Server) syncHandler(w http.ResponseWriter, r *http.Request) {
	dispatched, err := s.tracker.RunOnce(context.Background())
	if err != nil {
		if errors.Is(err, scheduler.ErrCycleRunning) {
			RenderError(w, r, err, http.StatusConflict)
			return
		}
		log.Printf("[ERROR] manual sync failed: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"status": "completed", "dispatched": dispatched})
}

// historyHandler returns recent downloads across all shows
func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			RenderError(w, r, fmt.Errorf("invalid limit"), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	records, err := s.db.GetRecentHistory(r.Context(), limit)
	if err != nil {
		renderStoreError(w, r, err, "get recent history")
		return
	}
	RenderJSON(w, r, http.StatusOK, records)
}

// getPollHandler returns the polling configuration
func (s *Server) getPollHandler(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.db.GetPollConfig(r.Context())
	if err != nil {
		renderStoreError(w, r, err, "get poll config")
		return
	}
	RenderJSON(w, r, http.StatusOK, cfg)
}

// updatePollHandler replaces the polling configuration. The running loop picks
// the new cadence up when it next arms its timer.
func (s *Server) updatePollHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		TimesPerDay int  `json:"times_per_day"`
		Enabled     bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.TimesPerDay < 1 {
		RenderError(w, r, fmt.Errorf("times_per_day must be at least 1"), http.StatusBadRequest)
		return
	}

	if err := s.db.UpdatePollConfig(ctx, req.TimesPerDay, req.Enabled); err != nil {
		renderStoreError(w, r, err, "update poll config")
		return
	}

	cfg, err := s.db.GetPollConfig(ctx)
	if err != nil {
		renderStoreError(w, r, err, "get poll config after update")
		return
	}
	RenderJSON(w, r, http.StatusOK, cfg)
}

// searchHandler looks shows up in the metadata catalog
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		RenderError(w, r, fmt.Errorf("search query is required"), http.StatusBadRequest)
		return
	}

	results, err := s.catalog.Search(r.Context(), query)
	if err != nil {
		log.Printf("[ERROR] catalog search failed: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, results)
}

// clearTorrentsHandler removes all torrents from the download client. The body
// is optional; {"delete_data": true} also removes downloaded files.
func (s *Server) clearTorrentsHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DeleteData bool `json:"delete_data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	removed, err := s.torrents.RemoveAll(r.Context(), req.DeleteData)
	if err != nil {
		log.Printf("[ERROR] failed to clear torrents: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]int{"removed": removed})
}
