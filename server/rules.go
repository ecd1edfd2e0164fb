package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/episodarr/episodarr/pkg/domain"
)

// ruleRequest is the JSON payload for creating or updating a filter rule.
// Omitted is_global/enabled default to true, omitted action to prefer.
type ruleRequest struct {
	Name     string              `json:"name"`
	Type     domain.FilterType   `json:"type"`
	Pattern  string              `json:"pattern"`
	Action   domain.FilterAction `json:"action"`
	Priority int                 `json:"priority"`
	IsGlobal *bool               `json:"is_global"`
	Enabled  *bool               `json:"enabled"`
}

// toRule converts the request to a domain rule, applying defaults
func (req *ruleRequest) toRule() (*domain.FilterRule, error) {
	rule := &domain.FilterRule{
		Name:     req.Name,
		Type:     req.Type,
		Pattern:  req.Pattern,
		Action:   req.Action,
		Priority: req.Priority,
		IsGlobal: true,
		Enabled:  true,
	}

	if rule.Action == "" {
		rule.Action = domain.ActionPrefer
	}
	if req.IsGlobal != nil {
		rule.IsGlobal = *req.IsGlobal
	}
	if req.Enabled != nil {
		rule.Enabled = *req.Enabled
	}

	if err := rule.Validate(); err != nil {
		return nil, err
	}
	return rule, nil
}

// listRulesHandler returns all filter rules in evaluation order
func (s *Server) listRulesHandler(w http.ResponseWriter, r *http.Request) {
	rules, err := s.db.GetAllRules(r.Context())
	if err != nil {
		renderStoreError(w, r, err, "get rules")
		return
	}
	RenderJSON(w, r, http.StatusOK, rules)
}

// createRuleHandler adds a new filter rule
func (s *Server) createRuleHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ruleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	rule, err := req.toRule()
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.db.CreateRule(ctx, rule); err != nil {
		renderStoreError(w, r, err, "create rule")
		return
	}

	// reload for the database-assigned timestamp
	created, err := s.db.GetRule(ctx, rule.ID)
	if err != nil {
		log.Printf("[ERROR] failed to get rule after create: %v", err)
		RenderJSON(w, r, http.StatusCreated, rule)
		return
	}
	RenderJSON(w, r, http.StatusCreated, created)
}

// updateRuleHandler replaces all editable fields of a rule
func (s *Server) updateRuleHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid rule ID"), http.StatusBadRequest)
		return
	}

	var req ruleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	rule, err := req.toRule()
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	rule.ID = id

	if err := s.db.UpdateRule(ctx, rule); err != nil {
		renderStoreError(w, r, err, "update rule")
		return
	}

	updated, err := s.db.GetRule(ctx, id)
	if err != nil {
		renderStoreError(w, r, err, "get rule after update")
		return
	}
	RenderJSON(w, r, http.StatusOK, updated)
}

// deleteRuleHandler removes a rule and any show toggles referencing it
func (s *Server) deleteRuleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid rule ID"), http.StatusBadRequest)
		return
	}

	if err := s.db.DeleteRule(r.Context(), id); err != nil {
		renderStoreError(w, r, err, "delete rule")
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// toggleRuleHandler flips the enabled flag of a rule
func (s *Server) toggleRuleHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid rule ID"), http.StatusBadRequest)
		return
	}

	if err := s.db.ToggleRule(ctx, id); err != nil {
		renderStoreError(w, r, err, "toggle rule")
		return
	}

	rule, err := s.db.GetRule(ctx, id)
	if err != nil {
		renderStoreError(w, r, err, "get rule after toggle")
		return
	}
	RenderJSON(w, r, http.StatusOK, rule)
}
