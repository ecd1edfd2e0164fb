package service

import (
	"context"

	"github.com/episodarr/episodarr/pkg/domain"
	"github.com/episodarr/episodarr/pkg/repository"
)

// WebService provides unified access to repositories for the HTTP server
type WebService struct {
	showRepo    *repository.ShowRepository
	filterRepo  *repository.FilterRepository
	historyRepo *repository.HistoryRepository
	pollRepo    *repository.PollRepository
}

// NewWebService creates a new web service
func NewWebService(showRepo *repository.ShowRepository, filterRepo *repository.FilterRepository, historyRepo *repository.HistoryRepository, pollRepo *repository.PollRepository) *WebService {
	return &WebService{
		showRepo:    showRepo,
		filterRepo:  filterRepo,
		historyRepo: historyRepo,
		pollRepo:    pollRepo,
	}
}

// Show management methods

func (s *WebService) GetShows(ctx context.Context) ([]*domain.Show, error) {
	return s.showRepo.GetShows(ctx)
}

func (s *WebService) GetShow(ctx context.Context, id int64) (*domain.Show, error) {
	return s.showRepo.GetShow(ctx, id)
}

func (s *WebService) CreateShow(ctx context.Context, show *domain.Show) error {
	return s.showRepo.CreateShow(ctx, show)
}

func (s *WebService) UpdateShow(ctx context.Context, show *domain.Show) error {
	return s.showRepo.UpdateShow(ctx, show)
}

func (s *WebService) DeleteShow(ctx context.Context, id int64) error {
	return s.showRepo.DeleteShow(ctx, id)
}

// Filter rule methods

func (s *WebService) GetAllRules(ctx context.Context) ([]domain.FilterRule, error) {
	return s.filterRepo.GetAllRules(ctx)
}

func (s *WebService) GetRule(ctx context.Context, id int64) (*domain.FilterRule, error) {
	return s.filterRepo.GetRule(ctx, id)
}

func (s *WebService) CreateRule(ctx context.Context, rule *domain.FilterRule) error {
	return s.filterRepo.CreateRule(ctx, rule)
}

func (s *WebService) UpdateRule(ctx context.Context, rule *domain.FilterRule) error {
	return s.filterRepo.UpdateRule(ctx, rule)
}

func (s *WebService) DeleteRule(ctx context.Context, id int64) error {
	return s.filterRepo.DeleteRule(ctx, id)
}

func (s *WebService) ToggleRule(ctx context.Context, id int64) error {
	return s.filterRepo.ToggleRule(ctx, id)
}

// Override methods

func (s *WebService) GetShowOverrides(ctx context.Context, showID int64) ([]domain.ShowOverride, error) {
	return s.filterRepo.GetShowOverrides(ctx, showID)
}

func (s *WebService) CreateOverride(ctx context.Context, override *domain.ShowOverride) error {
	return s.filterRepo.CreateOverride(ctx, override)
}

func (s *WebService) DeleteOverride(ctx context.Context, showID, overrideID int64) error {
	return s.filterRepo.DeleteOverride(ctx, showID, overrideID)
}

// History methods

func (s *WebService) GetShowHistory(ctx context.Context, showID int64) ([]domain.DownloadRecord, error) {
	return s.historyRepo.GetShowHistory(ctx, showID)
}

func (s *WebService) GetRecentHistory(ctx context.Context, limit int) ([]domain.DownloadRecord, error) {
	return s.historyRepo.GetRecentHistory(ctx, limit)
}

// Poll configuration methods

func (s *WebService) GetPollConfig(ctx context.Context) (*domain.PollConfig, error) {
	return s.pollRepo.GetConfig(ctx)
}

func (s *WebService) UpdatePollConfig(ctx context.Context, timesPerDay int, enabled bool) error {
	return s.pollRepo.UpdateConfig(ctx, timesPerDay, enabled)
}
