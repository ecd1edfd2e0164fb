// Package service wires repositories to their consumers. Each service exposes
// exactly the surface one consumer needs, renaming repository methods where
// the consumer interface differs.
package service

import (
	"context"

	"github.com/episodarr/episodarr/pkg/domain"
	"github.com/episodarr/episodarr/pkg/repository"
)

// TrackerService provides unified access to repositories for the poll tracker
type TrackerService struct {
	showRepo    *repository.ShowRepository
	filterRepo  *repository.FilterRepository
	historyRepo *repository.HistoryRepository
	pollRepo    *repository.PollRepository
}

// NewTrackerService creates a new tracker service
func NewTrackerService(showRepo *repository.ShowRepository, filterRepo *repository.FilterRepository, historyRepo *repository.HistoryRepository, pollRepo *repository.PollRepository) *TrackerService {
	return &TrackerService{
		showRepo:    showRepo,
		filterRepo:  filterRepo,
		historyRepo: historyRepo,
		pollRepo:    pollRepo,
	}
}

// Show methods

func (s *TrackerService) GetTrackedShows(ctx context.Context) ([]*domain.Show, error) {
	return s.showRepo.GetTrackedShows(ctx)
}

func (s *TrackerService) UpdateWatermark(ctx context.Context, showID int64, episode int, hash string) error {
	return s.showRepo.UpdateWatermark(ctx, showID, episode, hash)
}

// Filter rule methods

func (s *TrackerService) GetGlobalRules(ctx context.Context) ([]domain.FilterRule, error) {
	return s.filterRepo.GetGlobalRules(ctx)
}

func (s *TrackerService) GetShowOverrides(ctx context.Context, showID int64) ([]domain.ShowOverride, error) {
	return s.filterRepo.GetShowOverrides(ctx, showID)
}

// Download ledger methods

func (s *TrackerService) IsDownloaded(ctx context.Context, fingerprint string) (bool, error) {
	return s.historyRepo.IsDownloaded(ctx, fingerprint)
}

func (s *TrackerService) RecordDownload(ctx context.Context, record *domain.DownloadRecord) error {
	return s.historyRepo.RecordDownload(ctx, record)
}

// Poll configuration methods

func (s *TrackerService) GetPollConfig(ctx context.Context) (*domain.PollConfig, error) {
	return s.pollRepo.GetConfig(ctx)
}

func (s *TrackerService) TouchLastPoll(ctx context.Context) error {
	return s.pollRepo.TouchLastPoll(ctx)
}
