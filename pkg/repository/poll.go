package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/episodarr/episodarr/pkg/domain"
)

// PollRepository handles the singleton polling configuration, always row id=1
type PollRepository struct {
	db *sqlx.DB
}

// pollSQL represents the polling configuration for SQL operations
type pollSQL struct {
	ID           int64      `db:"id"`
	TimesPerDay  int        `db:"poll_times_per_day"`
	LastPollTime *time.Time `db:"last_poll_time"`
	Enabled      bool       `db:"enabled"`
}

// NewPollRepository creates a new poll repository
func NewPollRepository(database *sqlx.DB) *PollRepository {
	return &PollRepository{db: database}
}

// GetConfig retrieves the polling configuration
func (r *PollRepository) GetConfig(ctx context.Context) (*domain.PollConfig, error) {
	var sqlConfig pollSQL
	err := r.db.GetContext(ctx, &sqlConfig, "SELECT * FROM rss_config WHERE id = 1")
	if err != nil {
		return nil, fmt.Errorf("get poll config: %w", err)
	}
	return &domain.PollConfig{
		TimesPerDay:  sqlConfig.TimesPerDay,
		LastPollTime: sqlConfig.LastPollTime,
		Enabled:      sqlConfig.Enabled,
	}, nil
}

// UpdateConfig sets the polling cadence and enabled flag
func (r *PollRepository) UpdateConfig(ctx context.Context, timesPerDay int, enabled bool) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE rss_config SET poll_times_per_day = ?, enabled = ? WHERE id = 1", timesPerDay, enabled)
	if err != nil {
		return fmt.Errorf("update poll config: %w", err)
	}
	return nil
}

// TouchLastPoll records when the last poll cycle ran. Called from the scheduler
// cycle, so lock errors are retried.
func (r *PollRepository) TouchLastPoll(ctx context.Context) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx,
			"UPDATE rss_config SET last_poll_time = datetime('now') WHERE id = 1")
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("touch last poll: %w", err)}
		}
		return nil
	})
}
