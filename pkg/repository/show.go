package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/episodarr/episodarr/pkg/domain"
)

// ShowRepository handles show-related database operations
type ShowRepository struct {
	db *sqlx.DB
}

// showSQL represents a show for SQL operations
type showSQL struct {
	ID            int64      `db:"id"`
	Title         string     `db:"title"`
	Alternate     string     `db:"alternate"`
	Season        int        `db:"season"`
	Source        string     `db:"source"`
	Quality       string     `db:"quality"`
	DownloadPath  string     `db:"download_path"`
	LastEpisode   int        `db:"last_downloaded_episode"`
	LastHash      string     `db:"last_downloaded_hash"`
	IsTracked     bool       `db:"is_tracked"`
	LatestEpisode int        `db:"latest_episode"`
	NextAirDate   *time.Time `db:"next_air_date"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// NewShowRepository creates a new show repository
func NewShowRepository(database *sqlx.DB) *ShowRepository {
	return &ShowRepository{db: database}
}

// CreateShow inserts a new show. A non-zero ID is honored so catalog ids can
// serve as primary keys; with a zero ID the database assigns one.
func (r *ShowRepository) CreateShow(ctx context.Context, show *domain.Show) error {
	sqlShow := &showSQL{
		ID:            show.ID,
		Title:         show.Title,
		Alternate:     show.AlternateTitle,
		Season:        show.Season,
		Source:        show.Source,
		Quality:       show.Quality,
		DownloadPath:  show.DownloadPath,
		IsTracked:     show.Tracked,
		LatestEpisode: show.LatestEpisode,
		NextAirDate:   show.NextAirDate,
	}

	if sqlShow.ID != 0 {
		query := `
			INSERT INTO shows (id, title, alternate, season, source, quality, download_path, is_tracked, latest_episode, next_air_date)
			VALUES (:id, :title, :alternate, :season, :source, :quality, :download_path, :is_tracked, :latest_episode, :next_air_date)
		`
		if _, err := r.db.NamedExecContext(ctx, query, sqlShow); err != nil {
			return fmt.Errorf("create show: %w", err)
		}
		return nil
	}

	query := `
		INSERT INTO shows (title, alternate, season, source, quality, download_path, is_tracked, latest_episode, next_air_date)
		VALUES (:title, :alternate, :season, :source, :quality, :download_path, :is_tracked, :latest_episode, :next_air_date)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlShow)
	if err != nil {
		return fmt.Errorf("create show: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	show.ID = id
	return nil
}

// GetShow retrieves a show by ID
func (r *ShowRepository) GetShow(ctx context.Context, id int64) (*domain.Show, error) {
	var sqlShow showSQL
	err := r.db.GetContext(ctx, &sqlShow, "SELECT * FROM shows WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("show %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get show: %w", err)
	}
	return r.toDomainShow(&sqlShow), nil
}

// GetShows retrieves all shows ordered by title
func (r *ShowRepository) GetShows(ctx context.Context) ([]*domain.Show, error) {
	var sqlShows []showSQL
	err := r.db.SelectContext(ctx, &sqlShows, "SELECT * FROM shows ORDER BY title")
	if err != nil {
		return nil, fmt.Errorf("get shows: %w", err)
	}

	shows := make([]*domain.Show, len(sqlShows))
	for i, s := range sqlShows {
		shows[i] = r.toDomainShow(&s)
	}
	return shows, nil
}

// GetTrackedShows retrieves shows the scheduler should poll
func (r *ShowRepository) GetTrackedShows(ctx context.Context) ([]*domain.Show, error) {
	var sqlShows []showSQL
	err := r.db.SelectContext(ctx, &sqlShows, "SELECT * FROM shows WHERE is_tracked = 1 ORDER BY title")
	if err != nil {
		return nil, fmt.Errorf("get tracked shows: %w", err)
	}

	shows := make([]*domain.Show, len(sqlShows))
	for i, s := range sqlShows {
		shows[i] = r.toDomainShow(&s)
	}
	return shows, nil
}

// UpdateShow updates all editable fields of a show. The watermark pair
// (last_downloaded_episode, last_downloaded_hash) belongs to the scheduler and
// is only changed through UpdateWatermark.
func (r *ShowRepository) UpdateShow(ctx context.Context, show *domain.Show) error {
	query := `
		UPDATE shows
		SET title = ?, alternate = ?, season = ?, source = ?, quality = ?,
		    download_path = ?, is_tracked = ?, latest_episode = ?, next_air_date = ?,
		    updated_at = datetime('now')
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		show.Title, show.AlternateTitle, show.Season, show.Source, show.Quality,
		show.DownloadPath, show.Tracked, show.LatestEpisode, show.NextAirDate, show.ID)
	if err != nil {
		return fmt.Errorf("update show: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("show %d: %w", show.ID, domain.ErrNotFound)
	}
	return nil
}

// UpdateWatermark advances the download watermark after a successful dispatch.
// Called from the scheduler cycle, where write contention with API traffic is
// expected, so lock errors are retried.
func (r *ShowRepository) UpdateWatermark(ctx context.Context, showID int64, episode int, hash string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE shows
			SET last_downloaded_episode = ?,
			    last_downloaded_hash = ?,
			    updated_at = datetime('now')
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, episode, hash, showID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update watermark: %w", err)}
		}
		return nil
	})
}

// DeleteShow removes a show; its history and overrides go with it by cascade
func (r *ShowRepository) DeleteShow(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM shows WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete show: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("show %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// toDomainShow converts showSQL to domain.Show
func (r *ShowRepository) toDomainShow(sqlShow *showSQL) *domain.Show {
	return &domain.Show{
		ID:             sqlShow.ID,
		Title:          sqlShow.Title,
		AlternateTitle: sqlShow.Alternate,
		Season:         sqlShow.Season,
		Source:         sqlShow.Source,
		Quality:        sqlShow.Quality,
		DownloadPath:   sqlShow.DownloadPath,
		LastEpisode:    sqlShow.LastEpisode,
		LastHash:       sqlShow.LastHash,
		Tracked:        sqlShow.IsTracked,
		LatestEpisode:  sqlShow.LatestEpisode,
		NextAirDate:    sqlShow.NextAirDate,
		CreatedAt:      sqlShow.CreatedAt,
		UpdatedAt:      sqlShow.UpdatedAt,
	}
}
