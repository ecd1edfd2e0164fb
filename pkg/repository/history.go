package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/episodarr/episodarr/pkg/domain"
)

// HistoryRepository handles the append-only download ledger
type HistoryRepository struct {
	db *sqlx.DB
}

// downloadSQL represents a ledger entry for SQL operations
type downloadSQL struct {
	ID           int64     `db:"id"`
	ShowID       int64     `db:"show_id"`
	Episode      int       `db:"episode"`
	InfoHash     string    `db:"info_hash"`
	TorrentURL   string    `db:"torrent_url"`
	DownloadedAt time.Time `db:"downloaded_at"`
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(database *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: database}
}

// IsDownloaded reports whether a release fingerprint is already in the ledger
func (r *HistoryRepository) IsDownloaded(ctx context.Context, fingerprint string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM download_history WHERE info_hash = ?)", fingerprint)
	if err != nil {
		return false, fmt.Errorf("check downloaded: %w", err)
	}
	return exists, nil
}

// RecordDownload appends a ledger entry. A fingerprint recorded before returns
// domain.ErrAlreadyDownloaded and leaves the ledger unchanged; the conflict is
// resolved inside the database so concurrent recorders can't both win. Called
// from the scheduler cycle, so lock errors are retried.
func (r *HistoryRepository) RecordDownload(ctx context.Context, record *domain.DownloadRecord) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	var affected int64
	err := retrier.Do(ctx, func() error {
		query := `
			INSERT INTO download_history (show_id, episode, info_hash, torrent_url)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(info_hash) DO NOTHING
		`
		result, err := r.db.ExecContext(ctx, query,
			record.ShowID, record.Episode, record.Hash, record.TorrentURL)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("record download: %w", err)}
		}

		affected, err = result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", err)}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrAlreadyDownloaded
	}
	return nil
}

// GetShowHistory retrieves ledger entries for one show, newest first
func (r *HistoryRepository) GetShowHistory(ctx context.Context, showID int64) ([]domain.DownloadRecord, error) {
	var sqlRecords []downloadSQL
	err := r.db.SelectContext(ctx, &sqlRecords,
		"SELECT * FROM download_history WHERE show_id = ? ORDER BY downloaded_at DESC, id DESC", showID)
	if err != nil {
		return nil, fmt.Errorf("get show history: %w", err)
	}
	return r.toDomainRecords(sqlRecords), nil
}

// GetRecentHistory retrieves the newest ledger entries across all shows
func (r *HistoryRepository) GetRecentHistory(ctx context.Context, limit int) ([]domain.DownloadRecord, error) {
	var sqlRecords []downloadSQL
	err := r.db.SelectContext(ctx, &sqlRecords,
		"SELECT * FROM download_history ORDER BY downloaded_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("get recent history: %w", err)
	}
	return r.toDomainRecords(sqlRecords), nil
}

// toDomainRecords converts downloadSQL rows to domain.DownloadRecord
func (r *HistoryRepository) toDomainRecords(sqlRecords []downloadSQL) []domain.DownloadRecord {
	records := make([]domain.DownloadRecord, len(sqlRecords))
	for i, sqlRecord := range sqlRecords {
		records[i] = domain.DownloadRecord{
			ID:           sqlRecord.ID,
			ShowID:       sqlRecord.ShowID,
			Episode:      sqlRecord.Episode,
			Hash:         sqlRecord.InfoHash,
			TorrentURL:   sqlRecord.TorrentURL,
			DownloadedAt: sqlRecord.DownloadedAt,
		}
	}
	return records
}
