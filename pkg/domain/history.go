package domain

import (
	"errors"
	"time"
)

// ErrAlreadyDownloaded is returned by the download ledger when a fingerprint
// was recorded before. Callers treat it as a benign duplicate, not a failure.
var ErrAlreadyDownloaded = errors.New("release already downloaded")

// ErrNotFound is returned by repositories when a requested row does not exist
var ErrNotFound = errors.New("not found")

// DownloadRecord is one append-only ledger entry. Hash is unique across the
// ledger; records are removed only by cascade when their show is deleted.
type DownloadRecord struct {
	ID           int64     `json:"id"`
	ShowID       int64     `json:"show_id"`
	Episode      int       `json:"episode"`
	Hash         string    `json:"hash"`
	TorrentURL   string    `json:"torrent_url,omitempty"`
	DownloadedAt time.Time `json:"downloaded_at"`
}
