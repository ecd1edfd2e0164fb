// Package transmission dispatches accepted releases to a Transmission daemon
// over its RPC interface and carries the maintenance operations the API
// exposes: listing known info hashes and bulk torrent removal.
package transmission

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/go-pkgz/lgr"
	"github.com/odwrtw/transmission"

	"github.com/episodarr/episodarr/pkg/domain"
)

// Config defines the connection and dispatch parameters.
type Config struct {
	URL         string // full RPC endpoint, e.g. http://localhost:9091/transmission/rpc
	Username    string
	Password    string
	DownloadDir string // base directory on the transmission host
	AddPaused   bool   // add torrents in paused state
}

// Client wraps the transmission RPC client. The connection is established
// lazily on first use, so a stopped daemon delays nothing but the dispatch
// that actually needs it.
type Client struct {
	conf Config

	mu sync.Mutex
	tc *transmission.TransmissionClient
}

// New creates a client. No connection is made until the first call.
func New(conf Config) *Client {
	return &Client{conf: conf}
}

// client returns the cached RPC client, dialing on first use. The RPC
// library verifies the session during construction, so a returned client
// has already talked to the daemon.
func (c *Client) client() (*transmission.TransmissionClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tc != nil {
		return c.tc, nil
	}

	tc, err := transmission.New(transmission.Config{
		Address:  c.conf.URL,
		User:     c.conf.Username,
		Password: c.conf.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to transmission at %s: %w", c.conf.URL, err)
	}

	c.tc = tc
	return tc, nil
}

// Dispatch derives the destination directory for the show and hands the
// locator (magnet link or torrent url) to transmission. Satisfies the
// tracker's dispatcher contract.
func (c *Client) Dispatch(ctx context.Context, show *domain.Show, locator string) error {
	base := c.conf.DownloadDir
	if show.DownloadPath != "" {
		base = show.DownloadPath
	}
	return c.Add(ctx, locator, destDir(base, show.Title, show.Season))
}

// Add sends a torrent-add RPC. The underlying library predates context
// support; cancellation is only honored between calls.
func (c *Client) Add(ctx context.Context, locator, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tc, err := c.client()
	if err != nil {
		return err
	}

	if _, err := tc.AddTorrent(transmission.AddTorrentArg{
		Filename:    locator,
		DownloadDir: dir,
		Paused:      c.conf.AddPaused,
	}); err != nil {
		return fmt.Errorf("add torrent: %w", err)
	}

	lgr.Printf("[DEBUG] torrent added to %s", dir)
	return nil
}

// DownloadDirFor derives the destination directory under the configured
// base, one folder per show with a season subfolder when the season is
// known. Paths are joined with forward slashes regardless of the local OS,
// they name directories on the transmission host.
func (c *Client) DownloadDirFor(show string, season int) string {
	return destDir(c.conf.DownloadDir, show, season)
}

func destDir(base, show string, season int) string {
	if season <= 0 {
		return path.Join(base, show)
	}
	return path.Join(base, show, fmt.Sprintf("Season %d", season))
}

// ExistingHashes returns the lowercased info hashes of every torrent the
// daemon currently knows about.
func (c *Client) ExistingHashes(ctx context.Context) (map[string]struct{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tc, err := c.client()
	if err != nil {
		return nil, err
	}

	torrents, err := tc.GetTorrents()
	if err != nil {
		return nil, fmt.Errorf("list torrents: %w", err)
	}

	hashes := make(map[string]struct{}, len(torrents))
	for _, t := range torrents {
		hashes[strings.ToLower(t.HashString)] = struct{}{}
	}
	return hashes, nil
}

// RemoveAll removes every torrent from the daemon, optionally deleting the
// downloaded data, and reports how many were removed.
func (c *Client) RemoveAll(ctx context.Context, deleteData bool) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	tc, err := c.client()
	if err != nil {
		return 0, err
	}

	torrents, err := tc.GetTorrents()
	if err != nil {
		return 0, fmt.Errorf("list torrents: %w", err)
	}
	if len(torrents) == 0 {
		return 0, nil
	}

	if err := tc.RemoveTorrents(torrents, deleteData); err != nil {
		return 0, fmt.Errorf("remove %d torrent(s): %w", len(torrents), err)
	}

	lgr.Printf("[INFO] removed %d torrent(s) from transmission", len(torrents))
	return len(torrents), nil
}
