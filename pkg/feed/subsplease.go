package feed

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/episodarr/episodarr/pkg/domain"
)

// fetchSubsPlease pulls the global SubsPlease release feed for the show's
// quality tier and keeps only entries mentioning the show's search title.
// The feed carries no per-show query, so filtering happens client-side.
func (f *Fetcher) fetchSubsPlease(ctx context.Context, show *domain.Show) ([]domain.ReleaseItem, error) {
	// the provider expects the quality without the trailing "p"
	feedURL := fmt.Sprintf("%s/rss/?t&r=%s", f.subspleaseURL, strings.TrimSuffix(show.Quality, "p"))
	feed, err := f.fetchDocument(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("subsplease feed: %w", err)
	}

	title := strings.ToLower(show.SearchTitle())
	items := make([]domain.ReleaseItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if !strings.Contains(strings.ToLower(entry.Title), title) {
			continue
		}
		items = append(items, subspleaseItem(entry))
	}
	return items, nil
}

// subspleaseItem converts a firehose entry into a release item. Entry links
// point at nyaa view pages; the torrent URL is derived by substituting the
// trailing page id into the download path. The feed publishes no info hash,
// so the item's fingerprint falls back to the synthesized source:URL form.
func subspleaseItem(entry *gofeed.Item) domain.ReleaseItem {
	item := domain.ReleaseItem{
		Title:       entry.Title,
		Source:      domain.SourceSubsPlease,
		DownloadURL: entry.Link,
		Link:        entry.Link,
	}
	if entry.PublishedParsed != nil {
		item.PublishedAt = *entry.PublishedParsed
	}
	if strings.Contains(entry.Link, "nyaa.si/view/") {
		id := entry.Link[strings.LastIndex(entry.Link, "/")+1:]
		item.DownloadURL = fmt.Sprintf("https://nyaa.si/download/%s.torrent", id)
	}
	return item
}
