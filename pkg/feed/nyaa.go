package feed

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/episodarr/episodarr/pkg/domain"
	"github.com/episodarr/episodarr/pkg/release"
)

// fetchNyaa searches the nyaa RSS feed for a show. The query combines the
// uploader tag with the normalized search title so "2nd Season" style names
// still match the provider's terse "S2" naming.
func (f *Fetcher) fetchNyaa(ctx context.Context, show *domain.Show) ([]domain.ReleaseItem, error) {
	feed, err := f.fetchDocument(ctx, f.nyaaSearchURL(show.Source, show.SearchTitle()))
	if err != nil {
		return nil, fmt.Errorf("nyaa feed for %q: %w", show.SearchTitle(), err)
	}

	items := make([]domain.ReleaseItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		items = append(items, nyaaItem(entry))
	}
	return items, nil
}

// nyaaSearchURL builds the search feed URL. Category 1_2 is anime,
// english-translated; f=0 includes untrusted uploaders.
func (f *Fetcher) nyaaSearchURL(source, title string) string {
	query := url.QueryEscape(source + " " + release.NormalizeSearchTitle(title))
	return fmt.Sprintf("%s/?page=rss&q=%s&c=1_2&f=0", f.nyaaURL, query)
}

// nyaaItem converts a feed entry into a release item. The entry link is the
// direct torrent download, the GUID is the view page. Provider stats live in
// nyaa-namespaced extension elements; absent ones default to zero values.
func nyaaItem(entry *gofeed.Item) domain.ReleaseItem {
	item := domain.ReleaseItem{
		Title:       entry.Title,
		Source:      domain.SourceNyaa,
		DownloadURL: entry.Link,
		Link:        entry.GUID,
		InfoHash:    nyaaExt(entry, "infoHash"),
		Size:        nyaaExt(entry, "size"),
	}
	if entry.PublishedParsed != nil {
		item.PublishedAt = *entry.PublishedParsed
	}
	if v, err := strconv.Atoi(nyaaExt(entry, "seeders")); err == nil {
		item.Seeders = v
	}
	if v, err := strconv.Atoi(nyaaExt(entry, "leechers")); err == nil {
		item.Leechers = v
	}
	if item.InfoHash != "" {
		item.MagnetURL = MagnetURL(item.InfoHash, item.Title)
	}
	return item
}

// nyaaExt reads a single value from the nyaa extension namespace
func nyaaExt(entry *gofeed.Item, name string) string {
	values, ok := entry.Extensions["nyaa"][name]
	if !ok || len(values) == 0 {
		return ""
	}
	return values[0].Value
}

// MagnetURL builds a magnet link from an info hash and display name
func MagnetURL(infoHash, title string) string {
	name := strings.ReplaceAll(url.QueryEscape(title), "+", "%20")
	return fmt.Sprintf("magnet:?xt=urn:btih:%s&dn=%s", infoHash, name)
}
