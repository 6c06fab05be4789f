// Package youtube provides the external collaborators the pipeline
// ranks candidates from: channel feed listing, Data API detail fetch
// and timedtext transcript fetch. All of it is best-effort; callers
// treat failures as missing data.
package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/tubescope/tubescope/pkg/domain"
)

// defaultFeedURL is the Atom feed YouTube publishes per channel
const defaultFeedURL = "https://www.youtube.com/feeds/videos.xml?channel_id=%s"

// Lister collects candidate videos from channel Atom feeds
type Lister struct {
	client      *http.Client
	policy      *bluemonday.Policy
	userAgent   string
	feedURL     string
	maxPerFeed  int
	maxParallel int
}

// NewLister creates a channel feed lister
func NewLister(timeout time.Duration, userAgent string, maxPerFeed, maxParallel int) *Lister {
	return &Lister{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		policy:      bluemonday.StrictPolicy(),
		userAgent:   userAgent,
		feedURL:     defaultFeedURL,
		maxPerFeed:  maxPerFeed,
		maxParallel: maxParallel,
	}
}

// ListCandidates fetches the channels' feeds concurrently and returns
// the merged candidate pool, newest first. A channel that fails to
// fetch or parse is logged and skipped; it never fails the listing.
func (l *Lister) ListCandidates(ctx context.Context, channelIDs []string) ([]domain.Video, error) {
	var mu sync.Mutex
	var videos []domain.Video

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.maxParallel)
	for _, channelID := range channelIDs {
		g.Go(func() error {
			items, err := l.listChannel(gctx, channelID)
			if err != nil {
				lgr.Printf("[WARN] failed to list channel %s: %v", channelID, err)
				return nil
			}
			mu.Lock()
			videos = append(videos, items...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].PublishedAt.After(videos[j].PublishedAt)
	})
	return videos, nil
}

// listChannel fetches and parses a single channel feed
func (l *Lister) listChannel(ctx context.Context, channelID string) ([]domain.Video, error) {
	body, err := l.fetch(ctx, fmt.Sprintf(l.feedURL, channelID))
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parser := gofeed.NewParser()
	feed, err := parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	videos := make([]domain.Video, 0, len(feed.Items))
	for _, item := range feed.Items {
		if l.maxPerFeed > 0 && len(videos) >= l.maxPerFeed {
			break
		}

		video := domain.Video{
			ID:          videoID(item),
			Title:       item.Title,
			SourceID:    channelID,
			SourceName:  feed.Title,
			Description: l.policy.Sanitize(mediaDescription(item)),
			ViewCount:   mediaViews(item),
		}
		if video.ID == "" {
			lgr.Printf("[DEBUG] skipping feed entry without video id: %s", item.Title)
			continue
		}
		if item.PublishedParsed != nil {
			video.PublishedAt = *item.PublishedParsed
		}

		videos = append(videos, video)
	}
	return videos, nil
}

// fetch retrieves content from a URL
func (l *Lister) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// videoID extracts the yt:videoId extension, falling back to the
// "yt:video:<id>" GUID format
func videoID(item *gofeed.Item) string {
	if values, ok := item.Extensions["yt"]["videoId"]; ok && len(values) > 0 {
		return values[0].Value
	}
	if id, ok := strings.CutPrefix(item.GUID, "yt:video:"); ok {
		return id
	}
	return ""
}

// mediaDescription digs the description out of the media:group extension
func mediaDescription(item *gofeed.Item) string {
	for _, group := range item.Extensions["media"]["group"] {
		for _, desc := range group.Children["description"] {
			if desc.Value != "" {
				return desc.Value
			}
		}
	}
	return item.Description
}

// mediaViews digs the view count out of media:group/media:community
func mediaViews(item *gofeed.Item) int64 {
	for _, group := range item.Extensions["media"]["group"] {
		for _, community := range group.Children["community"] {
			for _, stats := range community.Children["statistics"] {
				if views, err := strconv.ParseInt(stats.Attrs["views"], 10, 64); err == nil {
					return views
				}
			}
		}
	}
	return 0
}
