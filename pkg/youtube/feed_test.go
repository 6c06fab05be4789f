package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015"
      xmlns:media="http://search.yahoo.com/mrss/"
      xmlns="http://www.w3.org/2005/Atom">
  <title>%s</title>
  %s
</feed>`

const entryTemplate = `<entry>
  <id>yt:video:%[1]s</id>
  <yt:videoId>%[1]s</yt:videoId>
  <title>%[2]s</title>
  <published>%[3]s</published>
  <media:group>
    <media:description>%[4]s</media:description>
    <media:community>
      <media:statistics views="%[5]d"/>
    </media:community>
  </media:group>
</entry>`

func feedXML(channelName string, entries ...string) string {
	body := ""
	for _, e := range entries {
		body += e
	}
	return fmt.Sprintf(feedTemplate, channelName, body)
}

func entryXML(id, title, published, description string, views int64) string {
	return fmt.Sprintf(entryTemplate, id, title, published, description, views)
}

func newTestLister(t *testing.T, handler http.Handler) *Lister {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	l := NewLister(5*time.Second, "tubescope-test/1.0", 15, 5)
	l.feedURL = srv.URL + "/feeds/videos.xml?channel_id=%s"
	return l
}

func TestLister_ListCandidates(t *testing.T) {
	l := newTestLister(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tubescope-test/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "UC-alpha", r.URL.Query().Get("channel_id"))

		w.Header().Set("Content-Type", "application/atom+xml")
		fmt.Fprint(w, feedXML("Alpha Tech",
			entryXML("vid-1", "Go Internals Deep Dive", "2026-08-20T10:00:00+00:00",
				"Plain description with &lt;b&gt;markup&lt;/b&gt; inside", 12345),
			entryXML("vid-2", "Weekly Recap", "2026-08-22T09:00:00+00:00", "short one", 99),
		))
	}))

	videos, err := l.ListCandidates(context.Background(), []string{"UC-alpha"})
	require.NoError(t, err)
	require.Len(t, videos, 2)

	// newest first
	assert.Equal(t, "vid-2", videos[0].ID)
	assert.Equal(t, "vid-1", videos[1].ID)

	v := videos[1]
	assert.Equal(t, "Go Internals Deep Dive", v.Title)
	assert.Equal(t, "UC-alpha", v.SourceID)
	assert.Equal(t, "Alpha Tech", v.SourceName)
	assert.Equal(t, "Plain description with markup inside", v.Description, "html stripped")
	assert.Equal(t, int64(12345), v.ViewCount)
	assert.Equal(t, time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC), v.PublishedAt.UTC())
	assert.Nil(t, v.Score)
	assert.Empty(t, v.TriageStatus)
}

func TestLister_MergesChannelsNewestFirst(t *testing.T) {
	l := newTestLister(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("channel_id") {
		case "UC-a":
			fmt.Fprint(w, feedXML("Channel A",
				entryXML("a-old", "A Old", "2026-08-01T00:00:00+00:00", "d", 1),
				entryXML("a-new", "A New", "2026-08-25T00:00:00+00:00", "d", 1),
			))
		case "UC-b":
			fmt.Fprint(w, feedXML("Channel B",
				entryXML("b-mid", "B Mid", "2026-08-10T00:00:00+00:00", "d", 1),
			))
		default:
			http.NotFound(w, r)
		}
	}))

	videos, err := l.ListCandidates(context.Background(), []string{"UC-a", "UC-b"})
	require.NoError(t, err)
	require.Len(t, videos, 3)
	assert.Equal(t, "a-new", videos[0].ID)
	assert.Equal(t, "b-mid", videos[1].ID)
	assert.Equal(t, "a-old", videos[2].ID)
}

func TestLister_FailedChannelSkipped(t *testing.T) {
	l := newTestLister(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("channel_id") == "UC-broken" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		fmt.Fprint(w, feedXML("Working",
			entryXML("ok-1", "Still Here", "2026-08-20T00:00:00+00:00", "d", 1),
		))
	}))

	videos, err := l.ListCandidates(context.Background(), []string{"UC-broken", "UC-working"})
	require.NoError(t, err, "a broken channel never fails the listing")
	require.Len(t, videos, 1)
	assert.Equal(t, "ok-1", videos[0].ID)
}

func TestLister_MaxPerFeed(t *testing.T) {
	entries := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		entries = append(entries, entryXML(fmt.Sprintf("vid-%d", i), fmt.Sprintf("Video %d", i),
			"2026-08-20T00:00:00+00:00", "d", 1))
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, feedXML("Busy Channel", entries...))
	}))
	defer srv.Close()

	l := NewLister(5*time.Second, "tubescope-test/1.0", 3, 5)
	l.feedURL = srv.URL + "/feeds/videos.xml?channel_id=%s"

	videos, err := l.ListCandidates(context.Background(), []string{"UC-busy"})
	require.NoError(t, err)
	assert.Len(t, videos, 3)
}

func TestLister_GUIDFallback(t *testing.T) {
	// entry without the yt:videoId extension, only the Atom id
	entry := `<entry>
  <id>yt:video:guid-only</id>
  <title>No Extension</title>
  <published>2026-08-20T00:00:00+00:00</published>
</entry>`
	l := newTestLister(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, feedXML("Channel", entry))
	}))

	videos, err := l.ListCandidates(context.Background(), []string{"UC-x"})
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "guid-only", videos[0].ID)
}

func TestLister_SkipsEntriesWithoutID(t *testing.T) {
	entry := `<entry>
  <id>unrelated-guid-format</id>
  <title>Mystery Entry</title>
</entry>`
	l := newTestLister(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, feedXML("Channel",
			entry,
			entryXML("real", "Real Video", "2026-08-20T00:00:00+00:00", "d", 1),
		))
	}))

	videos, err := l.ListCandidates(context.Background(), []string{"UC-x"})
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "real", videos[0].ID)
}

func TestLister_MalformedFeedSkipped(t *testing.T) {
	l := newTestLister(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "this is not xml")
	}))

	videos, err := l.ListCandidates(context.Background(), []string{"UC-x"})
	require.NoError(t, err)
	assert.Empty(t, videos)
}
