package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tubescope/tubescope/pkg/domain"
)

// defaultAPIURL is the YouTube Data API v3 base
const defaultAPIURL = "https://www.googleapis.com/youtube/v3"

// Client fetches video detail fields from the Data API
type Client struct {
	client    *http.Client
	apiKey    string
	userAgent string
	apiURL    string
}

// NewClient creates a Data API client
func NewClient(apiKey string, timeout time.Duration, userAgent string) *Client {
	return &Client{
		client:    &http.Client{Timeout: timeout},
		apiKey:    apiKey,
		userAgent: userAgent,
		apiURL:    defaultAPIURL,
	}
}

// FetchDetails fetches description and tags for a video. An unknown
// video yields empty details, not an error.
func (c *Client) FetchDetails(ctx context.Context, videoID string) (*domain.VideoDetails, error) {
	query := url.Values{}
	query.Set("part", "snippet")
	query.Set("id", videoID)
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/videos?"+query.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch video details: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload struct {
		Items []struct {
			Snippet struct {
				Description string   `json:"description"`
				Tags        []string `json:"tags"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode video details: %w", err)
	}

	if len(payload.Items) == 0 {
		return &domain.VideoDetails{}, nil
	}
	return &domain.VideoDetails{
		Description: payload.Items[0].Snippet.Description,
		Tags:        payload.Items[0].Snippet.Tags,
	}, nil
}

// ResolveChannel turns a free-form query (channel URL, handle or plain
// name) into a channel via Data API search. The query matches videos as
// well, in which case the owning channel wins. A zero-value channel
// means nothing matched; that is not an error.
func (c *Client) ResolveChannel(ctx context.Context, query string) (domain.Channel, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("type", "video,channel")
	q.Set("maxResults", "1")
	q.Set("q", query)
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/search?"+q.Encode(), http.NoBody)
	if err != nil {
		return domain.Channel{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Channel{}, fmt.Errorf("search channel: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Channel{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload struct {
		Items []struct {
			Snippet struct {
				ChannelID    string `json:"channelId"`
				ChannelTitle string `json:"channelTitle"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Channel{}, fmt.Errorf("decode search results: %w", err)
	}

	if len(payload.Items) == 0 || payload.Items[0].Snippet.ChannelID == "" {
		return domain.Channel{}, nil
	}
	return domain.Channel{
		ID:   payload.Items[0].Snippet.ChannelID,
		Name: payload.Items[0].Snippet.ChannelTitle,
	}, nil
}
