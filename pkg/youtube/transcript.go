package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultTimedTextURL serves auto and manual captions as timed XML
const defaultTimedTextURL = "https://www.youtube.com/api/timedtext"

// Transcripts fetches caption text for videos via the timedtext endpoint
type Transcripts struct {
	client       *http.Client
	userAgent    string
	language     string
	timedTextURL string
}

// NewTranscripts creates a transcript fetcher for the given caption language
func NewTranscripts(timeout time.Duration, userAgent, language string) *Transcripts {
	if language == "" {
		language = "en"
	}
	return &Transcripts{
		client:       &http.Client{Timeout: timeout},
		userAgent:    userAgent,
		language:     language,
		timedTextURL: defaultTimedTextURL,
	}
}

// FetchTranscript returns the video's caption track as plain text.
// Videos without captions return an error; callers treat it as a
// missing-data condition, not a failure.
func (t *Transcripts) FetchTranscript(ctx context.Context, videoID string) (string, error) {
	query := url.Values{}
	query.Set("lang", t.language)
	query.Set("v", videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.timedTextURL+"?"+query.Encode(), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", t.userAgent)

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch transcript: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	if len(body) == 0 {
		return "", fmt.Errorf("no transcript available for %s", videoID)
	}

	var track struct {
		Texts []string `xml:"text"`
	}
	if err := xml.Unmarshal(body, &track); err != nil {
		return "", fmt.Errorf("parse transcript: %w", err)
	}

	parts := make([]string, 0, len(track.Texts))
	for _, text := range track.Texts {
		if trimmed := strings.TrimSpace(html.UnescapeString(text)); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no transcript available for %s", videoID)
	}
	return strings.Join(parts, " "), nil
}
