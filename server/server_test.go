package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubescope/tubescope/pkg/domain"
	"github.com/tubescope/tubescope/server/mocks"
)

func testServer(t *testing.T, db *mocks.DatabaseMock, ranker *mocks.RankerMock, lister *mocks.ListerMock, resolver *mocks.ResolverMock) *httptest.Server {
	t.Helper()

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:0", 30 * time.Second },
	}
	s := New(cfg, db, ranker, lister, resolver, "test-version", false)

	srv := httptest.NewServer(s.router)
	t.Cleanup(srv.Close)
	return srv
}

func TestServer_Status(t *testing.T) {
	srv := testServer(t, &mocks.DatabaseMock{}, &mocks.RankerMock{}, &mocks.ListerMock{}, &mocks.ResolverMock{})

	resp, err := http.Get(srv.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "test-version", status["version"])
}

func TestServer_Ping(t *testing.T) {
	srv := testServer(t, &mocks.DatabaseMock{}, &mocks.RankerMock{}, &mocks.ListerMock{}, &mocks.ResolverMock{})

	resp, err := http.Get(srv.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
}

func TestServer_Videos(t *testing.T) {
	db := &mocks.DatabaseMock{
		ListChannelsFunc: func(ctx context.Context) ([]domain.Channel, error) {
			return []domain.Channel{{ID: "UC1", Name: "Alpha"}, {ID: "UC2", Name: "Beta"}}, nil
		},
	}
	lister := &mocks.ListerMock{
		ListCandidatesFunc: func(ctx context.Context, channelIDs []string) ([]domain.Video, error) {
			assert.Equal(t, []string{"UC1", "UC2"}, channelIDs)
			return []domain.Video{
				{ID: "low", Title: "Low", SourceID: "UC1"},
				{ID: "high", Title: "High", SourceID: "UC2"},
			}, nil
		},
	}
	ranker := &mocks.RankerMock{
		RankFunc: func(ctx context.Context, videos []domain.Video) []domain.Video {
			require.Len(t, videos, 2)
			// ranked output comes back reordered with scores
			score := 90.0
			return []domain.Video{
				{ID: "high", Title: "High", SourceID: "UC2", Score: &score},
				{ID: "low", Title: "Low", SourceID: "UC1"},
			}
		},
	}
	srv := testServer(t, db, ranker, lister, &mocks.ResolverMock{})

	resp, err := http.Get(srv.URL + "/api/v1/videos")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Videos []domain.Video `json:"videos"`
		Total  int            `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, 2, payload.Total)
	require.Len(t, payload.Videos, 2)
	assert.Equal(t, "high", payload.Videos[0].ID)
	require.NotNil(t, payload.Videos[0].Score)
	assert.InDelta(t, 90.0, *payload.Videos[0].Score, 0.001)
	assert.Nil(t, payload.Videos[1].Score)

	assert.Len(t, ranker.RankCalls(), 1)
}

func TestServer_Videos_NoChannels(t *testing.T) {
	db := &mocks.DatabaseMock{
		ListChannelsFunc: func(ctx context.Context) ([]domain.Channel, error) { return nil, nil },
	}
	ranker := &mocks.RankerMock{}
	srv := testServer(t, db, ranker, &mocks.ListerMock{}, &mocks.ResolverMock{})

	resp, err := http.Get(srv.URL + "/api/v1/videos")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Videos []domain.Video `json:"videos"`
		Total  int            `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Zero(t, payload.Total)
	assert.Empty(t, payload.Videos)
	assert.Empty(t, ranker.RankCalls(), "ranking is skipped without channels")
}

func TestServer_Videos_Errors(t *testing.T) {
	t.Run("channel listing fails", func(t *testing.T) {
		db := &mocks.DatabaseMock{
			ListChannelsFunc: func(ctx context.Context) ([]domain.Channel, error) {
				return nil, fmt.Errorf("db locked")
			},
		}
		srv := testServer(t, db, &mocks.RankerMock{}, &mocks.ListerMock{}, &mocks.ResolverMock{})

		resp, err := http.Get(srv.URL + "/api/v1/videos")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("candidate listing fails", func(t *testing.T) {
		db := &mocks.DatabaseMock{
			ListChannelsFunc: func(ctx context.Context) ([]domain.Channel, error) {
				return []domain.Channel{{ID: "UC1"}}, nil
			},
		}
		lister := &mocks.ListerMock{
			ListCandidatesFunc: func(ctx context.Context, channelIDs []string) ([]domain.Video, error) {
				return nil, fmt.Errorf("network down")
			},
		}
		srv := testServer(t, db, &mocks.RankerMock{}, lister, &mocks.ResolverMock{})

		resp, err := http.Get(srv.URL + "/api/v1/videos")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestServer_GetPreferences(t *testing.T) {
	db := &mocks.DatabaseMock{
		GetPreferencesFunc: func(ctx context.Context) (*domain.Preferences, error) {
			return &domain.Preferences{
				Profile: domain.InterestProfile{StablePreferences: "space", SessionIntent: "launches"},
			}, nil
		},
	}
	srv := testServer(t, db, &mocks.RankerMock{}, &mocks.ListerMock{}, &mocks.ResolverMock{})

	resp, err := http.Get(srv.URL + "/api/v1/preferences")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile domain.InterestProfile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&profile))
	assert.Equal(t, "space", profile.StablePreferences)
	assert.Equal(t, "launches", profile.SessionIntent)
}

func TestServer_UpdatePreferences(t *testing.T) {
	var saved domain.InterestProfile
	db := &mocks.DatabaseMock{
		SaveProfileFunc: func(ctx context.Context, profile domain.InterestProfile) error {
			saved = profile
			return nil
		},
	}
	srv := testServer(t, db, &mocks.RankerMock{}, &mocks.ListerMock{}, &mocks.ResolverMock{})

	body := `{"stablePreferences":"golang, databases","sessionIntent":"conference talks"}`
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/v1/preferences", strings.NewReader(body))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "golang, databases", saved.StablePreferences)
	assert.Equal(t, "conference talks", saved.SessionIntent)
}

func TestServer_UpdatePreferences_BadBody(t *testing.T) {
	db := &mocks.DatabaseMock{}
	srv := testServer(t, db, &mocks.RankerMock{}, &mocks.ListerMock{}, &mocks.ResolverMock{})

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/v1/preferences", strings.NewReader("{broken"))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, db.SaveProfileCalls())
}

func TestServer_Channels(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		db := &mocks.DatabaseMock{
			ListChannelsFunc: func(ctx context.Context) ([]domain.Channel, error) {
				return []domain.Channel{{ID: "UC1", Name: "Alpha"}}, nil
			},
		}
		srv := testServer(t, db, &mocks.RankerMock{}, &mocks.ListerMock{}, &mocks.ResolverMock{})

		resp, err := http.Get(srv.URL + "/api/v1/channels")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var channels []domain.Channel
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&channels))
		require.Len(t, channels, 1)
		assert.Equal(t, "UC1", channels[0].ID)
	})

	t.Run("add", func(t *testing.T) {
		db := &mocks.DatabaseMock{
			AddChannelFunc: func(ctx context.Context, channel domain.Channel) error { return nil },
		}
		srv := testServer(t, db, &mocks.RankerMock{}, &mocks.ListerMock{}, &mocks.ResolverMock{})

		resp, err := http.Post(srv.URL+"/api/v1/channels", "application/json",
			strings.NewReader(`{"id":"UC9","name":"New Channel"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusCreated, resp.StatusCode)

		calls := db.AddChannelCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "UC9", calls[0].Channel.ID)
		assert.Equal(t, "New Channel", calls[0].Channel.Name)
	})

	t.Run("add without id rejected", func(t *testing.T) {
		db := &mocks.DatabaseMock{}
		srv := testServer(t, db, &mocks.RankerMock{}, &mocks.ListerMock{}, &mocks.ResolverMock{})

		resp, err := http.Post(srv.URL+"/api/v1/channels", "application/json",
			strings.NewReader(`{"name":"No ID"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, db.AddChannelCalls())
	})

	t.Run("delete", func(t *testing.T) {
		db := &mocks.DatabaseMock{
			DeleteChannelFunc: func(ctx context.Context, id string) error { return nil },
		}
		srv := testServer(t, db, &mocks.RankerMock{}, &mocks.ListerMock{}, &mocks.ResolverMock{})

		req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/channels/UC1", http.NoBody)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		calls := db.DeleteChannelCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "UC1", calls[0].ID)
	})

	t.Run("delete failure", func(t *testing.T) {
		db := &mocks.DatabaseMock{
			DeleteChannelFunc: func(ctx context.Context, id string) error { return fmt.Errorf("db locked") },
		}
		srv := testServer(t, db, &mocks.RankerMock{}, &mocks.ListerMock{}, &mocks.ResolverMock{})

		req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/channels/UC1", http.NoBody)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestServer_ResolveChannel(t *testing.T) {
	t.Run("resolved", func(t *testing.T) {
		resolver := &mocks.ResolverMock{
			ResolveChannelFunc: func(ctx context.Context, query string) (domain.Channel, error) {
				return domain.Channel{ID: "UC42", Name: "Deep Space"}, nil
			},
		}
		srv := testServer(t, &mocks.DatabaseMock{}, &mocks.RankerMock{}, &mocks.ListerMock{}, resolver)

		resp, err := http.Post(srv.URL+"/api/v1/channels/resolve", "application/json",
			strings.NewReader(`{"url":"https://www.youtube.com/@deepspace"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var channel domain.Channel
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&channel))
		assert.Equal(t, "UC42", channel.ID)
		assert.Equal(t, "Deep Space", channel.Name)

		calls := resolver.ResolveChannelCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "https://www.youtube.com/@deepspace", calls[0].Query)
	})

	t.Run("no match", func(t *testing.T) {
		resolver := &mocks.ResolverMock{
			ResolveChannelFunc: func(ctx context.Context, query string) (domain.Channel, error) {
				return domain.Channel{}, nil
			},
		}
		srv := testServer(t, &mocks.DatabaseMock{}, &mocks.RankerMock{}, &mocks.ListerMock{}, resolver)

		resp, err := http.Post(srv.URL+"/api/v1/channels/resolve", "application/json",
			strings.NewReader(`{"url":"https://example.com/not-a-channel"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing url rejected", func(t *testing.T) {
		resolver := &mocks.ResolverMock{}
		srv := testServer(t, &mocks.DatabaseMock{}, &mocks.RankerMock{}, &mocks.ListerMock{}, resolver)

		resp, err := http.Post(srv.URL+"/api/v1/channels/resolve", "application/json", strings.NewReader(`{}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, resolver.ResolveChannelCalls())
	})

	t.Run("resolver failure", func(t *testing.T) {
		resolver := &mocks.ResolverMock{
			ResolveChannelFunc: func(ctx context.Context, query string) (domain.Channel, error) {
				return domain.Channel{}, fmt.Errorf("quota exceeded")
			},
		}
		srv := testServer(t, &mocks.DatabaseMock{}, &mocks.RankerMock{}, &mocks.ListerMock{}, resolver)

		resp, err := http.Post(srv.URL+"/api/v1/channels/resolve", "application/json",
			strings.NewReader(`{"url":"https://www.youtube.com/@deepspace"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestServer_RunAndShutdown(t *testing.T) {
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:18764", 5 * time.Second },
	}
	s := New(cfg, &mocks.DatabaseMock{}, &mocks.RankerMock{}, &mocks.ListerMock{}, &mocks.ResolverMock{}, "test", false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// wait for the server to come up
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:18764/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 50*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
