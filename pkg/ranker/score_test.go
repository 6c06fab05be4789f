package ranker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubescope/tubescope/pkg/domain"
	"github.com/tubescope/tubescope/pkg/ranker/mocks"
)

func TestScore_AppliesResults(t *testing.T) {
	ai := &mocks.AIMock{
		CompleteFunc: func(ctx context.Context, system, user string) (json.RawMessage, error) {
			assert.Contains(t, system, "Score these")
			return json.RawMessage(`{"scores":[
				{"idx":0,"overall":0.85,"topic_match":0.9,"novelty":0.4,"depth":0.8,"credibility":0.7,"junk_risk":0.1,"why":["on topic"],"filters_triggered":[]},
				{"idx":1,"overall":0.2,"junk_risk":0.9,"filters_triggered":["clickbait_title"]}]}`), nil
		},
	}
	r := New(Config{AI: ai})

	videos := []domain.Video{
		{ID: "a", Title: "Deep Dive", Description: "substantial"},
		{ID: "b", Title: "SHOCKING", Description: "junk"},
	}
	r.score(context.Background(), videos, &domain.ScoringRubric{Version: 1})

	require.NotNil(t, videos[0].Score)
	assert.InDelta(t, 85.0, *videos[0].Score, 0.001, "overall scales by 100")
	require.NotNil(t, videos[0].Explanation)
	assert.InDelta(t, 0.9, videos[0].Explanation.TopicMatch, 0.001)
	assert.Equal(t, []string{"on topic"}, videos[0].Explanation.Why)

	require.NotNil(t, videos[1].Score)
	assert.InDelta(t, 20.0, *videos[1].Score, 0.001)
	assert.Equal(t, []string{"clickbait_title"}, videos[1].Explanation.FiltersTriggered)
}

func TestScore_MissingEntryStaysUnscored(t *testing.T) {
	ai := &mocks.AIMock{
		CompleteFunc: func(ctx context.Context, system, user string) (json.RawMessage, error) {
			return json.RawMessage(`{"scores":[{"idx":0,"overall":0.5}]}`), nil
		},
	}
	r := New(Config{AI: ai})

	videos := []domain.Video{
		{ID: "a", Title: "First"},
		{ID: "b", Title: "Second"},
	}
	r.score(context.Background(), videos, &domain.ScoringRubric{})

	require.NotNil(t, videos[0].Score)
	assert.Nil(t, videos[1].Score, "unscored stays nil, not zero")
	assert.Nil(t, videos[1].Explanation)
}

func TestScore_ZeroOverallIsAScore(t *testing.T) {
	ai := &mocks.AIMock{
		CompleteFunc: func(ctx context.Context, system, user string) (json.RawMessage, error) {
			return json.RawMessage(`{"scores":[{"idx":0,"overall":0}]}`), nil
		},
	}
	r := New(Config{AI: ai})

	videos := []domain.Video{{ID: "a", Title: "First"}}
	r.score(context.Background(), videos, &domain.ScoringRubric{})

	require.NotNil(t, videos[0].Score, "an explicit zero is still a score")
	assert.InDelta(t, 0.0, *videos[0].Score, 0.001)
}

func TestScore_BatchFailureContained(t *testing.T) {
	var calls atomic.Int32
	ai := &mocks.AIMock{
		CompleteFunc: func(ctx context.Context, system, user string) (json.RawMessage, error) {
			if calls.Add(1) == 1 {
				return nil, fmt.Errorf("backend down")
			}
			return json.RawMessage(`{"scores":[{"idx":0,"overall":0.7}]}`), nil
		},
	}
	r := New(Config{AI: ai, Params: Params{ScoreBatchSize: 1}})

	videos := []domain.Video{
		{ID: "a", Title: "First"},
		{ID: "b", Title: "Second"},
	}
	r.score(context.Background(), videos, &domain.ScoringRubric{})

	// batches run concurrently so either one may have failed, but
	// exactly one video ends up scored
	scored := 0
	for _, v := range videos {
		if v.Score != nil {
			scored++
		}
	}
	assert.Equal(t, 1, scored)
}

func TestScore_OutOfRangeIndexIgnored(t *testing.T) {
	ai := &mocks.AIMock{
		CompleteFunc: func(ctx context.Context, system, user string) (json.RawMessage, error) {
			return json.RawMessage(`{"scores":[{"idx":7,"overall":0.5},{"idx":-2,"overall":0.5}]}`), nil
		},
	}
	r := New(Config{AI: ai})

	videos := []domain.Video{{ID: "a", Title: "First"}}
	r.score(context.Background(), videos, &domain.ScoringRubric{})

	assert.Nil(t, videos[0].Score)
}

func TestScore_PrefersContentCard(t *testing.T) {
	var prompt string
	ai := &mocks.AIMock{
		CompleteFunc: func(ctx context.Context, system, user string) (json.RawMessage, error) {
			prompt = user
			return json.RawMessage(`{"scores":[]}`), nil
		},
	}
	r := New(Config{AI: ai})

	videos := []domain.Video{
		{
			ID:          "a",
			Title:       "With Card",
			Description: "raw description",
			Tags:        []string{"go", "testing"},
			ContentCard: &domain.ContentCard{
				Summary:  []string{"dense point one", "dense point two"},
				Metadata: domain.CardMetadata{Depth: "deep"},
			},
		},
		{ID: "b", Title: "Without Card", Description: "plain description"},
	}
	r.score(context.Background(), videos, &domain.ScoringRubric{})

	assert.Contains(t, prompt, "[AI SUMMARY]: dense point one. dense point two")
	assert.Contains(t, prompt, "[DEPTH]: deep")
	assert.NotContains(t, prompt, "raw description")
	assert.Contains(t, prompt, "plain description")
	assert.Contains(t, prompt, "[TAGS]: go, testing")
}

func TestScore_BatchIndexesRestart(t *testing.T) {
	ai := &mocks.AIMock{
		CompleteFunc: func(ctx context.Context, system, user string) (json.RawMessage, error) {
			return json.RawMessage(`{"scores":[{"idx":0,"overall":0.5}]}`), nil
		},
	}
	r := New(Config{AI: ai, Params: Params{ScoreBatchSize: 2}})

	videos := makeVideos(5, "UC1")
	r.score(context.Background(), videos, &domain.ScoringRubric{})

	assert.Len(t, ai.CompleteCalls(), 3)

	// the first video of every batch got the score
	assert.NotNil(t, videos[0].Score)
	assert.Nil(t, videos[1].Score)
	assert.NotNil(t, videos[2].Score)
	assert.Nil(t, videos[3].Score)
	assert.NotNil(t, videos[4].Score)
}
