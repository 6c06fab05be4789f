// Package ranker implements the staged personalization pipeline: rubric
// compilation, cheap triage of the full pool, enrichment and detailed
// scoring of a bounded top subset, and reputation/diversity adjustments
// over the merged result. Every stage degrades on failure instead of
// aborting the run; the worst case is an unranked or partially ranked
// output.
package ranker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/tubescope/tubescope/pkg/domain"
)

//go:generate moq -out mocks/ai.go -pkg mocks -skip-ensure -fmt goimports . AI
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/details.go -pkg mocks -skip-ensure -fmt goimports . DetailFetcher
//go:generate moq -out mocks/transcripts.go -pkg mocks -skip-ensure -fmt goimports . TranscriptFetcher

// AI is the language-model boundary. Complete takes a system and user
// prompt and returns a parsed-as-valid JSON object; Available reports
// whether the backend is configured at all.
type AI interface {
	Available() bool
	Complete(ctx context.Context, system, user string) (json.RawMessage, error)
}

// Store is the persisted preferences handle: interest profile, cached
// rubric and the per-source reputation map
type Store interface {
	GetPreferences(ctx context.Context) (*domain.Preferences, error)
	SaveRubric(ctx context.Context, rubric *domain.ScoringRubric, profileDigest string) error
	SaveReputation(ctx context.Context, sourceID string, rep domain.SourceReputation) error
	GetCategories(ctx context.Context) ([]string, error)
}

// DetailFetcher fetches missing detail fields for a video
type DetailFetcher interface {
	FetchDetails(ctx context.Context, videoID string) (*domain.VideoDetails, error)
}

// TranscriptFetcher fetches transcript text for a video
type TranscriptFetcher interface {
	FetchTranscript(ctx context.Context, videoID string) (string, error)
}

// Params holds the pipeline tunables. The thresholds and factors carry
// the values the system shipped with; they are parameters rather than
// constants because no stronger rationale exists for the numbers.
type Params struct {
	PoolCap         int           // maximum candidate pool size per run
	TriageBatchSize int           // videos per triage request
	ScoreBatchSize  int           // videos per detailed scoring request
	EnrichTop       int           // top candidates to enrich and score
	RubricTTL       time.Duration // validity window of a compiled rubric
	ReputationAlpha float64       // EMA smoothing factor for pass rate
	HighPassRate    float64       // boost sources above this pass rate
	LowPassRate     float64       // demote sources below this pass rate
	BoostFactor     float64
	DemoteFactor    float64
	DiversityAfter  int // same-source occurrences before the penalty
	DiversityFactor float64
}

// Config holds dependencies and parameters for the Ranker
type Config struct {
	AI          AI
	Store       Store
	Details     DetailFetcher
	Transcripts TranscriptFetcher
	Params      Params
}

// Ranker orchestrates the ranking pipeline. It is the only component
// aware of the full stage sequence; each stage operates on fixed inputs
// and is independently testable.
type Ranker struct {
	ai          AI
	store       Store
	details     DetailFetcher
	transcripts TranscriptFetcher
	params      Params
}

// New creates a ranker with the provided configuration, filling in
// defaults for any zero-valued parameter.
func New(cfg Config) *Ranker {
	p := cfg.Params
	if p.PoolCap == 0 {
		p.PoolCap = 200
	}
	if p.TriageBatchSize == 0 {
		p.TriageBatchSize = 25
	}
	if p.ScoreBatchSize == 0 {
		p.ScoreBatchSize = 10
	}
	if p.EnrichTop == 0 {
		p.EnrichTop = 20
	}
	if p.RubricTTL == 0 {
		p.RubricTTL = 24 * time.Hour
	}
	if p.ReputationAlpha == 0 {
		p.ReputationAlpha = 0.1
	}
	if p.HighPassRate == 0 {
		p.HighPassRate = 0.8
	}
	if p.LowPassRate == 0 {
		p.LowPassRate = 0.3
	}
	if p.BoostFactor == 0 {
		p.BoostFactor = 1.1
	}
	if p.DemoteFactor == 0 {
		p.DemoteFactor = 0.7
	}
	if p.DiversityAfter == 0 {
		p.DiversityAfter = 3
	}
	if p.DiversityFactor == 0 {
		p.DiversityFactor = 0.8
	}

	return &Ranker{
		ai:          cfg.AI,
		store:       cfg.Store,
		details:     cfg.Details,
		transcripts: cfg.Transcripts,
		params:      p,
	}
}

// Rank runs the full pipeline over the candidate pool and returns the
// final ordered list. It never fails: when the AI backend is missing or
// the rubric cannot be compiled the input comes back in arrival order,
// and per-batch or per-item failures degrade only the affected videos.
//
// Rank is not safe for overlapping invocations sharing one store;
// callers must serialize runs.
func (r *Ranker) Rank(ctx context.Context, videos []domain.Video) []domain.Video {
	if r.params.PoolCap > 0 && len(videos) > r.params.PoolCap {
		lgr.Printf("[INFO] capping candidate pool from %d to %d", len(videos), r.params.PoolCap)
		videos = videos[:r.params.PoolCap]
	}
	if len(videos) == 0 {
		return videos
	}

	if r.ai == nil || !r.ai.Available() {
		lgr.Printf("[INFO] ai backend not configured, returning %d videos unranked", len(videos))
		return videos
	}

	prefs := r.loadPreferences(ctx)

	rubric := r.currentRubric(ctx, prefs)
	if rubric == nil {
		lgr.Printf("[WARN] no scoring rubric available, returning videos unranked")
		return videos
	}

	lgr.Printf("[INFO] triaging %d videos", len(videos))
	r.triage(ctx, videos, rubric)

	pool := make([]domain.Video, 0, len(videos))
	rejected := make([]domain.Video, 0)
	for _, v := range videos {
		if v.TriageStatus == domain.TriageReject {
			rejected = append(rejected, v)
			continue
		}
		pool = append(pool, v)
	}
	if len(pool) == 0 {
		lgr.Printf("[WARN] triage rejected all %d videos, returning pool unranked", len(videos))
		return videos
	}

	top := r.params.EnrichTop
	if top > len(pool) {
		top = len(pool)
	}
	candidates, nonCandidates := pool[:top], pool[top:]

	lgr.Printf("[INFO] enriching and scoring top %d of %d candidates", len(candidates), len(pool))
	r.enrich(ctx, candidates)
	r.score(ctx, candidates, rubric)

	// scored candidates first, then the untouched remainder, then the
	// rejected tail; this is the arrival order the assembler counts
	// same-source occurrences in
	merged := make([]domain.Video, 0, len(videos))
	merged = append(merged, candidates...)
	merged = append(merged, nonCandidates...)
	merged = append(merged, rejected...)

	ledger := NewLedger(r.params.ReputationAlpha, prefs.Reputation, r.store)
	return r.assemble(ctx, merged, ledger)
}

// loadPreferences reads persisted preferences, degrading to empty
// defaults when the store is unavailable
func (r *Ranker) loadPreferences(ctx context.Context) *domain.Preferences {
	if r.store == nil {
		return &domain.Preferences{}
	}
	prefs, err := r.store.GetPreferences(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to load preferences: %v", err)
		return &domain.Preferences{}
	}
	if prefs == nil {
		return &domain.Preferences{}
	}
	return prefs
}
