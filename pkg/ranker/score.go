package ranker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/tubescope/tubescope/pkg/domain"
)

const scoreSystemPromptFmt = `Score these YouTube videos using this rubric: %s.
Reward depth and educational value. Penalize clickbait.
Output JSON: {"scores": [{"idx": 0, "overall": 0.8, "topic_match": 0.9, "novelty": 0.5, "depth": 0.7, "credibility": 0.8, "junk_risk": 0.1, "why": ["..."], "filters_triggered": []}]}`

// scoreResult is one batch-local entry of a scoring response
type scoreResult struct {
	Idx int `json:"idx"`
	domain.ScoreExplanation
}

// score runs detailed scoring over the enriched candidates in
// concurrent batches. A video with no matching response entry stays
// unscored; that is not the same as scoring zero. Batch failures are
// logged and contained.
func (r *Ranker) score(ctx context.Context, videos []domain.Video, rubric *domain.ScoringRubric) {
	rubricJSON, err := json.Marshal(rubric)
	if err != nil {
		lgr.Printf("[WARN] failed to serialize rubric for scoring: %v", err)
		return
	}
	system := fmt.Sprintf(scoreSystemPromptFmt, rubricJSON)

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(videos); start += r.params.ScoreBatchSize {
		end := min(start+r.params.ScoreBatchSize, len(videos))
		batch := videos[start:end]
		g.Go(func() error {
			if err := r.scoreBatch(gctx, batch, system); err != nil {
				lgr.Printf("[WARN] detailed scoring failed for batch of %d videos: %v", len(batch), err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// scoreBatch issues one scoring request and applies matched entries
func (r *Ranker) scoreBatch(ctx context.Context, batch []domain.Video, system string) error {
	var sb strings.Builder
	for i, v := range batch {
		if i > 0 {
			sb.WriteString("\n---\n")
		}
		fmt.Fprintf(&sb, "%d: %s\n%s\n[TAGS]: %s", i, v.Title, scoreDescription(&v), strings.Join(v.Tags, ", "))
	}

	raw, err := r.ai.Complete(ctx, system, sb.String())
	if err != nil {
		return err
	}

	var resp struct {
		Scores []scoreResult `json:"scores"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("parse scoring response: %w", err)
	}

	for _, res := range resp.Scores {
		if res.Idx < 0 || res.Idx >= len(batch) {
			continue
		}
		explanation := res.ScoreExplanation
		score := explanation.Overall * 100
		batch[res.Idx].Score = &score
		batch[res.Idx].Explanation = &explanation
	}
	return nil
}

// scoreDescription prefers the content card over the raw description:
// it is denser and already AI-filtered
func scoreDescription(v *domain.Video) string {
	if v.ContentCard != nil {
		return fmt.Sprintf("[AI SUMMARY]: %s\n[DEPTH]: %s",
			strings.Join(v.ContentCard.Summary, ". "), v.ContentCard.Metadata.Depth)
	}
	return v.Description
}
