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

const triageSystemPromptFmt = `Triage these YouTube videos based on this rubric: %s.
Goal: Cheaply filter out junk (clickbait, low-quality shorts, irrelevant content).
Output JSON: {"results": [{"idx": 0, "status": "reject|maybe|good", "flags": ["clickbait", "low_quality"]}]}`

// triageResult is one batch-local entry of a triage response
type triageResult struct {
	Idx    int      `json:"idx"`
	Status string   `json:"status"`
	Flags  []string `json:"flags"`
}

// triage annotates every video in place with a verdict. Batches run
// concurrently and only title and description go into the prompt to
// bound payload size; transcripts are an enrichment-stage concern.
// Fail open: a missing verdict or a failed batch leaves videos at
// "maybe", never drops them.
func (r *Ranker) triage(ctx context.Context, videos []domain.Video, rubric *domain.ScoringRubric) {
	for i := range videos {
		videos[i].TriageStatus = domain.TriageMaybe
	}

	rubricJSON, err := json.Marshal(rubric)
	if err != nil {
		lgr.Printf("[WARN] failed to serialize rubric for triage: %v", err)
		return
	}
	system := fmt.Sprintf(triageSystemPromptFmt, rubricJSON)

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(videos); start += r.params.TriageBatchSize {
		end := min(start+r.params.TriageBatchSize, len(videos))
		batch := videos[start:end]
		g.Go(func() error {
			if err := r.triageBatch(gctx, batch, system); err != nil {
				// batch stays at "maybe", siblings keep going
				lgr.Printf("[WARN] triage failed for batch of %d videos: %v", len(batch), err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// triageBatch issues one classification request and applies the
// verdicts it can match back to batch-local indexes
func (r *Ranker) triageBatch(ctx context.Context, batch []domain.Video, system string) error {
	var sb strings.Builder
	for i, v := range batch {
		fmt.Fprintf(&sb, "%d: T:%s | D:%s\n", i, v.Title, v.Description)
	}

	raw, err := r.ai.Complete(ctx, system, sb.String())
	if err != nil {
		return err
	}

	var resp struct {
		Results []triageResult `json:"results"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("parse triage response: %w", err)
	}

	for _, res := range resp.Results {
		if res.Idx < 0 || res.Idx >= len(batch) {
			continue
		}
		switch domain.TriageStatus(res.Status) {
		case domain.TriageReject, domain.TriageMaybe, domain.TriageGood:
			batch[res.Idx].TriageStatus = domain.TriageStatus(res.Status)
			batch[res.Idx].TriageFlags = res.Flags
		default:
			lgr.Printf("[DEBUG] ignoring unknown triage status %q for %s", res.Status, batch[res.Idx].ID)
		}
	}
	return nil
}
