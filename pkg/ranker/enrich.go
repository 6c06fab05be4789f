package ranker

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/tubescope/tubescope/pkg/domain"
)

const cardSystemPrompt = `Extract a semantic content card from this video data (transcript or description).
Output JSON:
{
  "summary": ["bullet 1", "bullet 2"],
  "claims": ["fact 1"],
  "entities": {"people": [], "brands": [], "technologies": []},
  "metadata": {"depth": "shallow|deep", "educational_value": 0.8, "is_tutorial": true, "is_review": false, "is_entertainment": false, "is_news": false}
}`

// cardSourceLimit bounds the text sent for card extraction
const cardSourceLimit = 5000

// enrich fills in missing detail fields, transcripts and content cards
// for the candidate subset. All videos enrich concurrently; a failed
// fetch degrades only the field it was after.
func (r *Ranker) enrich(ctx context.Context, videos []domain.Video) {
	g, gctx := errgroup.WithContext(ctx)
	for i := range videos {
		g.Go(func() error {
			r.enrichVideo(gctx, &videos[i])
			return nil
		})
	}
	_ = g.Wait()
}

// enrichVideo runs the three enrichment calls for one video. They are
// independent and concurrent: the content card derives from whatever
// text the video arrived with (transcript preferred, then description,
// then title), not from fields fetched in this same pass.
func (r *Ranker) enrichVideo(ctx context.Context, v *domain.Video) {
	cardSource := v.Transcript
	if cardSource == "" {
		cardSource = v.Description
	}
	if cardSource == "" {
		cardSource = v.Title
	}

	var wg sync.WaitGroup

	if r.details != nil && (v.Description == "" || len(v.Tags) == 0) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			details, err := r.details.FetchDetails(ctx, v.ID)
			if err != nil {
				lgr.Printf("[WARN] failed to fetch details for %s: %v", v.ID, err)
				return
			}
			if v.Description == "" {
				v.Description = details.Description
			}
			if len(v.Tags) == 0 {
				v.Tags = details.Tags
			}
		}()
	}

	if r.transcripts != nil && v.Transcript == "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			transcript, err := r.transcripts.FetchTranscript(ctx, v.ID)
			if err != nil {
				lgr.Printf("[DEBUG] no transcript for %s: %v", v.ID, err)
				return
			}
			v.Transcript = transcript
		}()
	}

	if v.ContentCard == nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			card, err := r.extractCard(ctx, cardSource)
			if err != nil {
				lgr.Printf("[WARN] content card extraction failed for %s: %v", v.ID, err)
				return
			}
			v.ContentCard = card
		}()
	}

	wg.Wait()
}

// extractCard derives a structured content card from the source text
func (r *Ranker) extractCard(ctx context.Context, source string) (*domain.ContentCard, error) {
	if len(source) > cardSourceLimit {
		source = source[:cardSourceLimit]
	}

	raw, err := r.ai.Complete(ctx, cardSystemPrompt, source)
	if err != nil {
		return nil, err
	}

	var card domain.ContentCard
	if err := json.Unmarshal(raw, &card); err != nil {
		return nil, err
	}
	return &card, nil
}
