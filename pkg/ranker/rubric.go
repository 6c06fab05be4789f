package ranker

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/tubescope/tubescope/pkg/domain"
)

// rubric compilation prompt, filled with the two profile fields
const rubricSystemPromptFmt = `You are an AI architect. Convert the user's interest profile into a deterministic scoring rubric for YouTube videos.
Stable Preferences: %q
Session Intent: %q

Goal: Score videos. Reward user interests highly.
Output a JSON object:
{
  "version": 1,
  "topicWeights": {"topic_name": weight_0_to_1},
  "noveltyPreference": 0.5,
  "technicalDepthPreference": 0.5,
  "educationalPreference": 0.5,
  "instantJunkRules": ["rule 1", "rule 2"]
}`

// currentRubric returns the cached rubric when it is still valid, i.e.
// younger than the TTL and compiled from the current profile. Otherwise
// it compiles a fresh one and caches it. Returns nil when compilation
// fails, which degrades the whole run to pass-through.
func (r *Ranker) currentRubric(ctx context.Context, prefs *domain.Preferences) *domain.ScoringRubric {
	digest := profileDigest(prefs.Profile)
	if prefs.Rubric != nil && prefs.ProfileDigest == digest && time.Since(prefs.Rubric.GeneratedAt) < r.params.RubricTTL {
		lgr.Printf("[DEBUG] reusing cached rubric generated at %s", prefs.Rubric.GeneratedAt.Format(time.RFC3339))
		return prefs.Rubric
	}

	rubric := r.compileRubric(ctx, prefs.Profile)
	if rubric == nil {
		return nil
	}

	if r.store != nil {
		if err := r.store.SaveRubric(ctx, rubric, digest); err != nil {
			lgr.Printf("[WARN] failed to cache rubric: %v", err)
		}
	}
	return rubric
}

// compileRubric asks the backend to turn the free-text profile into a
// structured rubric. Known topic labels are included to ground the
// generated topic keys in the vocabulary already in use.
func (r *Ranker) compileRubric(ctx context.Context, profile domain.InterestProfile) *domain.ScoringRubric {
	system := fmt.Sprintf(rubricSystemPromptFmt, profile.StablePreferences, profile.SessionIntent)

	user := ""
	if r.store != nil {
		categories, err := r.store.GetCategories(ctx)
		if err != nil {
			lgr.Printf("[WARN] failed to get known topics for rubric grounding: %v", err)
		}
		if len(categories) > 0 {
			user = "Known topic labels (prefer these as topicWeights keys): " + strings.Join(categories, ", ")
		}
	}

	raw, err := r.ai.Complete(ctx, system, user)
	if err != nil {
		lgr.Printf("[WARN] rubric generation failed: %v", err)
		return nil
	}

	var rubric domain.ScoringRubric
	if err := json.Unmarshal(raw, &rubric); err != nil {
		lgr.Printf("[WARN] rubric response malformed: %v", err)
		return nil
	}

	if rubric.Version == 0 {
		rubric.Version = 1
	}
	rubric.GeneratedAt = time.Now()
	for topic, weight := range rubric.TopicWeights {
		rubric.TopicWeights[topic] = clamp01(weight)
	}
	rubric.NoveltyPreference = clamp01(rubric.NoveltyPreference)
	rubric.TechnicalDepthPreference = clamp01(rubric.TechnicalDepthPreference)
	rubric.EducationalPreference = clamp01(rubric.EducationalPreference)

	lgr.Printf("[INFO] compiled rubric v%d with %d topic weights", rubric.Version, len(rubric.TopicWeights))
	return &rubric
}

// profileDigest fingerprints the interest profile so a cached rubric can
// be invalidated when the profile text changes
func profileDigest(profile domain.InterestProfile) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(profile.StablePreferences))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(profile.SessionIntent))
	return fmt.Sprintf("%016x", h.Sum64())
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
