package domain

import "time"

// InterestProfile is the user's free-text interest statement. It is
// mutated only by explicit user updates and read-only to the pipeline.
type InterestProfile struct {
	StablePreferences string `json:"stablePreferences"`
	SessionIntent     string `json:"sessionIntent"`
}

// ScoringRubric is a structured, reusable scoring policy compiled from
// an InterestProfile. Immutable once generated; regenerated lazily when
// older than the validity window or when the profile changes.
type ScoringRubric struct {
	Version                  int                `json:"version"`
	GeneratedAt              time.Time          `json:"generatedAt"`
	TopicWeights             map[string]float64 `json:"topicWeights"`
	NoveltyPreference        float64            `json:"noveltyPreference"`
	TechnicalDepthPreference float64            `json:"technicalDepthPreference"`
	EducationalPreference    float64            `json:"educationalPreference"`
	InstantJunkRules         []string           `json:"instantJunkRules"`
}

// SourceReputation tracks per-source quality signals across runs.
// PassRate is an exponential moving average of triage pass/fail,
// AvgScore an incremental running mean of final scores.
type SourceReputation struct {
	PassRate       float64 `json:"passRate"`
	AvgScore       float64 `json:"avgScore"`
	UserEngagement float64 `json:"userEngagement"`
	TotalTriaged   int64   `json:"totalTriaged"`
}

// Preferences is the persisted per-user state the pipeline reads at the
// start of a run: the interest profile, the cached rubric with the
// digest of the profile it was compiled from, and the reputation map.
type Preferences struct {
	Profile       InterestProfile             `json:"profile"`
	Rubric        *ScoringRubric              `json:"rubric,omitempty"`
	ProfileDigest string                      `json:"profileDigest,omitempty"`
	Reputation    map[string]SourceReputation `json:"reputation"`
}

// Channel is a tracked video source the listing stage pulls candidates from
type Channel struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	AddedAt time.Time `json:"addedAt"`
}
