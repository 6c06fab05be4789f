package domain

import "time"

// Video represents a single candidate item in the ranking pool.
// It arrives with listing-level fields only; enrichment fills in
// Description, Tags, Transcript and ContentCard, and the scoring
// stage sets Score and Explanation. Score stays nil until something
// explicitly sets it, a scored zero is not the same as unscored.
type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	SourceID    string    `json:"sourceId"`
	SourceName  string    `json:"sourceName"`
	ViewCount   int64     `json:"viewCount"`
	PublishedAt time.Time `json:"publishedAt"`

	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Transcript  string   `json:"transcript,omitempty"`

	TriageStatus TriageStatus      `json:"triageStatus,omitempty"`
	TriageFlags  []string          `json:"triageFlags,omitempty"`
	ContentCard  *ContentCard      `json:"contentCard,omitempty"`
	Score        *float64          `json:"score,omitempty"`
	Explanation  *ScoreExplanation `json:"explanation,omitempty"`
}

// TriageStatus is the cheap-classification verdict for a video
type TriageStatus string

// triage verdicts, zero value means the video was never triaged
const (
	TriageReject TriageStatus = "reject"
	TriageMaybe  TriageStatus = "maybe"
	TriageGood   TriageStatus = "good"
)

// VideoDetails holds the detail fields fetched lazily during enrichment
type VideoDetails struct {
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// ContentCard is a structured summary derived from a video's transcript
// (or description or title as fallbacks), produced at most once per run
type ContentCard struct {
	Summary  []string     `json:"summary"`
	Claims   []string     `json:"claims"`
	Entities CardEntities `json:"entities"`
	Metadata CardMetadata `json:"metadata"`
}

// CardEntities lists named entities mentioned in the content
type CardEntities struct {
	People       []string `json:"people"`
	Brands       []string `json:"brands"`
	Technologies []string `json:"technologies"`
}

// CardMetadata carries content-type signals used by the scoring prompt
type CardMetadata struct {
	Depth            string  `json:"depth"` // "shallow" or "deep"
	EducationalValue float64 `json:"educational_value"`
	IsTutorial       bool    `json:"is_tutorial"`
	IsReview         bool    `json:"is_review"`
	IsEntertainment  bool    `json:"is_entertainment"`
	IsNews           bool    `json:"is_news"`
}

// ScoreExplanation is the structured breakdown returned by detailed
// scoring. Overall is on a 0-1 scale; the video's final score is
// Overall scaled by 100.
type ScoreExplanation struct {
	Overall          float64  `json:"overall"`
	TopicMatch       float64  `json:"topic_match"`
	Novelty          float64  `json:"novelty"`
	Depth            float64  `json:"depth"`
	Credibility      float64  `json:"credibility"`
	JunkRisk         float64  `json:"junk_risk"`
	Why              []string `json:"why"`
	FiltersTriggered []string `json:"filters_triggered"`
}
