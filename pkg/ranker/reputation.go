package ranker

import (
	"context"

	"github.com/go-pkgz/lgr"

	"github.com/tubescope/tubescope/pkg/domain"
)

// Ledger maintains per-source reputation for one run. It is seeded from
// the persisted map at run start and writes every update back through
// the store immediately. Pass rate is an exponential moving average so
// it tracks recent behavior; the average score is an incremental mean
// so no raw history needs to be kept.
type Ledger struct {
	alpha   float64
	store   Store
	entries map[string]domain.SourceReputation
}

// NewLedger creates a ledger seeded with existing reputation entries
func NewLedger(alpha float64, seed map[string]domain.SourceReputation, store Store) *Ledger {
	entries := make(map[string]domain.SourceReputation, len(seed))
	for id, rep := range seed {
		entries[id] = rep
	}
	return &Ledger{alpha: alpha, store: store, entries: entries}
}

// Get returns the current reputation of a source, if any
func (l *Ledger) Get(sourceID string) (domain.SourceReputation, bool) {
	rep, ok := l.entries[sourceID]
	return rep, ok
}

// Snapshot returns a copy of the current entries. The assembler adjusts
// scores against the run-start state, so updates recorded while walking
// the list must not feed back into later adjustments.
func (l *Ledger) Snapshot() map[string]domain.SourceReputation {
	out := make(map[string]domain.SourceReputation, len(l.entries))
	for id, rep := range l.entries {
		out[id] = rep
	}
	return out
}

// Update records one triage/score event for a source. A new source
// starts optimistic: full pass rate and a neutral average score.
// Either signal may be absent; the triage counter advances regardless.
// The entry is persisted on every call.
func (l *Ledger) Update(ctx context.Context, sourceID string, passed *bool, score *float64) {
	rep, ok := l.entries[sourceID]
	if !ok {
		rep = domain.SourceReputation{PassRate: 1, AvgScore: 50}
	}

	rep.TotalTriaged++

	if passed != nil {
		current := 0.0
		if *passed {
			current = 1.0
		}
		rep.PassRate = (1-l.alpha)*rep.PassRate + l.alpha*current
	}

	if score != nil {
		rep.AvgScore = (rep.AvgScore*float64(rep.TotalTriaged-1) + *score) / float64(rep.TotalTriaged)
	}

	l.entries[sourceID] = rep

	if l.store != nil {
		if err := l.store.SaveReputation(ctx, sourceID, rep); err != nil {
			lgr.Printf("[WARN] failed to persist reputation for source %s: %v", sourceID, err)
		}
	}
}
