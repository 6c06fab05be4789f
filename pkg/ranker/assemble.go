package ranker

import (
	"context"
	"sort"

	"github.com/tubescope/tubescope/pkg/domain"
)

// assemble applies reputation and diversity adjustments over the merged
// list in arrival order, feeds the outcome of every video into the
// ledger, and returns the list sorted by final score.
//
// The adjustment happens before the ledger update on purpose: the
// recorded score is the realized ranking utility, not the raw model
// output. An adjustment sets the score even when scoring left it unset,
// while videos that trigger no adjustment keep the unset/zero
// distinction intact.
func (r *Ranker) assemble(ctx context.Context, videos []domain.Video, ledger *Ledger) []domain.Video {
	// adjustments read the run-start state: the outcome for a video must
	// not depend on entries created or moved by earlier videos in the
	// same walk. Updates accumulate in the live ledger and take effect
	// on the next run.
	snapshot := ledger.Snapshot()
	seen := make(map[string]int)

	for i := range videos {
		v := &videos[i]

		if rep, ok := snapshot[v.SourceID]; ok {
			switch {
			case rep.PassRate > r.params.HighPassRate:
				setScore(v, scoreOrZero(v)*r.params.BoostFactor)
			case rep.PassRate < r.params.LowPassRate:
				setScore(v, scoreOrZero(v)*r.params.DemoteFactor)
			}
		}

		// single penalty from the Nth same-source occurrence onward,
		// not compounded per extra occurrence
		if seen[v.SourceID] >= r.params.DiversityAfter {
			setScore(v, scoreOrZero(v)*r.params.DiversityFactor)
		}
		seen[v.SourceID]++

		passed := v.TriageStatus != domain.TriageReject
		ledger.Update(ctx, v.SourceID, &passed, v.Score)
	}

	// descending by score, unset sorts as zero, stable for ties
	sort.SliceStable(videos, func(i, j int) bool {
		return scoreOrZero(&videos[i]) > scoreOrZero(&videos[j])
	})
	return videos
}

func scoreOrZero(v *domain.Video) float64 {
	if v.Score == nil {
		return 0
	}
	return *v.Score
}

func setScore(v *domain.Video, score float64) {
	v.Score = &score
}
