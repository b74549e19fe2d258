package rank

import (
	"sort"

	"signalboost-engine/internal/domain"
)

// Summary is the tier breakdown for a scored batch.
type Summary struct {
	High    int     `json:"high_priority"`
	Medium  int     `json:"medium_priority"`
	Low     int     `json:"low_priority"`
	Average float64 `json:"average_score"`
}

// ScoreAll scores every lead independently, preserving input order.
func ScoreAll(s Scorer, leads []domain.Lead) []domain.ScoredLead {
	out := make([]domain.ScoredLead, 0, len(leads))
	for _, lead := range leads {
		score, priority, rationale := s.Score(lead)
		out = append(out, domain.ScoredLead{
			Lead:           lead,
			Score:          score,
			Priority:       priority,
			ScoreRationale: rationale,
		})
	}
	return out
}

// Rank sorts descending by score in place. The sort is stable so ties keep
// their original relative order.
func Rank(scored []domain.ScoredLead) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
}

// Summarize counts tiers and computes the mean score (0 for an empty batch).
func Summarize(scored []domain.ScoredLead) Summary {
	var sum Summary
	total := 0
	for _, s := range scored {
		total += s.Score
		switch s.Priority {
		case PriorityHigh:
			sum.High++
		case PriorityMedium:
			sum.Medium++
		default:
			sum.Low++
		}
	}
	if len(scored) > 0 {
		sum.Average = float64(total) / float64(len(scored))
	}
	return sum
}
