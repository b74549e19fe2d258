package rank

import (
	"encoding/json"
	"strconv"
	"strings"

	"signalboost-engine/internal/domain"
)

// Priority tier thresholds. Fixed on purpose; /score/rules documents them.
const (
	highThreshold   = 80
	mediumThreshold = 60

	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// boostKeywords are matched case-insensitively as substrings of each lead
// keyword; the rationale line uses this canonical casing.
var boostKeywords = []string{"AI", "automation", "analytics", "machine learning"}

// RuleScorer applies the fixed additive rule table. Pure and total: any
// lead, however sparse or malformed, gets a score >= 0 and exactly one tier.
// Within a category only the first matching tier fires; categories stack.
type RuleScorer struct{}

func (RuleScorer) Score(lead domain.Lead) (int, string, []string) {
	score := 0
	var rationale []string

	// Team size
	emp := coerceCount(lead.Employees)
	switch {
	case emp >= 10 && emp <= 50:
		score += 10
		rationale = append(rationale, "Ideal team size (10–50)")
	case emp >= 51 && emp <= 200:
		score += 8
		rationale = append(rationale, "Scalable team (51–200)")
	case emp > 200:
		score += 5
		rationale = append(rationale, "Established company (>200)")
	}

	// Revenue. Deliberately crude substring matching against the raw string
	// with commas stripped; check order matters ("$25M" hits the "$2" branch
	// before the "$25" one ever gets a look).
	revenue := strings.ReplaceAll(lead.Revenue, ",", "")
	switch {
	case strings.Contains(revenue, "$1M") || strings.Contains(revenue, "$2"):
		score += 8
		rationale = append(rationale, "Strong early-stage revenue")
	case strings.Contains(revenue, "$3") || strings.Contains(revenue, "$4"):
		score += 6
		rationale = append(rationale, "Mid-growth revenue")
	case strings.Contains(revenue, "$5") || strings.Contains(revenue, "$25"):
		score += 4
		rationale = append(rationale, "Healthy revenue")
	}

	// Verified contact
	if lead.EmailIsVerified() {
		score += 10
		rationale = append(rationale, "Verified email found")
	}

	// Role seniority
	title := strings.ToLower(lead.Title)
	switch {
	case strings.Contains(title, "ceo") || strings.Contains(title, "founder"):
		score += 8
		rationale = append(rationale, "Top-level decision maker")
	case strings.Contains(title, "coo") || strings.Contains(title, "vp"):
		score += 5
		rationale = append(rationale, "Senior leadership")
	}

	// Funding
	funding := coerceAmount(lead.TotalFunding)
	switch {
	case funding > 5_000_000:
		score += 10
		rationale = append(rationale, "Well-funded startup ($5M+)")
	case funding > 1_000_000:
		score += 5
		rationale = append(rationale, "Seed-funded company ($1M+)")
	}

	// Keyword boost, +2 per distinct canonical keyword
	for _, kw := range boostKeywords {
		needle := strings.ToLower(kw)
		for _, have := range lead.Keywords {
			if strings.Contains(strings.ToLower(have), needle) {
				score += 2
				rationale = append(rationale, "Contains keyword: "+kw)
				break
			}
		}
	}

	return score, PriorityFor(score), rationale
}

// PriorityFor maps a score onto its tier.
func PriorityFor(score int) string {
	switch {
	case score >= highThreshold:
		return PriorityHigh
	case score >= mediumThreshold:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// coerceCount turns a loose employee-count value into an int. Strings lose
// their thousands separators first; anything unparseable counts as 0.
func coerceCount(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return int(f)
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(n), ",", "")
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

// coerceAmount turns a loose funding value into a float64; unparseable is 0.
func coerceAmount(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
