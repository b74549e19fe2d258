package httpapi

import (
	"net/http"

	"signalboost-engine/internal/domain"
	"signalboost-engine/internal/rank"
)

type ScoreHandler struct {
	Scorer rank.Scorer
}

type scoreReq struct {
	Leads []map[string]any `json:"leads"`
}

// Leads scores a batch of lead objects and answers with the ranked result
// plus tier counts and the mean score.
func (h ScoreHandler) Leads(w http.ResponseWriter, r *http.Request) {
	var req scoreReq
	if err := decodeBody(w, r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}

	leads := make([]domain.Lead, 0, len(req.Leads))
	for _, m := range req.Leads {
		leads = append(leads, domain.FromMap(m))
	}

	scored := rank.ScoreAll(h.Scorer, leads)
	rank.Rank(scored)

	writeJSON(w, map[string]any{
		"scored_leads": scoredMaps(scored),
		"count":        len(scored),
		"summary":      rank.Summarize(scored),
	})
}

// Rules documents the fixed rule table so dashboard users can see why a lead
// landed where it did.
func (h ScoreHandler) Rules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"scoring_rules": map[string]any{
			"employee_size": map[string]string{
				"10-50":  "10 points - Ideal team size",
				"51-200": "8 points - Scalable team",
				"200+":   "5 points - Established company",
			},
			"revenue": map[string]string{
				"$1M-$2M": "8 points - Strong early-stage revenue",
				"$3M-$4M": "6 points - Mid-growth revenue",
				"$5M+":    "4 points - Healthy revenue",
			},
			"email_verified": "10 points - Verified email found",
			"role": map[string]string{
				"CEO/Founder": "8 points - Top-level decision maker",
				"COO/VP":      "5 points - Senior leadership",
			},
			"funding": map[string]string{
				"$5M+": "10 points - Well-funded startup",
				"$1M+": "5 points - Seed-funded company",
			},
			"keywords": "2 points each - AI, automation, analytics, machine learning",
		},
		"priority_tiers": map[string]string{
			"high":   "80+ points",
			"medium": "60-79 points",
			"low":    "<60 points",
		},
	})
}
