package domain

import (
	"github.com/mitchellh/mapstructure"
)

// FromMap builds a Lead out of a schema-less wire object. Keys we have named
// fields for are decoded; everything else lands in Extra. Decoding is total
// and field-local: mapstructure reports decode errors per field but still
// populates every field that parsed, so a record with one malformed value
// keeps all its other fields and the bad one stays at its zero value.
func FromMap(m map[string]any) Lead {
	var lead Lead
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &lead,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Lead{Extra: m}
	}
	_ = dec.Decode(m)
	if len(lead.Extra) == 0 {
		lead.Extra = nil
	}
	return lead
}

// ToMap renders the lead back into its wire shape. Absent blocks stay absent:
// a lead that never matched a funding record has no funding_rounds key at
// all, and the contact keys only appear once enrichment has run.
func (l Lead) ToMap() map[string]any {
	m := make(map[string]any, 16)
	for k, v := range l.Extra {
		m[k] = v
	}

	putStr(m, "name", l.Name)
	putStr(m, "title", l.Title)
	putStr(m, "company", l.Company)
	putStr(m, "industry", l.Industry)
	putStr(m, "location", l.Location)
	putStr(m, "domain", l.Domain)
	putStr(m, "linkedin", l.LinkedIn)

	if l.Employees != nil {
		m["employees"] = l.Employees
	}
	putStr(m, "revenue", l.Revenue)
	if l.Keywords != nil {
		m["keywords"] = l.Keywords
	}

	if l.FundingRounds != nil {
		m["funding_rounds"] = l.FundingRounds
	}
	if l.TotalFunding != nil {
		m["total_funding"] = l.TotalFunding
	}
	putStr(m, "last_funding_date", l.LastFundingDate)
	if l.Investors != nil {
		m["investors"] = l.Investors
	}
	putStr(m, "funding_stage", l.FundingStage)

	if l.OpenRoles != nil {
		m["open_roles"] = l.OpenRoles
	}
	if l.JobPostings != nil {
		m["job_postings_count"] = l.JobPostings
	}
	putStr(m, "recent_hiring_activity", l.RecentHiring)

	if l.EmailVerified != nil {
		m["email"] = nullable(l.Email)
		m["email_verified"] = *l.EmailVerified
		m["email_position"] = nullable(l.EmailPosition)
		m["email_source"] = nullable(l.EmailSource)
	}

	return m
}

// ToMap appends the scoring fields to the lead's wire shape. The rationale is
// always a list, never null, so callers can rely on iterating it.
func (s ScoredLead) ToMap() map[string]any {
	m := s.Lead.ToMap()
	m["score"] = s.Score
	m["priority"] = s.Priority
	rationale := s.ScoreRationale
	if rationale == nil {
		rationale = []string{}
	}
	m["score_rationale"] = rationale
	return m
}

func putStr(m map[string]any, k, v string) {
	if v != "" {
		m[k] = v
	}
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
