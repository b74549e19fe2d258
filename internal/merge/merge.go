// Package merge joins the three provider outputs into unified lead profiles.
package merge

import "signalboost-engine/internal/domain"

// Merge copies funding and hiring data onto each lead whose company name has
// a match, keyed by exact string equality (no normalization; a case or
// whitespace difference is silently a non-join). Output order follows lead
// input order, one record per input lead. A missing match is the expected
// common case, not an error: the lead simply keeps those blocks absent so
// downstream scoring treats them as zero.
func Merge(leads []domain.Lead, funding []domain.FundingRecord, jobs []domain.JobActivity) []domain.Lead {
	fundingByCompany := make(map[string]domain.FundingRecord, len(funding))
	for _, f := range funding {
		fundingByCompany[f.Company] = f // last write wins on duplicates
	}
	jobsByCompany := make(map[string]domain.JobActivity, len(jobs))
	for _, j := range jobs {
		jobsByCompany[j.Company] = j
	}

	out := make([]domain.Lead, 0, len(leads))
	for _, lead := range leads {
		if f, ok := fundingByCompany[lead.Company]; ok {
			lead.FundingRounds = f.FundingRounds
			lead.TotalFunding = f.TotalFunding
			lead.LastFundingDate = f.LastFundingDate
			lead.Investors = f.Investors
			lead.FundingStage = f.Stage
		}
		if j, ok := jobsByCompany[lead.Company]; ok {
			lead.OpenRoles = j.Roles
			lead.JobPostings = j.Postings
			lead.RecentHiring = j.RecentActivity
		}
		out = append(out, lead)
	}
	return out
}
