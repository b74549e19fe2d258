package domain

// Lead is one candidate company/contact record flowing through the pipeline.
// Most fields are optional: a missing value means the source never reported
// it, which downstream code treats differently from an explicit zero. Loose
// numeric fields (employee counts, funding amounts) stay `any` because
// providers send them as numbers or numeric-looking strings interchangeably.
type Lead struct {
	Name     string `mapstructure:"name,omitempty"`
	Title    string `mapstructure:"title,omitempty"`
	Company  string `mapstructure:"company,omitempty"`
	Industry string `mapstructure:"industry,omitempty"`
	Location string `mapstructure:"location,omitempty"`
	Domain   string `mapstructure:"domain,omitempty"`
	LinkedIn string `mapstructure:"linkedin,omitempty"`

	Employees any      `mapstructure:"employees,omitempty"`
	Revenue   string   `mapstructure:"revenue,omitempty"`
	Keywords  []string `mapstructure:"keywords,omitempty"`

	// Funding block. Only present after a merge hit; absence means the
	// funding provider had no record for this company.
	FundingRounds   any      `mapstructure:"funding_rounds,omitempty"`
	TotalFunding    any      `mapstructure:"total_funding,omitempty"`
	LastFundingDate string   `mapstructure:"last_funding_date,omitempty"`
	Investors       []string `mapstructure:"investors,omitempty"`
	FundingStage    string   `mapstructure:"funding_stage,omitempty"`

	// Hiring block, same deal.
	OpenRoles    []string `mapstructure:"open_roles,omitempty"`
	JobPostings  any      `mapstructure:"job_postings_count,omitempty"`
	RecentHiring string   `mapstructure:"recent_hiring_activity,omitempty"`

	// Contact block. EmailVerified doubles as the presence marker: nil means
	// enrichment never ran, non-nil means all four wire keys are emitted
	// (email may still be null when the lookup came up empty).
	Email         string `mapstructure:"email,omitempty"`
	EmailVerified *bool  `mapstructure:"email_verified,omitempty"`
	EmailPosition string `mapstructure:"email_position,omitempty"`
	EmailSource   string `mapstructure:"email_source,omitempty"`

	// Anything a provider sent that we don't have a named field for.
	Extra map[string]any `mapstructure:",remain"`
}

// ScoredLead is a Lead plus the three fields the scoring engine adds.
type ScoredLead struct {
	Lead `mapstructure:",squash"`

	Score          int      `mapstructure:"score"`
	Priority       string   `mapstructure:"priority"`
	ScoreRationale []string `mapstructure:"score_rationale"`
}

// EmailIsVerified reports whether enrichment ran and verified the address.
func (l Lead) EmailIsVerified() bool {
	return l.EmailVerified != nil && *l.EmailVerified
}

// Query is the common input shape for all provider adapters.
type Query struct {
	Industry string   `json:"industry"`
	Location string   `json:"location"`
	Keywords []string `json:"keywords"`
}

// FundingRecord is one row from the funding provider, keyed by company name.
type FundingRecord struct {
	Company         string   `json:"company" yaml:"company"`
	FundingRounds   int      `json:"funding_rounds" yaml:"funding_rounds"`
	TotalFunding    float64  `json:"total_funding" yaml:"total_funding"`
	LastFundingDate string   `json:"last_funding_date" yaml:"last_funding_date"`
	Investors       []string `json:"investors" yaml:"investors"`
	Stage           string   `json:"stage" yaml:"stage"`
}

// JobActivity is one row from the job-postings provider.
type JobActivity struct {
	Company        string   `json:"company" yaml:"company"`
	Roles          []string `json:"roles" yaml:"roles"`
	Postings       int      `json:"postings" yaml:"postings"`
	RecentActivity string   `json:"recent_activity" yaml:"recent_activity"`
}
