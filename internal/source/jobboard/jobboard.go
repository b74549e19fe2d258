// Package jobboard is the job-postings provider.
package jobboard

import (
	"context"

	"signalboost-engine/internal/domain"
	"signalboost-engine/internal/source"
)

type Provider struct {
	seeds source.Seeds
}

func New(seeds source.Seeds) *Provider {
	return &Provider{seeds: seeds}
}

func (p *Provider) Name() string { return "jobboard" }

// FetchJobs returns the seeded hiring-activity rows keyed by company name.
func (p *Provider) FetchJobs(ctx context.Context, q domain.Query) ([]domain.JobActivity, error) {
	out := make([]domain.JobActivity, len(p.seeds.Jobs))
	copy(out, p.seeds.Jobs)
	return out, nil
}
