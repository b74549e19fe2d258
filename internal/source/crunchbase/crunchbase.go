// Package crunchbase is the company funding-data provider.
package crunchbase

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

func (p *Provider) Name() string { return "crunchbase" }

// FetchFunding returns the seeded funding rows. A live Crunchbase
// integration would filter by industry/location server-side; the seed
// dataset is small enough to hand downstream as-is, and the merge engine
// discards rows whose company never appears among the leads.
func (p *Provider) FetchFunding(ctx context.Context, q domain.Query) ([]domain.FundingRecord, error) {
	out := make([]domain.FundingRecord, len(p.seeds.Funding))
	copy(out, p.seeds.Funding)
	return out, nil
}
