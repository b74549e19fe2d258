// Package pipeline runs the end-to-end lead generation flow:
// fetch -> merge -> enrich -> score -> rank.
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"signalboost-engine/internal/domain"
	"signalboost-engine/internal/events"
	"signalboost-engine/internal/merge"
	"signalboost-engine/internal/rank"
)

type PeopleProvider interface {
	Name() string
	FetchLeads(ctx context.Context, q domain.Query) ([]domain.Lead, error)
}

type FundingProvider interface {
	Name() string
	FetchFunding(ctx context.Context, q domain.Query) ([]domain.FundingRecord, error)
}

type JobsProvider interface {
	Name() string
	FetchJobs(ctx context.Context, q domain.Query) ([]domain.JobActivity, error)
}

type Enricher interface {
	EnrichLead(ctx context.Context, lead domain.Lead) domain.Lead
}

type Result struct {
	Leads   []domain.ScoredLead
	Summary rank.Summary
}

// Pipeline wires the providers together. Any provider or the enricher may be
// nil; that stage simply contributes nothing.
type Pipeline struct {
	People   PeopleProvider
	Funding  FundingProvider
	Jobs     JobsProvider
	Enricher Enricher
	Scorer   rank.Scorer
	Hub      *events.Hub
	Log      *zap.Logger

	// FetchTimeout bounds each provider fetch. Zero means 30s.
	FetchTimeout time.Duration
}

// Generate runs one batch. Providers fan out concurrently and are strictly
// best-effort: a failing source logs a warning and contributes an empty
// slice rather than cancelling its siblings or the batch. The scored output
// is ranked descending by score, ties keeping merge order.
func (p *Pipeline) Generate(ctx context.Context, q domain.Query) Result {
	p.publish(events.TypePipelineStarted, map[string]any{"industry": q.Industry, "location": q.Location})

	timeout := p.FetchTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	var (
		leads   []domain.Lead
		funding []domain.FundingRecord
		jobs    []domain.JobActivity
	)

	var g errgroup.Group

	g.Go(func() error {
		if p.People == nil {
			return nil
		}
		fctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		got, err := p.People.FetchLeads(fctx, q)
		if err != nil {
			p.warn(p.People.Name(), err)
			return nil
		}
		leads = got
		return nil
	})

	g.Go(func() error {
		if p.Funding == nil {
			return nil
		}
		fctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		got, err := p.Funding.FetchFunding(fctx, q)
		if err != nil {
			p.warn(p.Funding.Name(), err)
			return nil
		}
		funding = got
		return nil
	})

	g.Go(func() error {
		if p.Jobs == nil {
			return nil
		}
		fctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		got, err := p.Jobs.FetchJobs(fctx, q)
		if err != nil {
			p.warn(p.Jobs.Name(), err)
			return nil
		}
		jobs = got
		return nil
	})

	_ = g.Wait()

	merged := merge.Merge(leads, funding, jobs)

	if p.Enricher != nil {
		for i := range merged {
			merged[i] = p.Enricher.EnrichLead(ctx, merged[i])
		}
	}

	scorer := p.Scorer
	if scorer == nil {
		scorer = rank.RuleScorer{}
	}
	scored := rank.ScoreAll(scorer, merged)
	rank.Rank(scored)
	summary := rank.Summarize(scored)

	p.publish(events.TypeLeadsScored, map[string]any{"count": len(scored)})

	return Result{Leads: scored, Summary: summary}
}

func (p *Pipeline) warn(source string, err error) {
	if p.Log != nil {
		p.Log.Warn("provider fetch failed", zap.String("source", source), zap.Error(err))
	}
}

func (p *Pipeline) publish(typ string, data any) {
	if p.Hub != nil {
		p.Hub.Publish(events.MakeEvent("", typ, 1, data))
	}
}
