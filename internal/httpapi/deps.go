package httpapi

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"signalboost-engine/internal/config"
	"signalboost-engine/internal/domain"
	"signalboost-engine/internal/events"
	"signalboost-engine/internal/pipeline"
	"signalboost-engine/internal/rank"
)

type Deps struct {
	Hub *events.Hub
	Log *zap.Logger

	// Atomic stores
	CfgVal    *atomic.Value // stores config.Config
	GenStatus *atomic.Value // stores httpapi.GenerateStatus

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Pipeline entrypoints (inject for testability)
	Generate     func(ctx context.Context, q domain.Query) pipeline.Result
	FetchFunding func(ctx context.Context, q domain.Query) ([]domain.FundingRecord, error)
	FetchJobs    func(ctx context.Context, q domain.Query) ([]domain.JobActivity, error)
	Enrich       func(ctx context.Context, lead domain.Lead) domain.Lead

	Scorer rank.Scorer
}
