package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown (needs srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Health
	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	// Leads
	lh := LeadsHandler{
		Generate:     d.Generate,
		FetchFunding: d.FetchFunding,
		FetchJobs:    d.FetchJobs,
		GenStatus:    d.GenStatus,
	}
	mux.HandleFunc("/leads/generate", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: lh.GenerateLeads,
	}))
	mux.HandleFunc("/leads/funding-data", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: lh.FundingData,
	}))
	mux.HandleFunc("/leads/job-postings", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: lh.JobPostings,
	}))
	mux.HandleFunc("/leads/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: lh.Status,
	}))

	// Enrichment
	eh := EnrichHandler{Enrich: d.Enrich}
	mux.HandleFunc("/enrich/emails", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: eh.Emails,
	}))
	mux.HandleFunc("/enrich/single", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: eh.Single,
	}))

	// Scoring
	sh := ScoreHandler{Scorer: d.Scorer}
	mux.HandleFunc("/score/leads", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Leads,
	}))
	mux.HandleFunc("/score/rules", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Rules,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// Secrets (use cfgVal, NOT a snapshot cfg)
	sec := SecretsHandler{CfgVal: d.CfgVal}
	mux.HandleFunc("/api/secrets/hunter", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sec.SetHunterKey,
	}))

	// SSE events
	ev := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ev.ServeSSE,
	}))

	return mux
}
