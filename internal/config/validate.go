package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate fills defaults on a copy and reports what looks wrong.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	// ---- Defaults ----

	if out.Sources.RequestsPerSec <= 0 {
		out.Sources.RequestsPerSec = 1
	}
	if out.Sources.Burst <= 0 {
		out.Sources.Burst = 2
	}
	if strings.TrimSpace(out.Enrichment.BaseURL) == "" {
		out.Enrichment.BaseURL = "https://api.hunter.io"
	}
	if out.Enrichment.TimeoutSeconds <= 0 {
		out.Enrichment.TimeoutSeconds = 10
	}
	if out.Enrichment.CacheTTLSeconds <= 0 {
		out.Enrichment.CacheTTLSeconds = 300
	}
	if out.Pipeline.FetchTimeoutSeconds <= 0 {
		out.Pipeline.FetchTimeoutSeconds = 30
	}
	if strings.TrimSpace(out.Enrichment.KeyringAccount) == "" {
		out.Enrichment.KeyringAccount = "hunter"
	}

	// ---- Validation rules ----

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if !out.Sources.LinkedIn.Enabled && !out.Sources.Crunchbase.Enabled && !out.Sources.JobBoards.Enabled {
		res.addWarn("no sources enabled; /leads/generate will return empty batches.")
	}

	if out.Sources.RequestsPerSec > 5 {
		res.addWarn("sources.requests_per_sec is high (%.1f) and may trip rate limits.", out.Sources.RequestsPerSec)
	}

	if out.Enrichment.Enabled && out.Enrichment.TimeoutSeconds > 30 {
		res.addWarn("enrichment.timeout_seconds (%d) is long; slow lookups stall the whole batch.", out.Enrichment.TimeoutSeconds)
	}

	if strings.TrimSpace(out.Sources.SeedsFile) == "" {
		res.addErr("sources.seeds_file is required")
	}

	return out, res
}
