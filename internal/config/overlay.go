package config

import (
	"os"
	"strconv"
)

// OverlayEnv applies environment overrides on top of the loaded file. Unset
// or malformed values are ignored; env should never kill startup.
func OverlayEnv(cfg *Config) {
	if v := os.Getenv("SIGNALBOOST_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.App.Port = p
		}
	}
	if v := os.Getenv("SIGNALBOOST_JSON_LOG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.App.JSONLog = b
		}
	}
	if v := os.Getenv("SIGNALBOOST_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.App.Debug = b
		}
	}
	if v := os.Getenv("SIGNALBOOST_HUNTER_BASE_URL"); v != "" {
		cfg.Enrichment.BaseURL = v
	}
}
