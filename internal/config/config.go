package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int  `yaml:"port" json:"port"`
		JSONLog bool `yaml:"json_log" json:"json_log"`
		Debug   bool `yaml:"debug" json:"debug"`
	} `yaml:"app" json:"app"`

	Sources struct {
		SeedsFile      string  `yaml:"seeds_file" json:"seeds_file"`
		RequestsPerSec float64 `yaml:"requests_per_sec" json:"requests_per_sec"`
		Burst          int     `yaml:"burst" json:"burst"`

		LinkedIn struct {
			Enabled      bool `yaml:"enabled" json:"enabled"`
			SearchScrape bool `yaml:"search_scrape" json:"search_scrape"`
		} `yaml:"linkedin" json:"linkedin"`

		Crunchbase struct {
			Enabled bool `yaml:"enabled" json:"enabled"`
		} `yaml:"crunchbase" json:"crunchbase"`

		JobBoards struct {
			Enabled bool `yaml:"enabled" json:"enabled"`
		} `yaml:"job_boards" json:"job_boards"`
	} `yaml:"sources" json:"sources"`

	Enrichment struct {
		Enabled         bool   `yaml:"enabled" json:"enabled"`
		BaseURL         string `yaml:"base_url" json:"base_url"`
		TimeoutSeconds  int    `yaml:"timeout_seconds" json:"timeout_seconds"`
		CacheTTLSeconds int    `yaml:"cache_ttl_seconds" json:"cache_ttl_seconds"`
		KeyringAccount  string `yaml:"keyring_account" json:"keyring_account"`
	} `yaml:"enrichment" json:"enrichment"`

	Pipeline struct {
		FetchTimeoutSeconds int `yaml:"fetch_timeout_seconds" json:"fetch_timeout_seconds"`
	} `yaml:"pipeline" json:"pipeline"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
