// Package source holds the provider adapters and their shared seed dataset.
package source

import (
	"os"

	"gopkg.in/yaml.v3"

	"signalboost-engine/internal/domain"
)

// Seeds is the curated dataset the providers fall back on. Live scraping of
// people-search, Crunchbase, and job boards sits behind the same interfaces;
// until those integrations land, each provider serves its slice of this file.
type Seeds struct {
	People  []PersonSeed           `yaml:"people"`
	Funding []domain.FundingRecord `yaml:"funding"`
	Jobs    []domain.JobActivity   `yaml:"jobs"`
}

// PersonSeed is a people-provider row before query context is applied.
type PersonSeed struct {
	Name      string `yaml:"name"`
	Title     string `yaml:"title"`
	Company   string `yaml:"company"`
	Employees any    `yaml:"employees"`
	Revenue   string `yaml:"revenue"`
	Domain    string `yaml:"domain"`
	LinkedIn  string `yaml:"linkedin"`
}

func LoadSeeds(path string) (Seeds, error) {
	var s Seeds
	b, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	err = yaml.Unmarshal(b, &s)
	return s, err
}
