// Package linkedin is the people/lead provider.
package linkedin

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"signalboost-engine/internal/domain"
	"signalboost-engine/internal/source"
	"signalboost-engine/internal/source/util"
)

type Config struct {
	// SearchScrape turns on the web-search pass that discovers profile URLs.
	SearchScrape bool
	Seeds        []source.PersonSeed
}

type Provider struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
	log     *zap.Logger
}

func New(cfg Config, limiter *util.HostLimiter, log *zap.Logger) *Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &Provider{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 12 * time.Second},
		limiter: limiter,
		log:     log,
	}
}

func (p *Provider) Name() string { return "linkedin" }

// FetchLeads returns one lead per seeded person, stamped with the query's
// industry, location, and keywords. When search scraping is on, discovered
// profile URLs backfill seeds that have none. The scrape is best-effort:
// a failed search never fails the fetch.
func (p *Provider) FetchLeads(ctx context.Context, q domain.Query) ([]domain.Lead, error) {
	var profiles []string
	if p.cfg.SearchScrape {
		profiles = p.searchProfiles(ctx, q)
	}

	out := make([]domain.Lead, 0, len(p.cfg.Seeds))
	for _, seed := range p.cfg.Seeds {
		lead := domain.Lead{
			Name:      seed.Name,
			Title:     seed.Title,
			Company:   seed.Company,
			Industry:  q.Industry,
			Location:  q.Location,
			Employees: seed.Employees,
			Revenue:   seed.Revenue,
			Keywords:  q.Keywords,
			Domain:    seed.Domain,
			LinkedIn:  seed.LinkedIn,
		}
		if lead.LinkedIn == "" && len(profiles) > 0 {
			lead.LinkedIn = profiles[0]
			profiles = profiles[1:]
		}
		out = append(out, lead)
	}
	return out, nil
}

// searchProfiles runs a site-scoped web search and harvests profile links
// from the result page.
func (p *Provider) searchProfiles(ctx context.Context, q domain.Query) []string {
	terms := append([]string{q.Industry, q.Location}, q.Keywords...)
	terms = append(terms, "founder")
	query := "site:linkedin.com/in " + util.SanitizeForSearch(strings.Join(terms, " "))

	u := "https://duckduckgo.com/html/?q=" + url.QueryEscape(query)

	if p.limiter != nil {
		if err := p.limiter.WaitURL(ctx, u); err != nil {
			return nil
		}
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := p.hc.Do(req)
	if err != nil {
		p.log.Warn("profile search failed", zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		p.log.Warn("profile search bad status", zap.Int("status", resp.StatusCode))
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil
	}

	seen := map[string]bool{}
	var profiles []string

	doc.Find("a.result__a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}
		target := decodeRedirect(href)
		if !strings.Contains(strings.ToLower(target), "linkedin.com/in/") {
			return
		}
		if seen[target] {
			return
		}
		seen[target] = true
		profiles = append(profiles, target)
	})

	return profiles
}

func decodeRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	// DDG sometimes uses /l/?uddg=<urlencoded>
	if uddg := u.Query().Get("uddg"); uddg != "" {
		if dec, err := url.QueryUnescape(uddg); err == nil && dec != "" {
			return dec
		}
	}
	return href
}
