// Package enrich augments leads with contact email metadata from a
// hunter.io-style domain-search service.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"signalboost-engine/internal/domain"
	"signalboost-engine/internal/source/util"
)

const domainSearchPath = "/v2/domain-search"

type Options struct {
	APIKey   string
	BaseURL  string // default https://api.hunter.io
	Timeout  time.Duration
	CacheTTL time.Duration
}

type Client struct {
	opts    Options
	hc      *http.Client
	limiter *util.HostLimiter
	cache   *gocache.Cache
	log     *zap.Logger
}

func New(opts Options, limiter *util.HostLimiter, log *zap.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://api.hunter.io"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		opts:    opts,
		hc:      &http.Client{Timeout: opts.Timeout},
		limiter: limiter,
		cache:   gocache.New(opts.CacheTTL, 2*opts.CacheTTL),
		log:     log,
	}
}

// candidate is the slice of the upstream response we keep: the top-ranked
// email for a domain.
type candidate struct {
	Value        string
	Verification string
	Position     string
	SourceURI    string
}

type domainSearchResponse struct {
	Data struct {
		Emails []struct {
			Value        string `json:"value"`
			Verification string `json:"verification"`
			Position     string `json:"position"`
			Sources      []struct {
				URI string `json:"uri"`
			} `json:"sources"`
		} `json:"emails"`
	} `json:"data"`
}

// EnrichLead returns a copy of the lead with the four contact fields always
// set. Missing domain, missing API key, or any upstream failure (network,
// bad status, malformed body) all resolve to the safe defaults: email null,
// email_verified false. This step never returns an error and never blocks
// lead generation beyond the client timeout.
func (c *Client) EnrichLead(ctx context.Context, lead domain.Lead) domain.Lead {
	out := lead

	if lead.Domain == "" || c.opts.APIKey == "" {
		return withDefaults(out)
	}

	cand, err := c.lookup(ctx, lead.Domain)
	if err != nil {
		c.log.Warn("enrichment failed", zap.String("domain", lead.Domain), zap.Error(err))
		return withDefaults(out)
	}
	if cand == nil {
		return withDefaults(out)
	}

	verified := cand.Verification == "verified"
	out.Email = cand.Value
	out.EmailVerified = &verified
	out.EmailPosition = cand.Position
	out.EmailSource = cand.SourceURI
	return out
}

// EnrichAll enriches a batch sequentially, preserving order.
func (c *Client) EnrichAll(ctx context.Context, leads []domain.Lead) []domain.Lead {
	out := make([]domain.Lead, 0, len(leads))
	for _, lead := range leads {
		out = append(out, c.EnrichLead(ctx, lead))
	}
	return out
}

// lookup hits the domain-search endpoint, caching per-domain results so a
// batch full of the same company doesn't re-bill the same query. A nil
// candidate with nil error means the provider had no emails for the domain.
func (c *Client) lookup(ctx context.Context, dom string) (*candidate, error) {
	if v, ok := c.cache.Get(dom); ok {
		if cand, ok := v.(*candidate); ok {
			return cand, nil
		}
		return nil, nil // cached miss
	}

	u := c.opts.BaseURL + domainSearchPath + "?" + url.Values{
		"domain":  {dom},
		"api_key": {c.opts.APIKey},
	}.Encode()

	if c.limiter != nil {
		if err := c.limiter.WaitURL(ctx, u); err != nil {
			return nil, err
		}
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("domain search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("domain search status %d", resp.StatusCode)
	}

	var parsed domainSearchResponse
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("domain search read: %w", err)
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("domain search decode: %w", err)
	}

	if len(parsed.Data.Emails) == 0 {
		c.cache.Set(dom, false, gocache.DefaultExpiration)
		return nil, nil
	}

	top := parsed.Data.Emails[0]
	cand := &candidate{
		Value:        top.Value,
		Verification: top.Verification,
		Position:     top.Position,
	}
	if len(top.Sources) > 0 {
		cand.SourceURI = top.Sources[0].URI
	}

	c.cache.Set(dom, cand, gocache.DefaultExpiration)
	return cand, nil
}

// Defaults returns the lead with the safe default contact fields set, for
// callers running with enrichment disabled.
func Defaults(lead domain.Lead) domain.Lead {
	return withDefaults(lead)
}

// withDefaults stamps the safe defaults, overwriting any stale contact data
// from an earlier pass.
func withDefaults(lead domain.Lead) domain.Lead {
	verified := false
	lead.Email = ""
	lead.EmailVerified = &verified
	lead.EmailPosition = ""
	lead.EmailSource = ""
	return lead
}
