package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"signalboost-engine/internal/domain"
)

const searchBody = `{
  "data": {
    "emails": [
      {
        "value": "elena@neuroai.io",
        "verification": "verified",
        "position": "CEO",
        "sources": [{"uri": "https://neuroai.io/about"}, {"uri": "https://example.com"}]
      },
      {
        "value": "info@neuroai.io",
        "verification": "unknown",
        "position": "",
        "sources": []
      }
    ]
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(Options{APIKey: "test-key", BaseURL: srv.URL}, nil, nil)
	return c, srv
}

func TestEnrichLeadTopCandidate(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("domain"); got != "neuroai.io" {
			t.Errorf("expected domain query neuroai.io, got %q", got)
		}
		if got := r.URL.Query().Get("api_key"); got != "test-key" {
			t.Errorf("expected api_key query, got %q", got)
		}
		w.Write([]byte(searchBody))
	})

	out := c.EnrichLead(context.Background(), domain.Lead{Name: "Elena", Domain: "neuroai.io"})

	if out.Email != "elena@neuroai.io" {
		t.Errorf("expected top candidate email, got %q", out.Email)
	}
	if !out.EmailIsVerified() {
		t.Error("expected verified marker")
	}
	if out.EmailPosition != "CEO" {
		t.Errorf("expected position CEO, got %q", out.EmailPosition)
	}
	if out.EmailSource != "https://neuroai.io/about" {
		t.Errorf("expected first source uri, got %q", out.EmailSource)
	}
}

func TestEnrichLeadMissingDomain(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be hit without a domain")
	})

	out := c.EnrichLead(context.Background(), domain.Lead{Name: "Elena"})

	assertDefaults(t, out)
}

func TestEnrichLeadMissingAPIKey(t *testing.T) {
	c := New(Options{BaseURL: "http://127.0.0.1:0"}, nil, nil)

	out := c.EnrichLead(context.Background(), domain.Lead{Domain: "neuroai.io"})

	assertDefaults(t, out)
}

func TestEnrichLeadUpstreamError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	out := c.EnrichLead(context.Background(), domain.Lead{Domain: "neuroai.io"})

	assertDefaults(t, out)
}

func TestEnrichLeadMalformedBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	out := c.EnrichLead(context.Background(), domain.Lead{Domain: "neuroai.io"})

	assertDefaults(t, out)
}

func TestEnrichLeadNoCandidates(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"emails": []}}`))
	})

	out := c.EnrichLead(context.Background(), domain.Lead{Domain: "neuroai.io"})

	assertDefaults(t, out)
}

func TestEnrichLeadOverwritesStaleContactData(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	stale := true
	out := c.EnrichLead(context.Background(), domain.Lead{
		Domain:        "neuroai.io",
		Email:         "old@neuroai.io",
		EmailVerified: &stale,
		EmailPosition: "CTO",
	})

	assertDefaults(t, out)
}

func TestLookupCachesPerDomain(t *testing.T) {
	var hits atomic.Int64
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(searchBody))
	})

	leads := []domain.Lead{
		{Name: "Elena", Domain: "neuroai.io"},
		{Name: "Marco", Domain: "neuroai.io"},
	}
	out := c.EnrichAll(context.Background(), leads)

	if got := hits.Load(); got != 1 {
		t.Fatalf("expected one upstream call for a repeated domain, got %d", got)
	}
	for i, lead := range out {
		if lead.Email != "elena@neuroai.io" {
			t.Errorf("lead %d: expected cached candidate, got %q", i, lead.Email)
		}
	}
}

func TestLookupCachesMisses(t *testing.T) {
	var hits atomic.Int64
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"data": {"emails": []}}`))
	})

	c.EnrichLead(context.Background(), domain.Lead{Domain: "neuroai.io"})
	out := c.EnrichLead(context.Background(), domain.Lead{Domain: "neuroai.io"})

	if got := hits.Load(); got != 1 {
		t.Fatalf("expected the empty result to be cached, got %d calls", got)
	}
	assertDefaults(t, out)
}

func TestUnverifiedCandidateKeptWithFalseMarker(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"emails": [{"value": "info@datavine.co", "verification": "accept_all", "position": "", "sources": []}]}}`))
	})

	out := c.EnrichLead(context.Background(), domain.Lead{Domain: "datavine.co"})

	if out.Email != "info@datavine.co" {
		t.Fatalf("expected candidate email, got %q", out.Email)
	}
	if out.EmailVerified == nil || *out.EmailVerified {
		t.Fatalf("non-verified status must map to false, got %v", out.EmailVerified)
	}
}

func assertDefaults(t *testing.T, lead domain.Lead) {
	t.Helper()
	if lead.Email != "" {
		t.Errorf("expected empty email, got %q", lead.Email)
	}
	if lead.EmailVerified == nil || *lead.EmailVerified {
		t.Errorf("expected email_verified false, got %v", lead.EmailVerified)
	}
	if lead.EmailPosition != "" || lead.EmailSource != "" {
		t.Errorf("expected empty position/source, got %q %q", lead.EmailPosition, lead.EmailSource)
	}
}
