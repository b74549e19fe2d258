package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"

	"signalboost-engine/internal/domain"
	"signalboost-engine/internal/pipeline"
	"signalboost-engine/internal/rank"
)

func newGenStatus() *atomic.Value {
	v := &atomic.Value{}
	v.Store(GenerateStatus{})
	return v
}

func TestGenerateLeads(t *testing.T) {
	var gotQuery domain.Query
	h := LeadsHandler{
		Generate: func(ctx context.Context, q domain.Query) pipeline.Result {
			gotQuery = q
			return pipeline.Result{
				Leads: []domain.ScoredLead{
					{Lead: domain.Lead{Name: "Elena", Company: "NeuroAI Labs"}, Score: 33, Priority: rank.PriorityLow},
				},
				Summary: rank.Summary{Low: 1, Average: 33},
			}
		},
		GenStatus: newGenStatus(),
	}

	body := `{"industry": "AI", "location": "Berlin", "keywords": ["analytics"]}`
	req := httptest.NewRequest(http.MethodPost, "/leads/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.GenerateLeads(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	want := domain.Query{Industry: "AI", Location: "Berlin", Keywords: []string{"analytics"}}
	if !reflect.DeepEqual(gotQuery, want) {
		t.Errorf("query not forwarded: %+v", gotQuery)
	}

	var resp struct {
		Leads   []map[string]any `json:"leads"`
		Count   int              `json:"count"`
		Summary map[string]int   `json:"summary"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 1 || len(resp.Leads) != 1 {
		t.Fatalf("expected one lead, got %+v", resp)
	}
	if resp.Leads[0]["name"] != "Elena" || resp.Leads[0]["score"] != 33.0 {
		t.Errorf("unexpected lead payload: %v", resp.Leads[0])
	}
	if resp.Summary["low_priority"] != 1 {
		t.Errorf("unexpected summary: %v", resp.Summary)
	}

	st, _ := h.GenStatus.Load().(GenerateStatus)
	if st.Running {
		t.Error("status must not be running after the batch")
	}
	if st.LastCount != 1 || st.LastOkAt == "" {
		t.Errorf("status not updated: %+v", st)
	}
}

func TestGenerateLeadsBadJSON(t *testing.T) {
	h := LeadsHandler{GenStatus: newGenStatus()}

	req := httptest.NewRequest(http.MethodPost, "/leads/generate", strings.NewReader("["))
	rec := httptest.NewRecorder()

	h.GenerateLeads(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestFundingData(t *testing.T) {
	h := LeadsHandler{
		FetchFunding: func(ctx context.Context, q domain.Query) ([]domain.FundingRecord, error) {
			if q.Industry != "AI" || !reflect.DeepEqual(q.Keywords, []string{"ml", "nlp"}) {
				t.Errorf("query params not parsed: %+v", q)
			}
			return []domain.FundingRecord{{Company: "NeuroAI Labs", TotalFunding: 4500000}}, nil
		},
		GenStatus: newGenStatus(),
	}

	req := httptest.NewRequest(http.MethodGet, "/leads/funding-data?industry=AI&keywords=ml,%20nlp", nil)
	rec := httptest.NewRecorder()

	h.FundingData(rec, req)

	var resp struct {
		FundingData []domain.FundingRecord `json:"funding_data"`
		Count       int                    `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 1 || resp.FundingData[0].Company != "NeuroAI Labs" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestJobPostingsProviderError(t *testing.T) {
	h := LeadsHandler{
		FetchJobs: func(ctx context.Context, q domain.Query) ([]domain.JobActivity, error) {
			return nil, context.DeadlineExceeded
		},
		GenStatus: newGenStatus(),
	}

	req := httptest.NewRequest(http.MethodGet, "/leads/job-postings", nil)
	rec := httptest.NewRecorder()

	h.JobPostings(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var apiErr APIError
	if err := json.Unmarshal(rec.Body.Bytes(), &apiErr); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	if apiErr.Error.Code != "provider_error" {
		t.Fatalf("expected provider_error code, got %q", apiErr.Error.Code)
	}
}

func TestStatusEndpoint(t *testing.T) {
	gs := newGenStatus()
	gs.Store(GenerateStatus{LastCount: 4, Running: false, LastOkAt: "2026-08-30T10:00:00Z"})
	h := LeadsHandler{GenStatus: gs}

	req := httptest.NewRequest(http.MethodGet, "/leads/status", nil)
	rec := httptest.NewRecorder()

	h.Status(rec, req)

	var st GenerateStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if st.LastCount != 4 || st.LastOkAt != "2026-08-30T10:00:00Z" {
		t.Fatalf("unexpected status: %+v", st)
	}
}

func TestQueryFromURL(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/leads/funding-data?location=Berlin&keywords=,%20,", nil)
	q := queryFromURL(req)
	if q.Location != "Berlin" {
		t.Errorf("location not parsed: %+v", q)
	}
	if q.Keywords != nil {
		t.Errorf("blank keyword entries must be dropped, got %v", q.Keywords)
	}
}
