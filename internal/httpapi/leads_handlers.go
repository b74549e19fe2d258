package httpapi

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"signalboost-engine/internal/domain"
	"signalboost-engine/internal/pipeline"
)

type LeadsHandler struct {
	Generate     func(ctx context.Context, q domain.Query) pipeline.Result
	FetchFunding func(ctx context.Context, q domain.Query) ([]domain.FundingRecord, error)
	FetchJobs    func(ctx context.Context, q domain.Query) ([]domain.JobActivity, error)
	GenStatus    *atomic.Value // stores GenerateStatus
}

type generateReq struct {
	Industry string   `json:"industry"`
	Location string   `json:"location"`
	Keywords []string `json:"keywords"`
}

// GenerateLeads runs the full fetch/merge/enrich/score pipeline for one
// query and answers with the ranked batch plus tier counts.
func (h LeadsHandler) GenerateLeads(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := decodeBody(w, r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}

	h.markRunning()
	res := h.Generate(r.Context(), domain.Query{
		Industry: req.Industry,
		Location: req.Location,
		Keywords: req.Keywords,
	})
	h.markDone(len(res.Leads))

	writeJSON(w, map[string]any{
		"leads": scoredMaps(res.Leads),
		"count": len(res.Leads),
		"summary": map[string]int{
			"high_priority":   res.Summary.High,
			"medium_priority": res.Summary.Medium,
			"low_priority":    res.Summary.Low,
		},
	})
}

func (h LeadsHandler) FundingData(w http.ResponseWriter, r *http.Request) {
	records, err := h.FetchFunding(r.Context(), queryFromURL(r))
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "provider_error", err.Error())
		return
	}
	writeJSON(w, map[string]any{"funding_data": records, "count": len(records)})
}

func (h LeadsHandler) JobPostings(w http.ResponseWriter, r *http.Request) {
	records, err := h.FetchJobs(r.Context(), queryFromURL(r))
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "provider_error", err.Error())
		return
	}
	writeJSON(w, map[string]any{"job_data": records, "count": len(records)})
}

func (h LeadsHandler) Status(w http.ResponseWriter, r *http.Request) {
	st, _ := h.GenStatus.Load().(GenerateStatus)
	writeJSON(w, st)
}

func (h LeadsHandler) markRunning() {
	st, _ := h.GenStatus.Load().(GenerateStatus)
	st.Running = true
	st.LastRunAt = time.Now().Format(time.RFC3339)
	h.GenStatus.Store(st)
}

func (h LeadsHandler) markDone(count int) {
	st, _ := h.GenStatus.Load().(GenerateStatus)
	st.Running = false
	st.LastCount = count
	st.LastOkAt = time.Now().Format(time.RFC3339)
	h.GenStatus.Store(st)
}

// queryFromURL reads industry/location plus a comma-separated keywords param.
func queryFromURL(r *http.Request) domain.Query {
	q := r.URL.Query()

	var keywords []string
	for _, k := range strings.Split(q.Get("keywords"), ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			keywords = append(keywords, k)
		}
	}

	return domain.Query{
		Industry: q.Get("industry"),
		Location: q.Get("location"),
		Keywords: keywords,
	}
}
