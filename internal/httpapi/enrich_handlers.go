package httpapi

import (
	"context"
	"net/http"

	"signalboost-engine/internal/domain"
)

type EnrichHandler struct {
	Enrich func(ctx context.Context, lead domain.Lead) domain.Lead
}

type enrichReq struct {
	Leads []map[string]any `json:"leads"`
}

// Emails enriches a batch of lead objects with contact metadata. Input order
// is preserved; enrichment failures surface as default contact fields, never
// as an error status.
func (h EnrichHandler) Emails(w http.ResponseWriter, r *http.Request) {
	var req enrichReq
	if err := decodeBody(w, r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}

	enriched := make([]domain.Lead, 0, len(req.Leads))
	for _, m := range req.Leads {
		enriched = append(enriched, h.Enrich(r.Context(), domain.FromMap(m)))
	}

	withEmails, verified := 0, 0
	for _, l := range enriched {
		if l.Email != "" {
			withEmails++
		}
		if l.EmailIsVerified() {
			verified++
		}
	}

	writeJSON(w, map[string]any{
		"enriched_leads": leadMaps(enriched),
		"count":          len(enriched),
		"summary": map[string]int{
			"with_emails":     withEmails,
			"verified_emails": verified,
		},
	})
}

func (h EnrichHandler) Single(w http.ResponseWriter, r *http.Request) {
	var m map[string]any
	if err := decodeBody(w, r, &m); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}

	enriched := h.Enrich(r.Context(), domain.FromMap(m))
	writeJSON(w, map[string]any{"enriched_lead": enriched.ToMap()})
}
