package httpapi

import (
	"encoding/json"
	"net/http"

	"signalboost-engine/internal/domain"
)

const maxBodyBytes = 2 << 20

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	_ = enc.Encode(v)
}

func methodMux(m map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := m[r.Method]; ok {
			h(w, r)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// decodeBody reads a JSON request into v with a size cap. Lead payloads are
// schema-less, so the only validation here is "parses as JSON of that shape".
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

// scoredMaps renders scored leads into their wire objects.
func scoredMaps(scored []domain.ScoredLead) []map[string]any {
	out := make([]map[string]any, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.ToMap())
	}
	return out
}

// leadMaps renders plain leads into their wire objects.
func leadMaps(leads []domain.Lead) []map[string]any {
	out := make([]map[string]any, 0, len(leads))
	for _, l := range leads {
		out = append(out, l.ToMap())
	}
	return out
}
