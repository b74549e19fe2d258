package httpapi

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"signalboost-engine/internal/config"
	"signalboost-engine/internal/secrets"
)

type SecretsHandler struct {
	CfgVal *atomic.Value // stores config.Config
}

type setHunterKeyReq struct {
	APIKey string `json:"api_key"`
}

func (h SecretsHandler) SetHunterKey(w http.ResponseWriter, r *http.Request) {
	var req setHunterKeyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	cfg := h.CfgVal.Load().(config.Config)
	if err := secrets.SetHunterKey(cfg.Enrichment.KeyringAccount, req.APIKey); err != nil {
		WriteError(w, r, http.StatusBadRequest, "store_failed", "failed to store api key: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
