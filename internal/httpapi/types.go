package httpapi

type GenerateStatus struct {
	LastRunAt string `json:"last_run_at"`
	LastOkAt  string `json:"last_ok_at"`
	LastCount int    `json:"last_count"`
	Running   bool   `json:"running"`
}
