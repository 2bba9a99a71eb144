package controller

import "net/http"

// HealthController serves liveness checks. There are no external backends to
// probe, so health is a constant.
type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health handles GET /health
func (h *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
