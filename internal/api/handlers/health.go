package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/voicebridge/voicebridge/internal/pipeline"
)

type HealthHandler struct {
	scratch *pipeline.Scratch
}

func NewHealthHandler(scratch *pipeline.Scratch) *HealthHandler {
	return &HealthHandler{scratch: scratch}
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz verifies the scratch directory is writable, since every
// request needs to place temp files there.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{}

	probe := filepath.Join(h.scratch.Dir(), ".readyz_probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o600); err != nil {
		checks["scratch"] = "unhealthy: " + err.Error()
	} else {
		os.Remove(probe)
		checks["scratch"] = "ok"
	}

	status := http.StatusOK
	for _, v := range checks {
		if v != "ok" {
			status = http.StatusServiceUnavailable
			break
		}
	}

	writeJSON(w, status, map[string]interface{}{"status": statusStr(status), "checks": checks})
}

func statusStr(code int) string {
	if code == http.StatusOK {
		return "ok"
	}
	return "unhealthy"
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
