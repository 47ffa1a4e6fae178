package rest

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/ktp-forked-repos/ibantools/pkg/iban"
)

const serviceName = "iband"

// HealthHandler provides HTTP health check endpoints.
type HealthHandler struct {
	draining atomic.Bool
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// healthResponse is the JSON body returned by health endpoints.
type healthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// SetDraining makes readiness fail so load balancers stop routing traffic
// before shutdown.
func (h *HealthHandler) SetDraining() {
	h.draining.Store(true)
}

// LivenessHandler returns 200 if the process is alive.
func (h *HealthHandler) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:    "UP",
			Service:   serviceName,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// ReadinessHandler returns 200 if the service is ready to accept traffic.
// It checks that the country registry is loaded.
func (h *HealthHandler) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{"registry": "UP", "shutdown": "UP"}
		ready := true
		if iban.Countries().Len() == 0 {
			checks["registry"] = "DOWN: empty"
			ready = false
		}
		if h.draining.Load() {
			checks["shutdown"] = "DOWN: draining"
			ready = false
		}

		resp := healthResponse{
			Status:    "UP",
			Service:   serviceName,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Checks:    checks,
		}
		code := http.StatusOK
		if !ready {
			resp.Status = "DOWN"
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, resp)
	}
}

// RegisterRoutes registers the health check routes on the provided mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.LivenessHandler())
	mux.HandleFunc("GET /readyz", h.ReadinessHandler())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
