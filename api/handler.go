// Package api exposes the simulator over HTTP and provides a matching client.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/schedsim/sim"
)

// maxBodyBytes bounds a simulate request body.
const maxBodyBytes = 1 << 20

// NewRouter returns the HTTP handler for the simulation service.
// Every request builds its own process records and policy, so handlers share no state.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", healthz)
	r.Get("/policies", listPolicies)
	r.Post("/simulate", simulate)
	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logrus.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   ww.Status(),
			"duration": time.Since(start),
		}).Info("handled request")
	})
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func listPolicies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, PoliciesResponse{Policies: sim.AllPolicies})
}

func simulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		logrus.Debugf("decoding simulate request: %v", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "malformed request body: " + err.Error()})
		return
	}

	res, err := sim.Simulate(req.ToProcesses(), req.Policy, req.Quantum)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SimulateResponse{
		Report:  *res.Report,
		Summary: res.Summary,
		Gantt:   res.Timeline.GanttBars(),
	})
}

// statusFor maps simulator errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, sim.ErrInvalidInput), errors.Is(err, sim.ErrEmptyInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logrus.Errorf("simulation failed: %v", err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Warnf("writing response: %v", err)
	}
}
