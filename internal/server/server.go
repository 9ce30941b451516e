// Package server exposes the simulated banking gateway over HTTP, honoring
// the contract a real backend would: an idempotent snapshot read and a
// non-idempotent operation endpoint returning a receipt plus a fresh
// snapshot.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/aurorabank/lumen/internal/catalog"
	"github.com/aurorabank/lumen/internal/gateway"
	"github.com/aurorabank/lumen/internal/model"
)

// Server wires the gateway simulator to HTTP handlers.
type Server struct {
	sim      *gateway.Simulator
	logger   *zap.Logger
	validate *validator.Validate
	metrics  *metrics
}

// New creates a Server over the given simulator.
func New(sim *gateway.Simulator, logger *zap.Logger) *Server {
	return &Server{
		sim:      sim,
		logger:   logger,
		validate: validator.New(),
		metrics:  newMetrics(),
	}
}

// Router builds the HTTP handler with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.logger))
	r.Use(s.metrics.middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/snapshot", s.handleSnapshot)
		r.Get("/operations", s.handleListOperations)
		r.Post("/operations", s.handlePerformOperation)
		r.Post("/reset", s.handleReset)
	})

	return r
}

// operationRequest is the POST /operations body: a kind plus the loose
// payload union, resolved into a typed payload exactly once, here.
type operationRequest struct {
	Kind    model.OperationKind    `json:"kind" validate:"required"`
	Payload model.OperationRequest `json:"payload"`
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.sim.FetchSnapshot(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "gateway/internal", err.Error(), nil)
		return
	}
	s.writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handlePerformOperation(w http.ResponseWriter, r *http.Request) {
	var body operationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "request/malformed", "invalid request body: "+err.Error(), nil)
		return
	}
	if err := s.validate.Struct(body); err != nil {
		s.writeError(w, http.StatusBadRequest, "request/invalid", "validation error: "+err.Error(), nil)
		return
	}
	if !body.Kind.Valid() {
		s.writeError(w, http.StatusBadRequest, gateway.CodeNotSupported, "Operación no soportada", &body.Payload)
		return
	}
	if body.Payload.Amount.IsNegative() {
		s.writeError(w, http.StatusBadRequest, "request/invalid-amount", "amount must not be negative", &body.Payload)
		return
	}

	payload, err := body.Payload.Payload(body.Kind)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, gateway.CodeNotSupported, err.Error(), &body.Payload)
		return
	}

	result, err := s.sim.PerformOperation(r.Context(), payload)
	if err != nil {
		s.metrics.operations.WithLabelValues(string(body.Kind), outcomeFor(err)).Inc()
		s.writeGatewayError(w, err)
		return
	}

	s.metrics.operations.WithLabelValues(string(body.Kind), "success").Inc()
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListOperations(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, catalog.All())
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.sim.Reset()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeGatewayError maps a gateway failure to the structured wire envelope:
// injected unavailability is 503, unsupported kinds 400, business-rule
// rejections 422.
func (s *Server) writeGatewayError(w http.ResponseWriter, err error) {
	var gerr *model.GatewayError
	if !errors.As(err, &gerr) {
		s.writeError(w, http.StatusInternalServerError, "gateway/internal", err.Error(), nil)
		return
	}

	status := http.StatusUnprocessableEntity
	switch gerr.Code {
	case gateway.CodeUnavailable:
		status = http.StatusServiceUnavailable
	case gateway.CodeNotSupported:
		status = http.StatusBadRequest
	}
	s.writeError(w, status, gerr.Code, gerr.Message, gerr.Details)
}

func outcomeFor(err error) string {
	var gerr *model.GatewayError
	if errors.As(err, &gerr) && gerr.Code == gateway.CodeUnavailable {
		return "unavailable"
	}
	return "rejected"
}
