package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/aurorabank/lumen/internal/model"
)

// errorResponse is the structured error envelope: {message, code, details}.
type errorResponse struct {
	Message string                  `json:"message"`
	Code    string                  `json:"code"`
	Details *model.OperationRequest `json:"details,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, message string, details *model.OperationRequest) {
	s.writeJSON(w, status, errorResponse{Message: message, Code: code, Details: details})
}
