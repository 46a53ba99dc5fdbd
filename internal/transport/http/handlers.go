package http

import (
	"encoding/json"
	"net/http"

	"fakeartist/internal/words"
)

// Response is a standard API response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the response for health check
type HealthResponse struct {
	Status  string `json:"status"`
	Clients int    `json:"clients"`
}

// ThemesResponse lists the configured themes in order
type ThemesResponse struct {
	Themes []words.Theme `json:"themes"`
}

// handleHealth handles GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &HealthResponse{
		Status:  "ok",
		Clients: s.session.ClientCount(),
	})
}

// handleState handles GET /api/state
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	view := s.session.View()
	s.sendSuccess(w, &view)
}

// handleNotFound answers unknown API paths
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.sendError(w, http.StatusNotFound, "NOT_FOUND", "Unknown endpoint")
}

// handleThemes handles GET /api/themes
func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &ThemesResponse{
		Themes: s.table.Catalog(),
	})
}

// sendSuccess sends a successful JSON response
func (s *Server) sendSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(&Response{
		Success: true,
		Data:    data,
	}); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

// sendError sends an error JSON response
func (s *Server) sendError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(&Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}
