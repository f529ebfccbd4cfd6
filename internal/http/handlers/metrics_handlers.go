package handlers

import (
	"net/http"
)

// GetDashboardMetrics godoc
// @Summary Dashboard metrics
// @Tags metrics
// @Produce json
// @Success 200 {object} MetricsResponse
// @Failure 401 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/metrics/dashboard [get]
// @Security BearerAuth
func (s *Server) GetDashboardMetrics(w http.ResponseWriter, r *http.Request) {
	m, err := s.Metrics.GetDashboardMetrics(r.Context())
	if err != nil {
		s.internalError(w, r, "dashboard metrics", "Failed to fetch metrics", err)
		return
	}
	s.respond(w, http.StatusOK, MetricsResponse{Status: true, Metrics: m})
}
