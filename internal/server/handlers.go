package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shirou/gopsutil/v3/mem"
)

// HealthResponse is the body returned by GET /health
type HealthResponse struct {
	Status            string  `json:"status"`
	Service           string  `json:"service"`
	Version           string  `json:"version"`
	UptimeSeconds     float64 `json:"uptime_seconds"`
	MemoryUsedPercent float64 `json:"memory_used_percent"`
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:        "healthy",
		Service:       "approuter",
		Version:       s.cfg.Version,
		UptimeSeconds: time.Since(s.started).Seconds(),
	}

	// Memory statistics are informational; a failed read still reports healthy
	memStat, err := mem.VirtualMemory()
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to get memory statistics")
	} else {
		response.MemoryUsedPercent = memStat.UsedPercent
	}

	s.writeJSON(w, http.StatusOK, response)
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
