// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a backing store is reachable.
type Pinger func() bool

// HealthController reports liveness of the API and its backing stores.
type HealthController struct {
	dbPing    Pinger
	cachePing Pinger
}

// HealthResponse represents the health check response. Only a database
// outage degrades the service; the cache is optional and the popularity
// ranking falls back to database counters without it.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// A nil cachePing reports the cache as disabled rather than down.
func NewHealthController(dbPing, cachePing Pinger) *HealthController {
	return &HealthController{
		dbPing:    dbPing,
		cachePing: cachePing,
	}
}

// Check handles GET /health requests.
func (h *HealthController) Check(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Database:  pingStatus(h.dbPing),
		Cache:     pingStatus(h.cachePing),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	code := http.StatusOK
	if response.Database != "connected" {
		response.Status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, response)
}

func pingStatus(ping Pinger) string {
	if ping == nil {
		return "disabled"
	}
	if ping() {
		return "connected"
	}
	return "disconnected"
}
