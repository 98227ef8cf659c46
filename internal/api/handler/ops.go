// Package handler provides HTTP handlers for the crop requirements API.
package handler

import (
	"net/http"
	"time"

	"github.com/farmstack/cropreqs/internal/api/models"
	"github.com/farmstack/cropreqs/internal/api/response"
	"github.com/farmstack/cropreqs/internal/crops"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	crops     *crops.Service
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, cropService *crops.Service) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		crops:     cropService,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check.
// The service is ready once a non-empty crop table is loaded.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	if h.crops == nil || h.crops.Count() == 0 {
		response.ServiceUnavailable(w, r, "crop table not loaded")
		return
	}

	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"crops":  h.crops.Count(),
			"source": h.crops.SourceName(),
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}
