package handler

import (
	"net/http"

	"transitflow/internal/delivery/http/response"
	"transitflow/internal/usecase"

	"github.com/labstack/echo/v4"
)

const banner = "TransitFlow backend is live"

// HealthHandler reports liveness and routing readiness
type HealthHandler struct {
	transitUC usecase.TransitUsecase
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(transitUC usecase.TransitUsecase) *HealthHandler {
	return &HealthHandler{transitUC: transitUC}
}

// Index is the liveness banner
func (h *HealthHandler) Index(c echo.Context) error {
	return c.String(http.StatusOK, banner)
}

// HealthCheck reports 503 until the first network snapshot is published.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	if !h.transitUC.IsReady() {
		return response.Error(c, http.StatusServiceUnavailable, "NOT_READY", "Transit network is not built yet", "")
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
