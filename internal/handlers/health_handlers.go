package handlers

import (
	"net/http"

	"techconsult-api/internal/repositories"

	"github.com/labstack/echo/v4"
)

// HealthHandlers serves the liveness and readiness probes.
type HealthHandlers struct {
	db repositories.DB
}

func NewHealthHandlers(db repositories.DB) *HealthHandlers {
	return &HealthHandlers{db: db}
}

// Health handles GET /health. It reports healthy unconditionally; the
// readiness probe is the one that checks dependencies.
func (h *HealthHandlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "Healthy"})
}

// Ready handles GET /health/ready and verifies the database answers.
func (h *HealthHandlers) Ready(c echo.Context) error {
	if _, err := h.db.Exec(c.Request().Context(), "SELECT 1"); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "not_ready"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
