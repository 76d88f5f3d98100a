package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/leadflowhq/leadflow/pkg/database"
	"github.com/leadflowhq/leadflow/pkg/version"
)

// healthHandler handles GET /health. Minimal unauthenticated liveness:
// process up plus a DB ping. External dependencies (provider, LLM, Slack)
// are excluded so their outages never restart this process.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())

	status := "healthy"
	httpStatus := http.StatusOK
	if err != nil {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:   status,
		Version:  version.GitCommit,
		Database: dbHealth,
	})
}

// versionHandler handles GET /api/v1/version.
func (s *Server) versionHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, &VersionResponse{
		App:    version.AppName,
		Commit: version.GitCommit,
		Full:   version.Full(),
	})
}
