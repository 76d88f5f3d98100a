package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
)

// defaultAnalyticsWindow bounds the sales aggregates when no since param
// is given.
const defaultAnalyticsWindow = 24 * time.Hour

// funnelAnalyticsHandler handles GET /api/v1/analytics/funnel: per-stage
// thread counts, takeover count, and sales totals over a since window.
func (s *Server) funnelAnalyticsHandler(c *echo.Context) error {
	funnelID := c.QueryParam("funnel_id")
	if funnelID == "" {
		funnelID = s.cfg.Funnels.DefaultFunnel
	}

	stages := s.engine.Stages(funnelID)
	if len(stages) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "funnel not found")
	}

	since := time.Now().Add(-defaultAnalyticsWindow)
	if v := c.QueryParam("since"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid since: must be RFC3339")
		}
		since = t
	}

	ctx := c.Request().Context()
	analytics, err := s.threadService.FunnelAnalytics(ctx, funnelID, stages)
	if err != nil {
		return mapServiceError(err)
	}

	count, total, err := s.salesService.TotalsSince(ctx, since)
	if err != nil {
		return mapServiceError(err)
	}
	analytics.SalesCount = count
	analytics.SalesValue = total

	return c.JSON(http.StatusOK, analytics)
}
