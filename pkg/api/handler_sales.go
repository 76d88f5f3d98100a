package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/leadflowhq/leadflow/pkg/models"
)

// listSalesHandler handles GET /api/v1/sales.
func (s *Server) listSalesHandler(c *echo.Context) error {
	filters := models.SalesFilters{
		Kind:      c.QueryParam("kind"),
		ContactID: c.QueryParam("contact_id"),
	}
	filters.Limit, filters.Offset = parsePage(c)

	result, err := s.salesService.ListSales(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}
