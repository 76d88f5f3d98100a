package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/leadflowhq/leadflow/pkg/models"
)

// listContactsHandler handles GET /api/v1/contacts.
func (s *Server) listContactsHandler(c *echo.Context) error {
	filters := models.ContactFilters{Search: c.QueryParam("search")}
	filters.Limit, filters.Offset = parsePage(c)

	result, err := s.contactService.ListContacts(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// getContactHandler handles GET /api/v1/contacts/:id.
func (s *Server) getContactHandler(c *echo.Context) error {
	contactID := c.Param("id")
	if contactID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "contact id is required")
	}

	contact, err := s.contactService.GetContact(c.Request().Context(), contactID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, contact)
}
