package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"pharmanet/internal/service"
)

// CatalogHandler handles catalog pages and the autocomplete endpoint.
type CatalogHandler struct {
	catalog service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Home renders the landing page.
func (h *CatalogHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", nil)
}

// List renders the full catalog.
func (h *CatalogHandler) List(c echo.Context) error {
	medicines, err := h.catalog.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "medicine_list.html", echo.Map{
		"Query":        "All Medicines",
		"Medicines":    medicines,
		"Alternatives": nil,
	})
}

// Detail renders all medicines matching the name plus suggested alternatives.
// No match is a valid outcome and renders an empty result page.
func (h *CatalogHandler) Detail(c echo.Context) error {
	name := c.Param("name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	matches, alternatives, err := h.catalog.GetWithAlternatives(c.Request().Context(), name)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "medicine_list.html", echo.Map{
		"Query":        name,
		"Medicines":    matches,
		"Alternatives": alternatives,
	})
}

// Suggest returns matching medicine names as a JSON array.
func (h *CatalogHandler) Suggest(c echo.Context) error {
	names, err := h.catalog.Suggest(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return err
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(http.StatusOK, names)
}
