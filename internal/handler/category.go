package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"velvethome-backend/internal/service"
)

type CategoryHandler struct {
	catalogService service.CatalogService
}

func NewCategoryHandler(catalogService service.CatalogService) *CategoryHandler {
	return &CategoryHandler{catalogService: catalogService}
}

func (h *CategoryHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	withProducts := c.QueryParam("withProducts") == "true"
	categories, err := h.catalogService.ListCategories(ctx, withProducts)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, categories)
}
