package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"velvethome-backend/internal/repository"
	"velvethome-backend/internal/service"
)

type ProductHandler struct {
	catalogService service.CatalogService
}

func NewProductHandler(catalogService service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

func (h *ProductHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	filter := repository.ProductFilter{
		Category: c.QueryParam("category"),
		SortBy:   c.QueryParam("sortBy"),
	}
	if v := c.QueryParam("minPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &price
		}
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &price
		}
	}
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))

	products, pagination, err := h.catalogService.ListProducts(ctx, filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{
		Success:    true,
		Data:       products,
		Pagination: pagination,
	})
}

func (h *ProductHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.catalogService.GetProduct(ctx, c.Param("productId"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, product)
}

func (h *ProductHandler) Featured(c echo.Context) error {
	ctx := c.Request().Context()

	featured, err := h.catalogService.FeaturedProducts(ctx)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, featured)
}
