package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"velvethome-backend/internal/service"
)

type ServiceHandler struct {
	catalogService service.CatalogService
}

func NewServiceHandler(catalogService service.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalogService: catalogService}
}

func (h *ServiceHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	services, err := h.catalogService.ListServices(ctx)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, services)
}

func (h *ServiceHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	svc, err := h.catalogService.GetService(ctx, c.Param("serviceId"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, svc)
}
