package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"velvethome-backend/internal/apperr"
	"velvethome-backend/internal/dto"
	"velvethome-backend/internal/service"
)

type LeadHandler struct {
	leadService service.LeadService
}

func NewLeadHandler(leadService service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

func (h *LeadHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LeadRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("Invalid request body.")
	}

	lead, err := h.leadService.Create(ctx, &req)
	if err != nil {
		return err
	}
	return respondMessage(c, http.StatusCreated, "Consultation request submitted successfully.", lead)
}
