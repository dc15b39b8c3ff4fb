package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"velvethome-backend/internal/apperr"
	"velvethome-backend/internal/service"
)

type WebhookHandler struct {
	webhookService service.WebhookService
}

func NewWebhookHandler(webhookService service.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhookService: webhookService}
}

func (h *WebhookHandler) HandleUserEvent(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperr.Validation("Unreadable webhook body.")
	}

	result, err := h.webhookService.HandleUserEvent(ctx, c.Request().Header, body)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	return respondMessage(c, status, result.Message, nil)
}
