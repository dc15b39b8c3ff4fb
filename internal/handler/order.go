package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"velvethome-backend/internal/apperr"
	"velvethome-backend/internal/dto"
	"velvethome-backend/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	orders, err := h.orderService.ListOrders(ctx, identity)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, orders)
}

func (h *OrderHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("Invalid request body.")
	}

	result, err := h.orderService.Checkout(ctx, identity, &req)
	if err != nil {
		return err
	}
	return respondMessage(c, http.StatusCreated, "Order created, awaiting payment.", result)
}

func (h *OrderHandler) VerifyPayment(c echo.Context) error {
	ctx := c.Request().Context()

	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req dto.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("Invalid request body.")
	}

	result, err := h.orderService.VerifyPayment(ctx, identity, &req)
	if err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "Payment verified and order finalized successfully.", result)
}
