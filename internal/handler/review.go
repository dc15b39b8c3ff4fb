package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"velvethome-backend/internal/apperr"
	"velvethome-backend/internal/dto"
	"velvethome-backend/internal/service"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) AddProductReview(c echo.Context) error {
	ctx := c.Request().Context()

	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req dto.AddReviewRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("Invalid request body.")
	}

	review, err := h.reviewService.AddProductReview(ctx, identity, c.Param("productId"), &req)
	if err != nil {
		return err
	}
	return respondMessage(c, http.StatusCreated, "Review added successfully.", review)
}

func (h *ReviewHandler) DeleteProductReview(c echo.Context) error {
	ctx := c.Request().Context()

	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req dto.DeleteReviewRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("Invalid request body.")
	}

	if err := h.reviewService.DeleteProductReview(ctx, identity, c.Param("productId"), req.ReviewID); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "Review deleted successfully.", nil)
}

func (h *ReviewHandler) AddServiceReview(c echo.Context) error {
	ctx := c.Request().Context()

	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req dto.AddReviewRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("Invalid request body.")
	}

	review, err := h.reviewService.AddServiceReview(ctx, identity, c.Param("serviceId"), &req)
	if err != nil {
		return err
	}
	return respondMessage(c, http.StatusCreated, "Review added successfully.", review)
}

func (h *ReviewHandler) DeleteServiceReview(c echo.Context) error {
	ctx := c.Request().Context()

	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req dto.DeleteReviewRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("Invalid request body.")
	}

	if err := h.reviewService.DeleteServiceReview(ctx, identity, c.Param("serviceId"), req.ReviewID); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "Review deleted successfully.", nil)
}
