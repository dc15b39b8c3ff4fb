package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"velvethome-backend/internal/apperr"
	"velvethome-backend/internal/dto"
	"velvethome-backend/internal/service"
)

type WishlistHandler struct {
	wishlistService service.WishlistService
}

func NewWishlistHandler(wishlistService service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

func (h *WishlistHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	products, err := h.wishlistService.Get(ctx, identity)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, products)
}

func (h *WishlistHandler) Toggle(c echo.Context) error {
	ctx := c.Request().Context()

	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req dto.WishlistRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("Invalid request body.")
	}

	wishlist, err := h.wishlistService.Toggle(ctx, identity, &req)
	if err != nil {
		return err
	}

	message := "Product added to wishlist."
	if req.Action == service.WishlistActionRemove {
		message = "Product removed from wishlist."
	}
	return respondMessage(c, http.StatusOK, message, wishlist)
}
