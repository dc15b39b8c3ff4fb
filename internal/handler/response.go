package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"velvethome-backend/internal/apperr"
	"velvethome-backend/internal/dto"
	"velvethome-backend/internal/middleware"
	"velvethome-backend/internal/model"
)

// envelope is the uniform response body: {success, message?, data?}.
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	Data       interface{}     `json:"data,omitempty"`
	Pagination *dto.Pagination `json:"pagination,omitempty"`
}

func respondData(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

func respondMessage(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, envelope{Success: true, Message: message, Data: data})
}

// HTTPErrorHandler converts any error escaping a handler into the envelope,
// keeping request handlers free of status bookkeeping.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, _ := httpErr.Message.(string)
		if message == "" {
			message = http.StatusText(httpErr.Code)
		}
		_ = c.JSON(httpErr.Code, envelope{Success: false, Message: message})
		return
	}

	appErr := apperr.From(err)
	if appErr.HTTPStatus() == http.StatusInternalServerError {
		slog.Error("request failed", "method", c.Request().Method, "uri", c.Request().RequestURI, "error", err)
	}
	_ = c.JSON(appErr.HTTPStatus(), envelope{Success: false, Message: appErr.Message})
}

func requireIdentity(c echo.Context) (model.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok || identity.ID == "" {
		return model.Identity{}, apperr.Unauthorized("Authentication required.")
	}
	return identity, nil
}
