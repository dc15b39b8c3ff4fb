package middleware

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"velvethome-backend/internal/apperr"
	"velvethome-backend/internal/model"
)

const identityKey = "identity"

type sessionClaims struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	jwt.RegisteredClaims
}

// Auth validates the bearer session token issued by the identity provider and
// stashes the caller's identity on the request context. The application never
// issues tokens itself.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				return apperr.Unauthorized("Authentication required.")
			}

			claims := &sessionClaims{}
			token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, prefix), claims,
				func(t *jwt.Token) (interface{}, error) {
					if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
					}
					return []byte(secret), nil
				})
			if err != nil || !token.Valid || claims.Subject == "" {
				return apperr.Unauthorized("Authentication required.")
			}

			c.Set(identityKey, model.Identity{
				ID:     claims.Subject,
				Email:  claims.Email,
				Name:   claims.Name,
				Avatar: claims.Avatar,
			})
			return next(c)
		}
	}
}

// IdentityFrom returns the identity stored by Auth, if any.
func IdentityFrom(c echo.Context) (model.Identity, bool) {
	identity, ok := c.Get(identityKey).(model.Identity)
	return identity, ok
}
