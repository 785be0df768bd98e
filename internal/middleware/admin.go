package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"context"  // context with timeout for the token lookup
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming
	"time"     // timeout duration for DB calls

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/iliyamo/movie-rental-api/internal/model"
)

// AdminLookup is the single query the gate needs: resolve a presented
// token to the user holding it. *repository.UserRepo satisfies it.
type AdminLookup interface {
	GetByAdminToken(ctx context.Context, token string) (model.User, error)
}

// AdminAuth returns an Echo middleware that guards admin-only routes.
// The Authorization header carries the raw admin token (an optional
// "Bearer " prefix is stripped); the token is compared by exact match
// against the stored users.admin_token value. A missing header yields
// 401; an unknown token, a lookup failure or a non-admin holder all
// yield 403 so callers cannot probe which tokens exist. The admin
// user is stored in the context under "admin_user" for handlers that
// want it.
func AdminAuth(users AdminLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Read the Authorization header. Unlike a JWT there is
			// nothing to parse: the header value IS the secret.
			token := strings.TrimSpace(c.Request().Header.Get("Authorization"))
			token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
			if token == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing admin token"})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			u, err := users.GetByAdminToken(ctx, token)
			if err != nil || !u.IsAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}

			c.Set("admin_user", u)
			return next(c)
		}
	}
}
