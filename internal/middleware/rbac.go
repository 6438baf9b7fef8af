package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"perpus/internal/errors"
	"perpus/internal/model"
)

// RequirePetugas restricts catalog mutation to staff accounts. Runs after
// RequireSession.
func RequirePetugas() echo.MiddlewareFunc {
	return RequireRole(model.RolePetugas)
}

// RequireRole enforces role-based access control.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := CurrentClaims(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.Envelope{Message: "invalid credential"})
			}
			if _, ok := allowed[claims.Role]; !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.Envelope{
					Message: "user tidak memiliki akses",
				})
			}
			return next(c)
		}
	}
}
