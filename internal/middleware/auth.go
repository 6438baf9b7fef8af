package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"perpus/internal/auth"
	"perpus/internal/errors"
)

const claimsKey = "claims"

// JWT parses and verifies the bearer token on protected routes.
func JWT(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return &auth.Claims{}
		},
	})
}

// RequireSession rejects revoked tokens and exposes claims to handlers.
// Runs after JWT.
func RequireSession(tokenStore auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.Envelope{Message: "invalid credential"})
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.Envelope{Message: "invalid credential"})
			}
			if revoked, _ := tokenStore.IsTokenRevoked(c.Request().Context(), claims.ID); revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.Envelope{Message: "token sudah tidak berlaku"})
			}
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// CurrentClaims returns the claims stored by RequireSession.
func CurrentClaims(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*auth.Claims)
	return claims, ok
}
