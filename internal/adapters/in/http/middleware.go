package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Claims are the bearer-token claims issued by the auth service. UserID and
// Role drive ownership checks and role scoping in the handlers.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

const claimsContextKey = "authClaims"

// AuthMiddleware verifies HMAC-signed bearer tokens and exposes their claims
// to downstream handlers.
type AuthMiddleware struct {
	secret []byte
}

// NewAuthMiddleware creates the middleware with the shared signing secret.
func NewAuthMiddleware(secret []byte) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

// Bearer rejects requests without a valid bearer token.
func (m *AuthMiddleware) Bearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return ctx.JSON(http.StatusUnauthorized, errorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Missing bearer token",
			})
		}

		claims := &Claims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
			}
			return m.secret, nil
		})
		if err != nil || !parsed.Valid || claims.UserID == "" {
			return ctx.JSON(http.StatusUnauthorized, errorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Invalid bearer token",
			})
		}

		ctx.Set(claimsContextKey, claims)
		return next(ctx)
	}
}

// RequireRole rejects authenticated callers whose role is not in the allowed
// set. Must run after Bearer.
func (m *AuthMiddleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, ok := ClaimsFrom(ctx)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			for _, role := range roles {
				if claims.Role == role {
					return next(ctx)
				}
			}
			return ctx.JSON(http.StatusForbidden, errorResponse{
				Code:    http.StatusForbidden,
				Message: "Insufficient role",
			})
		}
	}
}

// ClaimsFrom returns the verified claims stored by the Bearer middleware.
func ClaimsFrom(ctx echo.Context) (*Claims, bool) {
	claims, ok := ctx.Get(claimsContextKey).(*Claims)
	return claims, ok
}
