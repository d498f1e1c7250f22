package http

import (
	"errors"
	"net/http"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/generated/servers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalContextKey = "auth.principal"

// Principal is the authenticated caller, extracted from the JWT. The role
// comes from the server-verified token, never from the request body.
type Principal struct {
	UserID kernel.UUID
	Role   order.Actor
}

// JWTMiddleware validates the Bearer token on every request and stores the
// resulting Principal in the echo context.
func JWTMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, err := authenticate(ctx.Request().Header.Get("Authorization"), secret)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or missing credentials",
				})
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

func authenticate(header, secret string) (Principal, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return Principal{}, errors.New("missing bearer token")
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Principal{}, errors.New("invalid token")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return Principal{}, err
	}
	userID, err := kernel.UUIDFromString(subject)
	if err != nil {
		return Principal{}, err
	}

	roleClaim, _ := claims["role"].(string)
	role, err := order.ParseActor(roleClaim)
	if err != nil {
		return Principal{}, err
	}

	return Principal{UserID: userID, Role: role}, nil
}

// principalFrom returns the authenticated caller stored by JWTMiddleware.
func principalFrom(ctx echo.Context) (Principal, bool) {
	principal, ok := ctx.Get(principalContextKey).(Principal)
	return principal, ok
}
