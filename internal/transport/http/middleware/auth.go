// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"counter-api/internal/api"
	"counter-api/internal/entities"
)

type contextKey string

const identityKey contextKey = "identity"

const identityLocal = "identity"

// Auth verifies the bearer token and threads the caller identity through the
// request context. Routes behind it can rely on Identity resolving.
func Auth(secret string, log *zap.SugaredLogger) fiber.Handler {
	secretBytes := []byte(secret)

	return func(c *fiber.Ctx) error {
		raw := c.Get(fiber.HeaderAuthorization)
		if raw == "" || !strings.HasPrefix(raw, "Bearer ") {
			log.Warnw("missing or malformed authorization header", "path", c.Path())
			return unauthorized(c, "missing or invalid authorization")
		}

		identity, err := parseToken(strings.TrimPrefix(raw, "Bearer "), secretBytes)
		if err != nil {
			log.Warnw("token rejected", "path", c.Path(), "error", err)
			return unauthorized(c, "invalid token")
		}

		c.Locals(identityLocal, identity)
		c.SetUserContext(context.WithValue(c.UserContext(), identityKey, identity))
		return c.Next()
	}
}

// Identity returns the caller identity resolved by Auth.
func Identity(c *fiber.Ctx) (entities.Identity, bool) {
	identity, ok := c.Locals(identityLocal).(entities.Identity)
	return identity, ok
}

// IdentityFromContext returns the caller identity threaded by Auth.
func IdentityFromContext(ctx context.Context) (entities.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(entities.Identity)
	return identity, ok
}

// ParseToken verifies an HS256 token and extracts the identity claims.
func ParseToken(tokenString string, secret []byte) (entities.Identity, error) {
	return parseToken(tokenString, secret)
}

func parseToken(tokenString string, secret []byte) (entities.Identity, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return entities.Identity{}, err
	}
	if !parsed.Valid {
		return entities.Identity{}, errors.New("token is not valid")
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return entities.Identity{}, errors.New("invalid claims type")
	}

	sub, _ := mapClaims["sub"].(string)
	name, _ := mapClaims["name"].(string)
	email, _ := mapClaims["email"].(string)
	if sub == "" {
		return entities.Identity{}, errors.New("missing sub claim")
	}

	return entities.Identity{
		UserID: sub,
		Name:   name,
		Email:  email,
	}, nil
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusUnauthorized).JSON(api.ErrorResponse{
		Error: api.ErrorDetail{Code: api.CodeUnauthorized, Message: msg},
	})
}
