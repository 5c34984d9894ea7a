package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"counter-api/internal/entities"
)

const testSecret = "auth-test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestParseTokenRoundtrip(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
		"sub":   "user-1",
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
	})

	identity, err := ParseToken(token, []byte(testSecret))
	require.NoError(t, err)
	require.Equal(t, entities.Identity{
		UserID: "user-1",
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
	}, identity)
}

func TestParseTokenMissingSub(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
		"name": "No Subject",
	})

	_, err := ParseToken(token, []byte(testSecret))
	require.Error(t, err)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS256, "another-secret", jwt.MapClaims{
		"sub": "user-1",
	})

	_, err := ParseToken(token, []byte(testSecret))
	require.Error(t, err)
}

func authApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Use(Auth(testSecret, zap.NewNop().Sugar()))
	app.Get("/", func(c *fiber.Ctx) error {
		identity, ok := Identity(c)
		require.True(t, ok)

		ctxIdentity, ok := IdentityFromContext(c.UserContext())
		require.True(t, ok)
		require.Equal(t, identity, ctxIdentity)

		return c.SendString(identity.UserID)
	})
	return app
}

func TestAuthAcceptsBearerToken(t *testing.T) {
	app := authApp(t)

	token := signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
		"sub": "user-1",
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	app := authApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRejectsForeignSigningMethod(t *testing.T) {
	app := authApp(t)

	// HS512 is signed with the right secret but the wrong method.
	token := signToken(t, jwt.SigningMethodHS512, testSecret, jwt.MapClaims{
		"sub": "user-1",
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
