package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/Rive3FY/magazzino-app/internal/interfaces/http"
	pkgjwt "github.com/Rive3FY/magazzino-app/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helper di test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testLabel     = "mario.rossi@example.it"
	testIssuer    = "magazzino-test"
	testExpMin    = 60
)

// stubRevoker denylist in memoria per i test.
type stubRevoker struct {
	revoked map[string]bool
}

func (s *stubRevoker) Revoke(_ context.Context, jti string, _ time.Duration) error {
	if s.revoked == nil {
		s.revoked = map[string]bool{}
	}
	s.revoked[jti] = true
	return nil
}

func (s *stubRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	return s.revoked[jti], nil
}

// buildTestApp costruisce un'app Fiber minima con:
//   - AuthMiddleware per il parse del JWT e il caricamento dei Locals
//   - RequireRole per l'autorizzazione
//   - Un handler fittizio che risponde 200 se i middleware passano
func buildTestApp(revoker *stubRevoker, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, revoker),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con il ruolo indicato.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testLabel, testIssuer, testExpMin)
	require.NoError(t, err, "la generazione del token deve riuscire")
	return "Bearer " + tok
}

// doRequest esegue una GET /protected e restituisce la risposta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Test RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: l'utente ha il ruolo richiesto → deve passare (HTTP 200).
func TestRequireRole_AdminAccedeRottaAdmin(t *testing.T) {
	app := buildTestApp(&stubRevoker{}, "admin")
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"l'admin deve poter accedere a una rotta riservata all'admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["role"])
}

// Caso 2: l'operatore è bloccato sulle rotte admin → HTTP 403 Forbidden.
func TestRequireRole_OperatoreBloccatoSuRottaAdmin(t *testing.T) {
	app := buildTestApp(&stubRevoker{}, "admin")
	resp := doRequest(t, app, tokenForRole(t, "operatore"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"l'operatore non deve poter accedere a una rotta riservata all'admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Caso 3: senza header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireRole_SenzaAuthHeader_Restituisce401(t *testing.T) {
	app := buildTestApp(&stubRevoker{}, "admin")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: token non valido / malformato → HTTP 401 INVALID_TOKEN.
func TestRequireRole_TokenNonValido_Restituisce401(t *testing.T) {
	app := buildTestApp(&stubRevoker{}, "admin")
	resp := doRequest(t, app, "Bearer token.non.valido")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: token revocato (logout) → HTTP 401 REVOKED_TOKEN.
func TestAuthMiddleware_TokenRevocato_Restituisce401(t *testing.T) {
	revoker := &stubRevoker{}
	app := buildTestApp(revoker, "admin")

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testLabel, testIssuer, testExpMin)
	require.NoError(t, err)
	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	require.NoError(t, revoker.Revoke(context.Background(), claims.ID, time.Hour))

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "REVOKED_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Test AuthMiddleware — estrazione dei claims
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_EstraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, &stubRevoker{}), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
			"label":   apphttp.GetLabel(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "operatore"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "operatore", body["role"])
	assert.Equal(t, testLabel, body["label"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Test pkg/jwt — integrità generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testLabel, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, testLabel, claims.Label)
	assert.NotEmpty(t, claims.ID, "il token deve avere un jti per la revoca")
}

func TestJWT_Parse_SecretErrato(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testLabel, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("altro-secret", tok)
	assert.Error(t, err, "un token firmato con un altro secret deve essere rifiutato")
}
