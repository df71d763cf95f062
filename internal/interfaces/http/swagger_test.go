package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/Rive3FY/magazzino-app/internal/interfaces/http"
)

// Senza il file OpenAPI il middleware non deve essere costruito (il
// costruttore di contrib andrebbe in panic): l'API deve partire comunque.
func TestSwaggerMiddleware_FileMancante(t *testing.T) {
	var mw fiber.Handler
	var ok bool
	assert.NotPanics(t, func() {
		mw, ok = apphttp.SwaggerMiddleware(filepath.Join(t.TempDir(), "swagger.json"), "Magazzino API")
	})
	assert.False(t, ok)
	assert.Nil(t, mw)
}

func TestSwaggerMiddleware_ServeLaUI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swagger.json")
	doc := `{"swagger":"2.0","info":{"title":"Magazzino API","version":"1.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	mw, ok := apphttp.SwaggerMiddleware(path, "Magazzino API")
	require.True(t, ok)
	require.NotNil(t, mw)

	app := fiber.New()
	app.Use(mw)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
