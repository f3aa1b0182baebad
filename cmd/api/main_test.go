package main

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir cambia el directorio de trabajo y lo restaura al terminar el test
// (equivalente a t.Chdir, que requiere Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restaurando directorio de trabajo: %v", err)
		}
	})
}

func testServer(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{App: config.AppConfig{Env: "development", Name: "almacen-api"}}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return newServer(cfg, log)
}

func TestNewServer_ArrancaSinSwaggerJSON(t *testing.T) {
	// Sin docs/swagger.json el servidor debe arrancar igual, sin UI de docs
	chdir(t, t.TempDir())
	app := testServer(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestNewServer_ConSwaggerJSONExponeDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))
	spec := []byte(`{"swagger":"2.0","info":{"title":"Almacén API","version":"1.0"},"paths":{}}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "swagger.json"), spec, 0o644))
	chdir(t, dir)

	app := testServer(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/docs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
