package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"estatedesk_backend/internal/routes"
	"estatedesk_backend/internal/storage"
	"estatedesk_backend/pkg/utils/jwt"
)

type fiberMap = map[string]interface{}

func newTestApp() (*fiber.App, *storage.Store) {
	store := storage.New()
	app := fiber.New()
	routes.RegisterRoutes(app, store, jwt.NewManager("test-secret"))
	return app, store
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, headers ...http.Header) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, values := range h {
			for _, value := range values {
				req.Header.Add(key, value)
			}
		}
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func ptr[T any](v T) *T {
	return &v
}
