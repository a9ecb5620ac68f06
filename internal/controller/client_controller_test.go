package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatedesk_backend/internal/model"
)

func TestCreateClientReturnsCreated(t *testing.T) {
	app, _ := newTestApp()

	resp := doRequest(t, app, http.MethodPost, "/api/clients", fiberMap{
		"name":  "Ahmed Al Mansouri",
		"email": "ahmed@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var client model.Client
	decodeJSON(t, resp, &client)
	assert.Equal(t, 1, client.ID)
	assert.Equal(t, model.ClientStatusActive, client.Status)
	assert.Nil(t, client.Phone)
}

func TestCreateClientValidationErrors(t *testing.T) {
	app, _ := newTestApp()

	resp := doRequest(t, app, http.MethodPost, "/api/clients", fiberMap{
		"email":      "not-an-email",
		"visaStatus": "nonsense",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error  string `json:"error"`
		Fields []struct {
			Field string `json:"field"`
			Rule  string `json:"rule"`
		} `json:"fields"`
	}
	decodeJSON(t, resp, &body)

	assert.Equal(t, "Invalid client data", body.Error)
	violated := map[string]string{}
	for _, f := range body.Fields {
		violated[f.Field] = f.Rule
	}
	assert.Equal(t, "required", violated["name"])
	assert.Equal(t, "email", violated["email"])
	assert.Equal(t, "oneof", violated["visaStatus"])
}

func TestCreateClientDuplicateEmailConflict(t *testing.T) {
	app, _ := newTestApp()

	resp := doRequest(t, app, http.MethodPost, "/api/clients", fiberMap{
		"name": "Ahmed", "email": "ahmed@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/clients", fiberMap{
		"name": "Impostor", "email": "ahmed@example.com",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestListClientsNewestFirst(t *testing.T) {
	app, _ := newTestApp()

	for _, payload := range []fiberMap{
		{"name": "First", "email": "first@example.com"},
		{"name": "Second", "email": "second@example.com"},
	} {
		resp := doRequest(t, app, http.MethodPost, "/api/clients", payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doRequest(t, app, http.MethodGet, "/api/clients", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var clients []model.Client
	decodeJSON(t, resp, &clients)
	require.Len(t, clients, 2)
	assert.Equal(t, "Second", clients[0].Name)
	assert.Equal(t, "First", clients[1].Name)
}

func TestGetClientNotFound(t *testing.T) {
	app, _ := newTestApp()

	resp := doRequest(t, app, http.MethodGet, "/api/clients/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// A malformed id is just a query that finds nothing.
	resp = doRequest(t, app, http.MethodGet, "/api/clients/abc", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateClientNotFoundLeavesStoreUnchanged(t *testing.T) {
	app, store := newTestApp()

	resp := doRequest(t, app, http.MethodPut, "/api/clients/999", fiberMap{"name": "Nobody"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, store.Clients())
}

func TestUpdateClientPartial(t *testing.T) {
	app, _ := newTestApp()

	resp := doRequest(t, app, http.MethodPost, "/api/clients", fiberMap{
		"name": "Ahmed", "email": "ahmed@example.com", "company": "Mansouri Holdings",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPut, "/api/clients/1", fiberMap{"status": "prospect"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var client model.Client
	decodeJSON(t, resp, &client)
	assert.Equal(t, model.ClientStatusProspect, client.Status)
	assert.Equal(t, "Ahmed", client.Name)
	require.NotNil(t, client.Company)
	assert.Equal(t, "Mansouri Holdings", *client.Company)
}

func TestUpdateClientDuplicateEmailConflict(t *testing.T) {
	app, store := newTestApp()

	for _, payload := range []fiberMap{
		{"name": "Ahmed", "email": "ahmed@example.com"},
		{"name": "Sarah", "email": "sarah@example.com"},
	} {
		resp := doRequest(t, app, http.MethodPost, "/api/clients", payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doRequest(t, app, http.MethodPut, "/api/clients/2", fiberMap{"email": "ahmed@example.com"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	kept, ok := store.GetClient(2)
	require.True(t, ok)
	assert.Equal(t, "sarah@example.com", kept.Email)
}

func TestUpdateClientExplicitNull(t *testing.T) {
	app, _ := newTestApp()

	resp := doRequest(t, app, http.MethodPost, "/api/clients", fiberMap{
		"name": "Ahmed", "email": "ahmed@example.com", "company": "Mansouri Holdings",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// null clears a nullable field; null on a mandatory field is a no-op.
	resp = doRequest(t, app, http.MethodPut, "/api/clients/1", fiberMap{
		"company": nil,
		"name":    nil,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var client model.Client
	decodeJSON(t, resp, &client)
	assert.Nil(t, client.Company)
	assert.Equal(t, "Ahmed", client.Name)
}

func TestDeleteClient(t *testing.T) {
	app, _ := newTestApp()

	resp := doRequest(t, app, http.MethodPost, "/api/clients", fiberMap{
		"name": "Ahmed", "email": "ahmed@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, http.MethodDelete, "/api/clients/1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, app, http.MethodDelete, "/api/clients/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
