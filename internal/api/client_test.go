package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officepro/officepro/internal/model"
	"github.com/officepro/officepro/internal/service"
)

// recordedRequest captures what the client actually sent.
type recordedRequest struct {
	method string
	path   string
	auth   string
	body   []byte
}

func newTestServer(t *testing.T, status int, response any) (*Client, *recordedRequest) {
	t.Helper()

	rec := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.auth = r.Header.Get("X-Demo-Auth")
		body, _ := io.ReadAll(r.Body)
		rec.body = body

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if response != nil {
			_ = json.NewEncoder(w).Encode(response)
		}
	}))
	t.Cleanup(server.Close)

	return NewClient(server.URL, "demo-token", nil), rec
}

func TestClientSendsAuthHeaderOnEveryRequest(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, []model.Budget{})

	_, err := client.Budgets().List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "demo-token", rec.auth)
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/Categories", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]model.Category{})
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL+"/", "demo-token", nil)
	_, err := client.Categories().List(context.Background())
	require.NoError(t, err)
}

func TestClientList(t *testing.T) {
	want := []model.Budget{{GUID: "b-1", Name: "Office", GeneralAmount: 1000, AvailableAmount: 750}}
	client, rec := newTestServer(t, http.StatusOK, want)

	got, err := client.Budgets().List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/api/Budgets", rec.path)
	assert.Equal(t, want, got)
}

func TestClientGetEscapesID(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, model.Supplier{ID: "s 1"})

	_, err := client.Suppliers().Get(context.Background(), "s 1")

	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/api/Suppliers/s 1", rec.path)
}

func TestClientCreatePostsToCollection(t *testing.T) {
	client, rec := newTestServer(t, http.StatusCreated, model.Budget{GUID: "b-1", Name: "Office", GeneralAmount: 1000, AvailableAmount: 1000})

	created, err := client.Budgets().Create(context.Background(), model.CreateBudgetRequest{
		Name:          "Office",
		GeneralAmount: 1000,
	})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/Budgets", rec.path)
	assert.Equal(t, 1000.0, created.AvailableAmount)

	// The create payload never carries the available amount.
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.body, &payload))
	assert.NotContains(t, payload, "availableAmount")
	assert.Equal(t, "Office", payload["name"])
}

func TestClientUpdatePutsToCollection(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, model.Budget{GUID: "b-1"})

	_, err := client.Budgets().Update(context.Background(), model.UpdateBudgetRequest{
		ID:            "b-1",
		Name:          "Office",
		GeneralAmount: 1200,
	})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/api/Budgets", rec.path)

	// The budget identifier travels as "id" on update, not "guid".
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.body, &payload))
	assert.Equal(t, "b-1", payload["id"])
	assert.NotContains(t, payload, "guid")
}

func TestClientDeleteSendsBodyToCollection(t *testing.T) {
	client, rec := newTestServer(t, http.StatusNoContent, nil)

	err := client.Users().Delete(context.Background(), "u-9")

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/api/Users", rec.path)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.body, &payload))
	assert.Equal(t, map[string]string{"id": "u-9"}, payload)
}

func TestClientNotFound(t *testing.T) {
	client, _ := newTestServer(t, http.StatusNotFound, nil)

	_, err := client.Purchases().Get(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrNotFound))
}

func TestClientServerErrorIncludesDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("database unavailable"))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "demo-token", nil)
	_, err := client.Budgets().List(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "database unavailable")
	assert.False(t, errors.Is(err, service.ErrNotFound))
}

func TestClientNumericEnumsOnTheWire(t *testing.T) {
	client, rec := newTestServer(t, http.StatusCreated, model.User{ID: "u-1", Role: model.RoleAnalyst})

	created, err := client.Users().Create(context.Background(), model.CreateUserRequest{
		Name:     "Олена",
		Surname:  "Шевченко",
		Role:     model.RoleAnalyst,
		Email:    "olena@example.com",
		Password: "secret-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, model.RoleAnalyst, created.Role)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.body, &payload))
	assert.Equal(t, float64(1), payload["role"])
}
