package mockapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officepro/officepro/internal/api"
	"github.com/officepro/officepro/internal/model"
	"github.com/officepro/officepro/internal/service"
)

// newTestClient serves a fresh store over httptest and returns the real
// API client pointed at it, exercising both sides of the wire contract.
func newTestClient(t *testing.T) service.Gateways {
	t.Helper()

	store, err := OpenStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	server := httptest.NewServer(NewServer(store, nil).Handler())
	t.Cleanup(server.Close)

	return api.NewClient(server.URL, "demo-token", nil).Gateways()
}

func TestServerRejectsMissingAuth(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	server := httptest.NewServer(NewServer(store, nil).Handler())
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/api/Budgets")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Any non-empty token is accepted.
	gw := api.NewClient(server.URL, "whatever", nil).Gateways()
	_, err = gw.Budgets.List(context.Background())
	assert.NoError(t, err)
}

func TestBudgetLifecycle(t *testing.T) {
	gw := newTestClient(t)
	ctx := context.Background()

	created, err := gw.Budgets.Create(ctx, model.CreateBudgetRequest{
		Name:          "Office supplies",
		GeneralAmount: 1500,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.GUID)
	// The server initializes the available amount from the general one.
	assert.Equal(t, 1500.0, created.AvailableAmount)

	fetched, err := gw.Budgets.Get(ctx, created.GUID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)

	updated, err := gw.Budgets.Update(ctx, model.UpdateBudgetRequest{
		ID:              created.GUID,
		Name:            "Office supplies 2026",
		GeneralAmount:   2000,
		AvailableAmount: 1200,
	})
	require.NoError(t, err)
	assert.Equal(t, created.GUID, updated.GUID)
	assert.Equal(t, "Office supplies 2026", updated.Name)
	assert.Equal(t, 1200.0, updated.AvailableAmount)

	list, err := gw.Budgets.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, gw.Budgets.Delete(ctx, created.GUID))

	list, err = gw.Budgets.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	// A repeat delete reports not found.
	err = gw.Budgets.Delete(ctx, created.GUID)
	assert.True(t, errors.Is(err, service.ErrNotFound))
}

func TestListReturnsNewestFirst(t *testing.T) {
	gw := newTestClient(t)
	ctx := context.Background()

	for _, name := range []string{"Hardware", "Stationery", "Catering"} {
		_, err := gw.Categories.Create(ctx, model.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
	}

	list, err := gw.Categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Catering", list[0].Name)
	assert.Equal(t, "Hardware", list[2].Name)
}

func TestPurchaseServerAssignedFields(t *testing.T) {
	gw := newTestClient(t)
	ctx := context.Background()

	created, err := gw.Purchases.Create(ctx, model.CreatePurchaseRequest{
		UserID:          "u-1",
		CategoryID:      "c-1",
		Title:           "New monitors",
		Description:     "Two 27-inch monitors for the design team",
		RequestedAmount: 800,
	})
	require.NoError(t, err)

	// Status and creation time are server-assigned, whatever the client sent.
	assert.Equal(t, model.StatusPending, created.Status)
	assert.NotEmpty(t, created.CreatedAt)

	updated, err := gw.Purchases.Update(ctx, model.UpdatePurchaseRequest{
		ID:              created.ID,
		UserID:          created.UserID,
		CategoryID:      created.CategoryID,
		Title:           created.Title,
		Description:     created.Description,
		Status:          model.StatusApproved,
		RequestedAmount: created.RequestedAmount,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, updated.Status)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUserPasswordNeverReturned(t *testing.T) {
	gw := newTestClient(t)
	ctx := context.Background()

	created, err := gw.Users.Create(ctx, model.CreateUserRequest{
		Name:     "Олена",
		Surname:  "Шевченко",
		Role:     model.RoleAdmin,
		Email:    "olena@example.com",
		Password: "secret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, created.Role)

	fetched, err := gw.Users.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Олена Шевченко", fetched.FullName())
}

func TestGetUnknownIDReturnsNotFound(t *testing.T) {
	gw := newTestClient(t)
	ctx := context.Background()

	_, err := gw.Suppliers.Get(ctx, "missing")
	assert.True(t, errors.Is(err, service.ErrNotFound))

	_, err = gw.Users.Update(ctx, model.UpdateUserRequest{ID: "missing", Name: "x"})
	assert.True(t, errors.Is(err, service.ErrNotFound))
}

func TestSeedIsIdempotent(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Seed(ctx))
	require.NoError(t, store.Seed(ctx))

	budgets, err := store.ListBudgets(ctx)
	require.NoError(t, err)
	assert.Len(t, budgets, 3)

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}
