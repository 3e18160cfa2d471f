package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officepro/officepro/internal/model"
	"github.com/officepro/officepro/internal/service"
)

type stubBudgets struct {
	err  error
	list []model.Budget
}

func (s stubBudgets) List(_ context.Context) ([]model.Budget, error) { return s.list, s.err }
func (s stubBudgets) Get(_ context.Context, _ string) (model.Budget, error) {
	return model.Budget{}, nil
}
func (s stubBudgets) Create(_ context.Context, _ model.CreateBudgetRequest) (model.Budget, error) {
	return model.Budget{}, nil
}
func (s stubBudgets) Update(_ context.Context, _ model.UpdateBudgetRequest) (model.Budget, error) {
	return model.Budget{}, nil
}
func (s stubBudgets) Delete(_ context.Context, _ string) error { return nil }

type stubPurchases struct {
	err  error
	list []model.Purchase
}

func (s stubPurchases) List(_ context.Context) ([]model.Purchase, error) { return s.list, s.err }
func (s stubPurchases) Get(_ context.Context, _ string) (model.Purchase, error) {
	return model.Purchase{}, nil
}
func (s stubPurchases) Create(_ context.Context, _ model.CreatePurchaseRequest) (model.Purchase, error) {
	return model.Purchase{}, nil
}
func (s stubPurchases) Update(_ context.Context, _ model.UpdatePurchaseRequest) (model.Purchase, error) {
	return model.Purchase{}, nil
}
func (s stubPurchases) Delete(_ context.Context, _ string) error { return nil }

type stubSuppliers struct {
	err  error
	list []model.Supplier
}

func (s stubSuppliers) List(_ context.Context) ([]model.Supplier, error) { return s.list, s.err }
func (s stubSuppliers) Get(_ context.Context, _ string) (model.Supplier, error) {
	return model.Supplier{}, nil
}
func (s stubSuppliers) Create(_ context.Context, _ model.CreateSupplierRequest) (model.Supplier, error) {
	return model.Supplier{}, nil
}
func (s stubSuppliers) Update(_ context.Context, _ model.UpdateSupplierRequest) (model.Supplier, error) {
	return model.Supplier{}, nil
}
func (s stubSuppliers) Delete(_ context.Context, _ string) error { return nil }

type stubUsers struct {
	err  error
	list []model.User
}

func (s stubUsers) List(_ context.Context) ([]model.User, error)         { return s.list, s.err }
func (s stubUsers) Get(_ context.Context, _ string) (model.User, error)  { return model.User{}, nil }
func (s stubUsers) Create(_ context.Context, _ model.CreateUserRequest) (model.User, error) {
	return model.User{}, nil
}
func (s stubUsers) Update(_ context.Context, _ model.UpdateUserRequest) (model.User, error) {
	return model.User{}, nil
}
func (s stubUsers) Delete(_ context.Context, _ string) error { return nil }

func TestComposerLoad(t *testing.T) {
	gw := service.Gateways{
		Budgets: stubBudgets{list: []model.Budget{{GUID: "b-1"}, {GUID: "b-2"}}},
		Purchases: stubPurchases{list: []model.Purchase{
			{ID: "p-1", Status: model.StatusPending, RequestedAmount: 100},
			{ID: "p-2", Status: model.StatusApproved, RequestedAmount: 250},
			{ID: "p-3", Status: model.StatusApproved, RequestedAmount: 50},
			{ID: "p-4", Status: model.StatusRejected, RequestedAmount: 999},
		}},
		Suppliers: stubSuppliers{list: []model.Supplier{{ID: "s-1"}}},
		Users:     stubUsers{list: []model.User{{ID: "u-1"}, {ID: "u-2"}, {ID: "u-3"}}},
	}

	summary, stats, err := NewComposer(gw, nil).Load(context.Background())

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 2, summary.BudgetsTotal)
	assert.Equal(t, 1, summary.PurchasesPending)
	assert.Equal(t, 1, summary.SuppliersCount)
	assert.Equal(t, 3, summary.UsersCount)
	// Only approved purchases count toward spend; rejected never does.
	assert.Equal(t, 300.0, summary.SpendToDate)

	require.Len(t, stats, 4)
	assert.Equal(t, "Active budgets", stats[0].Label)
	assert.Equal(t, 2.0, stats[0].Value)
	assert.Equal(t, 1.0, stats[1].Value)
	assert.Equal(t, 2.0, stats[2].Value)
	assert.Equal(t, 1.0, stats[3].Value)
}

func TestComposerLoadIsAllOrNothing(t *testing.T) {
	gw := service.Gateways{
		Budgets:   stubBudgets{list: []model.Budget{{GUID: "b-1"}}},
		Purchases: stubPurchases{list: []model.Purchase{{ID: "p-1"}}},
		Suppliers: stubSuppliers{err: errors.New("boom")},
		Users:     stubUsers{},
	}

	summary, stats, err := NewComposer(gw, nil).Load(context.Background())

	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Nil(t, stats)
}

func TestComposerLoadEmpty(t *testing.T) {
	gw := service.Gateways{
		Budgets:   stubBudgets{},
		Purchases: stubPurchases{},
		Suppliers: stubSuppliers{},
		Users:     stubUsers{},
	}

	summary, _, err := NewComposer(gw, nil).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, summary.BudgetsTotal)
	assert.Equal(t, 0.0, summary.SpendToDate)
}
