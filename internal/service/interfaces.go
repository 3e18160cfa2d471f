// Package service defines the gateway contracts between the client and
// the procurement back office. One interface exists per REST resource;
// all of them return canonical server records so callers never have to
// guess at server-computed fields.
package service

import (
	"context"
	"errors"

	"github.com/officepro/officepro/internal/model"
)

// ErrNotFound is returned when the back office has no record with the
// requested identifier, including repeat deletes of an already-deleted id.
var ErrNotFound = errors.New("record not found")

// BudgetGateway covers the /api/Budgets resource.
type BudgetGateway interface {
	List(ctx context.Context) ([]model.Budget, error)
	Get(ctx context.Context, id string) (model.Budget, error)
	Create(ctx context.Context, req model.CreateBudgetRequest) (model.Budget, error)
	Update(ctx context.Context, req model.UpdateBudgetRequest) (model.Budget, error)
	Delete(ctx context.Context, id string) error
}

// CategoryGateway covers the /api/Categories resource.
type CategoryGateway interface {
	List(ctx context.Context) ([]model.Category, error)
	Get(ctx context.Context, id string) (model.Category, error)
	Create(ctx context.Context, req model.CreateCategoryRequest) (model.Category, error)
	Update(ctx context.Context, req model.UpdateCategoryRequest) (model.Category, error)
	Delete(ctx context.Context, id string) error
}

// SupplierGateway covers the /api/Suppliers resource.
type SupplierGateway interface {
	List(ctx context.Context) ([]model.Supplier, error)
	Get(ctx context.Context, id string) (model.Supplier, error)
	Create(ctx context.Context, req model.CreateSupplierRequest) (model.Supplier, error)
	Update(ctx context.Context, req model.UpdateSupplierRequest) (model.Supplier, error)
	Delete(ctx context.Context, id string) error
}

// UserGateway covers the /api/Users resource.
type UserGateway interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id string) (model.User, error)
	Create(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	Update(ctx context.Context, req model.UpdateUserRequest) (model.User, error)
	Delete(ctx context.Context, id string) error
}

// PurchaseGateway covers the /api/Purchases resource.
type PurchaseGateway interface {
	List(ctx context.Context) ([]model.Purchase, error)
	Get(ctx context.Context, id string) (model.Purchase, error)
	Create(ctx context.Context, req model.CreatePurchaseRequest) (model.Purchase, error)
	Update(ctx context.Context, req model.UpdatePurchaseRequest) (model.Purchase, error)
	Delete(ctx context.Context, id string) error
}

// Gateways bundles one gateway per resource for components that fan out
// across the whole back office, like the dashboard composer.
type Gateways struct {
	Budgets    BudgetGateway
	Categories CategoryGateway
	Suppliers  SupplierGateway
	Users      UserGateway
	Purchases  PurchaseGateway
}
