package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/officepro/officepro/internal/model"
)

const budgetsPath = "/api/Budgets"

// Budgets implements service.BudgetGateway.
type Budgets struct {
	c *Client
}

// Budgets returns the budget gateway view of the client.
func (c *Client) Budgets() Budgets { return Budgets{c: c} }

// List returns the full budget snapshot.
func (g Budgets) List(ctx context.Context) ([]model.Budget, error) {
	var out []model.Budget
	if err := g.c.doJSON(ctx, http.MethodGet, budgetsPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one budget by identifier.
func (g Budgets) Get(ctx context.Context, id string) (model.Budget, error) {
	var out model.Budget
	err := g.c.doJSON(ctx, http.MethodGet, budgetsPath+"/"+url.PathEscape(id), nil, &out)
	return out, err
}

// Create makes a budget and returns the canonical record, including the
// server-initialized available amount.
func (g Budgets) Create(ctx context.Context, req model.CreateBudgetRequest) (model.Budget, error) {
	var out model.Budget
	err := g.c.doJSON(ctx, http.MethodPost, budgetsPath, req, &out)
	return out, err
}

// Update replaces a budget's fields and returns the canonical record.
func (g Budgets) Update(ctx context.Context, req model.UpdateBudgetRequest) (model.Budget, error) {
	var out model.Budget
	err := g.c.doJSON(ctx, http.MethodPut, budgetsPath, req, &out)
	return out, err
}

// Delete removes a budget. A repeat delete reports ErrNotFound.
func (g Budgets) Delete(ctx context.Context, id string) error {
	return g.c.doJSON(ctx, http.MethodDelete, budgetsPath, deleteBody{ID: id}, nil)
}
