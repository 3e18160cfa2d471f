package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/officepro/officepro/internal/model"
)

const purchasesPath = "/api/Purchases"

// Purchases implements service.PurchaseGateway.
type Purchases struct {
	c *Client
}

// Purchases returns the purchase gateway view of the client.
func (c *Client) Purchases() Purchases { return Purchases{c: c} }

// List returns the full purchase request snapshot.
func (g Purchases) List(ctx context.Context) ([]model.Purchase, error) {
	var out []model.Purchase
	if err := g.c.doJSON(ctx, http.MethodGet, purchasesPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one purchase request by identifier.
func (g Purchases) Get(ctx context.Context, id string) (model.Purchase, error) {
	var out model.Purchase
	err := g.c.doJSON(ctx, http.MethodGet, purchasesPath+"/"+url.PathEscape(id), nil, &out)
	return out, err
}

// Create files a purchase request and returns the canonical record with
// its server-assigned status and creation time.
func (g Purchases) Create(ctx context.Context, req model.CreatePurchaseRequest) (model.Purchase, error) {
	var out model.Purchase
	err := g.c.doJSON(ctx, http.MethodPost, purchasesPath, req, &out)
	return out, err
}

// Update replaces a purchase request's fields, including status, and
// returns the canonical record.
func (g Purchases) Update(ctx context.Context, req model.UpdatePurchaseRequest) (model.Purchase, error) {
	var out model.Purchase
	err := g.c.doJSON(ctx, http.MethodPut, purchasesPath, req, &out)
	return out, err
}

// Delete removes a purchase request. A repeat delete reports
// ErrNotFound.
func (g Purchases) Delete(ctx context.Context, id string) error {
	return g.c.doJSON(ctx, http.MethodDelete, purchasesPath, deleteBody{ID: id}, nil)
}
