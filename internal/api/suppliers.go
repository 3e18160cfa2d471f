package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/officepro/officepro/internal/model"
)

const suppliersPath = "/api/Suppliers"

// Suppliers implements service.SupplierGateway.
type Suppliers struct {
	c *Client
}

// Suppliers returns the supplier gateway view of the client.
func (c *Client) Suppliers() Suppliers { return Suppliers{c: c} }

// List returns the full supplier snapshot.
func (g Suppliers) List(ctx context.Context) ([]model.Supplier, error) {
	var out []model.Supplier
	if err := g.c.doJSON(ctx, http.MethodGet, suppliersPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one supplier by identifier.
func (g Suppliers) Get(ctx context.Context, id string) (model.Supplier, error) {
	var out model.Supplier
	err := g.c.doJSON(ctx, http.MethodGet, suppliersPath+"/"+url.PathEscape(id), nil, &out)
	return out, err
}

// Create makes a supplier and returns the canonical record.
func (g Suppliers) Create(ctx context.Context, req model.CreateSupplierRequest) (model.Supplier, error) {
	var out model.Supplier
	err := g.c.doJSON(ctx, http.MethodPost, suppliersPath, req, &out)
	return out, err
}

// Update replaces a supplier's fields and returns the canonical record.
func (g Suppliers) Update(ctx context.Context, req model.UpdateSupplierRequest) (model.Supplier, error) {
	var out model.Supplier
	err := g.c.doJSON(ctx, http.MethodPut, suppliersPath, req, &out)
	return out, err
}

// Delete removes a supplier. A repeat delete reports ErrNotFound.
func (g Suppliers) Delete(ctx context.Context, id string) error {
	return g.c.doJSON(ctx, http.MethodDelete, suppliersPath, deleteBody{ID: id}, nil)
}
