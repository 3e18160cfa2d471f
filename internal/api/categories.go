package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/officepro/officepro/internal/model"
)

const categoriesPath = "/api/Categories"

// Categories implements service.CategoryGateway.
type Categories struct {
	c *Client
}

// Categories returns the category gateway view of the client.
func (c *Client) Categories() Categories { return Categories{c: c} }

// List returns the full category snapshot.
func (g Categories) List(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := g.c.doJSON(ctx, http.MethodGet, categoriesPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one category by identifier.
func (g Categories) Get(ctx context.Context, id string) (model.Category, error) {
	var out model.Category
	err := g.c.doJSON(ctx, http.MethodGet, categoriesPath+"/"+url.PathEscape(id), nil, &out)
	return out, err
}

// Create makes a category and returns the canonical record.
func (g Categories) Create(ctx context.Context, req model.CreateCategoryRequest) (model.Category, error) {
	var out model.Category
	err := g.c.doJSON(ctx, http.MethodPost, categoriesPath, req, &out)
	return out, err
}

// Update replaces a category's fields and returns the canonical record.
func (g Categories) Update(ctx context.Context, req model.UpdateCategoryRequest) (model.Category, error) {
	var out model.Category
	err := g.c.doJSON(ctx, http.MethodPut, categoriesPath, req, &out)
	return out, err
}

// Delete removes a category. A repeat delete reports ErrNotFound.
func (g Categories) Delete(ctx context.Context, id string) error {
	return g.c.doJSON(ctx, http.MethodDelete, categoriesPath, deleteBody{ID: id}, nil)
}
