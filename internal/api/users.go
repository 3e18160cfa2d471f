package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/officepro/officepro/internal/model"
)

const usersPath = "/api/Users"

// Users implements service.UserGateway.
type Users struct {
	c *Client
}

// Users returns the user gateway view of the client.
func (c *Client) Users() Users { return Users{c: c} }

// List returns the full staff account snapshot.
func (g Users) List(ctx context.Context) ([]model.User, error) {
	var out []model.User
	if err := g.c.doJSON(ctx, http.MethodGet, usersPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one user by identifier.
func (g Users) Get(ctx context.Context, id string) (model.User, error) {
	var out model.User
	err := g.c.doJSON(ctx, http.MethodGet, usersPath+"/"+url.PathEscape(id), nil, &out)
	return out, err
}

// Create makes a staff account and returns the canonical record. The
// password travels only here, never on update.
func (g Users) Create(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	var out model.User
	err := g.c.doJSON(ctx, http.MethodPost, usersPath, req, &out)
	return out, err
}

// Update replaces a user's fields and returns the canonical record.
func (g Users) Update(ctx context.Context, req model.UpdateUserRequest) (model.User, error) {
	var out model.User
	err := g.c.doJSON(ctx, http.MethodPut, usersPath, req, &out)
	return out, err
}

// Delete removes a staff account. A repeat delete reports ErrNotFound.
func (g Users) Delete(ctx context.Context, id string) error {
	return g.c.doJSON(ctx, http.MethodDelete, usersPath, deleteBody{ID: id}, nil)
}
