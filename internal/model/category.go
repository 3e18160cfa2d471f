package model

// Category represents a purchasing category.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RecordID returns the server-assigned identifier.
func (c Category) RecordID() string { return c.ID }

// CreateCategoryRequest creates a category.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// UpdateCategoryRequest replaces a category's editable fields.
type UpdateCategoryRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
