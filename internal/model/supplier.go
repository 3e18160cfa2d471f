package model

// Supplier represents a vendor the office buys from. Each supplier is
// attached to exactly one purchasing category.
type Supplier struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contactInfo"`
	CategoryID  string `json:"categoryId"`
}

// RecordID returns the server-assigned identifier.
func (s Supplier) RecordID() string { return s.ID }

// CreateSupplierRequest creates a supplier.
type CreateSupplierRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contactInfo"`
	CategoryID  string `json:"categoryId"`
}

// UpdateSupplierRequest replaces a supplier's editable fields.
type UpdateSupplierRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contactInfo"`
	CategoryID  string `json:"categoryId"`
}
