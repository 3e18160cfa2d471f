// Package model defines the resource records exchanged with the
// procurement back office and the request payloads used to mutate them.
package model

// Budget represents a procurement budget owned by the back office.
type Budget struct {
	GUID            string  `json:"guid"`
	Name            string  `json:"name"`
	GeneralAmount   float64 `json:"generalAmount"`
	AvailableAmount float64 `json:"availableAmount"`
}

// RecordID returns the server-assigned identifier.
func (b Budget) RecordID() string { return b.GUID }

// CreateBudgetRequest creates a budget. The available amount is
// server-computed and therefore absent from the payload.
type CreateBudgetRequest struct {
	Name          string  `json:"name"`
	GeneralAmount float64 `json:"generalAmount"`
}

// UpdateBudgetRequest replaces the full editable field set of a budget.
// The identifier travels as "id" on the wire even though the record
// carries it as "guid".
type UpdateBudgetRequest struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	GeneralAmount   float64 `json:"generalAmount"`
	AvailableAmount float64 `json:"availableAmount"`
}
