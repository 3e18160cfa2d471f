package model

import "fmt"

// PurchaseStatus tracks a purchase request through review. Statuses
// travel as numbers on the wire.
type PurchaseStatus int

const (
	// StatusPending means the request awaits review.
	StatusPending PurchaseStatus = 0
	// StatusApproved means the request was accepted and counts toward spend.
	StatusApproved PurchaseStatus = 1
	// StatusRejected means the request was declined.
	StatusRejected PurchaseStatus = 2
)

// String returns the display label for the status.
func (s PurchaseStatus) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	default:
		return fmt.Sprintf("PurchaseStatus(%d)", int(s))
	}
}

// Valid reports whether the status is one of the known statuses.
func (s PurchaseStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// ParsePurchaseStatus maps a status name to its value.
func ParsePurchaseStatus(v string) (PurchaseStatus, error) {
	switch v {
	case "pending", "Pending":
		return StatusPending, nil
	case "approved", "Approved":
		return StatusApproved, nil
	case "rejected", "Rejected":
		return StatusRejected, nil
	default:
		return 0, fmt.Errorf("unknown purchase status %q", v)
	}
}

// Purchase represents a purchase request filed by a staff member.
type Purchase struct {
	ID              string         `json:"id"`
	UserID          string         `json:"userId"`
	CategoryID      string         `json:"categoryId"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Status          PurchaseStatus `json:"status"`
	RequestedAmount float64        `json:"requestedAmount"`
	CreatedAt       string         `json:"createdAt"`
}

// RecordID returns the server-assigned identifier.
func (p Purchase) RecordID() string { return p.ID }

// CreatePurchaseRequest files a new purchase request. Status and
// creation time are server-assigned.
type CreatePurchaseRequest struct {
	UserID          string  `json:"userId"`
	CategoryID      string  `json:"categoryId"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	RequestedAmount float64 `json:"requestedAmount"`
}

// UpdatePurchaseRequest replaces a purchase request's full field set,
// including its review status.
type UpdatePurchaseRequest struct {
	ID              string         `json:"id"`
	UserID          string         `json:"userId"`
	CategoryID      string         `json:"categoryId"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Status          PurchaseStatus `json:"status"`
	RequestedAmount float64        `json:"requestedAmount"`
}
