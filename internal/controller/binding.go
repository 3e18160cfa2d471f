package controller

import (
	"context"
	"strconv"

	"github.com/officepro/officepro/internal/validate"
)

// Resource names used to address reconciliation messages.
const (
	ResourceBudgets    = "budgets"
	ResourceCategories = "categories"
	ResourceSuppliers  = "suppliers"
	ResourceUsers      = "users"
	ResourcePurchases  = "purchases"
)

// FieldKind tells the form how to render a field.
type FieldKind int

const (
	// FieldText is a free-form text input.
	FieldText FieldKind = iota
	// FieldSecret is a text input with masked echo.
	FieldSecret
	// FieldSelect picks one value from a fixed or reference-data list.
	FieldSelect
)

// Option is one choice of a select field.
type Option struct {
	Label string
	Value string
}

// FieldDef describes one form field of a resource draft.
type FieldDef struct {
	Options    func() []Option
	Key        string
	Label      string
	Kind       FieldKind
	CreateOnly bool
}

// Binding adapts one resource type to the generic controller: draft
// construction, validation, field access for the form, and the gateway
// calls that build typed payloads from the draft.
type Binding[R Record, D any] struct {
	NewDraft func() D
	DraftFor func(R) D
	Validate func(d D, editing bool) validate.Errors
	Get      func(d D, key string) string
	Set      func(d D, key, value string) D
	List     func(ctx context.Context) ([]R, error)
	Create   func(ctx context.Context, d D) (R, error)
	Update   func(ctx context.Context, id string, d D) (R, error)
	Delete   func(ctx context.Context, id string) error
	Name     string
	Fields   []FieldDef
}

// amount converts a validated amount field to its numeric value.
func amount(s string) float64 {
	n, _ := strconv.ParseFloat(s, 64)
	return n
}

// formatAmount renders a server amount back into form text.
func formatAmount(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// firstOption returns the first selectable value, or "" when the
// reference list is empty.
func firstOption(options func() []Option) string {
	if options == nil {
		return ""
	}
	opts := options()
	if len(opts) == 0 {
		return ""
	}
	return opts[0].Value
}
