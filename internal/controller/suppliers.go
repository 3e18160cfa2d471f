package controller

import (
	"context"
	"log/slog"

	"github.com/officepro/officepro/internal/model"
	"github.com/officepro/officepro/internal/service"
	"github.com/officepro/officepro/internal/validate"
)

// SupplierDraft stages a supplier's editable fields.
type SupplierDraft struct {
	Name        string
	ContactInfo string
	CategoryID  string
}

var supplierRules = validate.RuleSet{
	"name": {
		validate.Required(),
		validate.MaxLength(120),
		validate.Pattern(validate.ResourceName, "contains unsupported characters"),
	},
	"contactInfo": {
		validate.Required(),
		validate.MaxLength(200),
		validate.Pattern(validate.FreeText, "must contain text"),
	},
	"categoryId": {
		validate.Required(),
	},
}

func (d SupplierDraft) values() map[string]string {
	return map[string]string{
		"name":        d.Name,
		"contactInfo": d.ContactInfo,
		"categoryId":  d.CategoryID,
	}
}

// NewSupplierController instantiates the CRUD controller for suppliers.
// categoryOptions feeds the category select from reference data; the
// first option becomes the draft default.
func NewSupplierController(gw service.SupplierGateway, categoryOptions func() []Option, logger *slog.Logger) *Controller[model.Supplier, SupplierDraft] {
	binding := Binding[model.Supplier, SupplierDraft]{
		Name: ResourceSuppliers,
		Fields: []FieldDef{
			{Key: "name", Label: "Name", Kind: FieldText},
			{Key: "contactInfo", Label: "Contact info", Kind: FieldText},
			{Key: "categoryId", Label: "Category", Kind: FieldSelect, Options: categoryOptions},
		},
		NewDraft: func() SupplierDraft {
			return SupplierDraft{CategoryID: firstOption(categoryOptions)}
		},
		DraftFor: func(s model.Supplier) SupplierDraft {
			return SupplierDraft{Name: s.Name, ContactInfo: s.ContactInfo, CategoryID: s.CategoryID}
		},
		Validate: func(d SupplierDraft, _ bool) validate.Errors {
			return validate.Fields(d.values(), supplierRules)
		},
		Get: func(d SupplierDraft, key string) string {
			return d.values()[key]
		},
		Set: func(d SupplierDraft, key, value string) SupplierDraft {
			switch key {
			case "name":
				d.Name = value
			case "contactInfo":
				d.ContactInfo = value
			case "categoryId":
				d.CategoryID = value
			}
			return d
		},
		List: gw.List,
		Create: func(ctx context.Context, d SupplierDraft) (model.Supplier, error) {
			return gw.Create(ctx, model.CreateSupplierRequest{
				Name:        d.Name,
				ContactInfo: d.ContactInfo,
				CategoryID:  d.CategoryID,
			})
		},
		Update: func(ctx context.Context, id string, d SupplierDraft) (model.Supplier, error) {
			return gw.Update(ctx, model.UpdateSupplierRequest{
				ID:          id,
				Name:        d.Name,
				ContactInfo: d.ContactInfo,
				CategoryID:  d.CategoryID,
			})
		},
		Delete: gw.Delete,
	}
	return New(binding, logger)
}
