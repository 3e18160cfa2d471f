package controller

import (
	"context"
	"log/slog"

	"github.com/officepro/officepro/internal/model"
	"github.com/officepro/officepro/internal/service"
	"github.com/officepro/officepro/internal/validate"
)

// CategoryDraft stages a category's single editable field.
type CategoryDraft struct {
	Name string
}

var categoryRules = validate.RuleSet{
	"name": {
		validate.Required(),
		validate.MaxLength(120),
		validate.Pattern(validate.ResourceName, "contains unsupported characters"),
	},
}

// NewCategoryController instantiates the CRUD controller for categories.
func NewCategoryController(gw service.CategoryGateway, logger *slog.Logger) *Controller[model.Category, CategoryDraft] {
	binding := Binding[model.Category, CategoryDraft]{
		Name: ResourceCategories,
		Fields: []FieldDef{
			{Key: "name", Label: "Name", Kind: FieldText},
		},
		NewDraft: func() CategoryDraft { return CategoryDraft{} },
		DraftFor: func(c model.Category) CategoryDraft {
			return CategoryDraft{Name: c.Name}
		},
		Validate: func(d CategoryDraft, _ bool) validate.Errors {
			return validate.Fields(map[string]string{"name": d.Name}, categoryRules)
		},
		Get: func(d CategoryDraft, key string) string {
			if key == "name" {
				return d.Name
			}
			return ""
		},
		Set: func(d CategoryDraft, key, value string) CategoryDraft {
			if key == "name" {
				d.Name = value
			}
			return d
		},
		List: gw.List,
		Create: func(ctx context.Context, d CategoryDraft) (model.Category, error) {
			return gw.Create(ctx, model.CreateCategoryRequest{Name: d.Name})
		},
		Update: func(ctx context.Context, id string, d CategoryDraft) (model.Category, error) {
			return gw.Update(ctx, model.UpdateCategoryRequest{ID: id, Name: d.Name})
		},
		Delete: gw.Delete,
	}
	return New(binding, logger)
}
