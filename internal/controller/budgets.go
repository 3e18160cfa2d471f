package controller

import (
	"context"
	"log/slog"

	"github.com/officepro/officepro/internal/model"
	"github.com/officepro/officepro/internal/service"
	"github.com/officepro/officepro/internal/validate"
)

// BudgetDraft stages a budget's editable fields as the form holds them.
// Amounts stay textual until submit so validation sees exactly what was
// typed.
type BudgetDraft struct {
	Name            string
	GeneralAmount   string
	AvailableAmount string
}

var budgetRules = validate.RuleSet{
	"name": {
		validate.Required(),
		validate.MaxLength(120),
		validate.Pattern(validate.ResourceName, "contains unsupported characters"),
	},
	"generalAmount": {
		validate.Required(),
		validate.Min(0),
		validate.Pattern(validate.Amount, "must be a non-negative number"),
	},
	"availableAmount": {
		validate.Required(),
		validate.Min(0),
		validate.Pattern(validate.Amount, "must be a non-negative number"),
	},
}

func (d BudgetDraft) values() map[string]string {
	return map[string]string{
		"name":            d.Name,
		"generalAmount":   d.GeneralAmount,
		"availableAmount": d.AvailableAmount,
	}
}

// NewBudgetController instantiates the CRUD controller for budgets. The
// available amount is editable but omitted from create payloads; the
// server initializes it.
func NewBudgetController(gw service.BudgetGateway, logger *slog.Logger) *Controller[model.Budget, BudgetDraft] {
	binding := Binding[model.Budget, BudgetDraft]{
		Name: ResourceBudgets,
		Fields: []FieldDef{
			{Key: "name", Label: "Name", Kind: FieldText},
			{Key: "generalAmount", Label: "General amount", Kind: FieldText},
			{Key: "availableAmount", Label: "Available amount", Kind: FieldText},
		},
		NewDraft: func() BudgetDraft {
			return BudgetDraft{GeneralAmount: "0", AvailableAmount: "0"}
		},
		DraftFor: func(b model.Budget) BudgetDraft {
			return BudgetDraft{
				Name:            b.Name,
				GeneralAmount:   formatAmount(b.GeneralAmount),
				AvailableAmount: formatAmount(b.AvailableAmount),
			}
		},
		Validate: func(d BudgetDraft, _ bool) validate.Errors {
			return validate.Fields(d.values(), budgetRules)
		},
		Get: func(d BudgetDraft, key string) string {
			return d.values()[key]
		},
		Set: func(d BudgetDraft, key, value string) BudgetDraft {
			switch key {
			case "name":
				d.Name = value
			case "generalAmount":
				d.GeneralAmount = value
			case "availableAmount":
				d.AvailableAmount = value
			}
			return d
		},
		List: gw.List,
		Create: func(ctx context.Context, d BudgetDraft) (model.Budget, error) {
			return gw.Create(ctx, model.CreateBudgetRequest{
				Name:          d.Name,
				GeneralAmount: amount(d.GeneralAmount),
			})
		},
		Update: func(ctx context.Context, id string, d BudgetDraft) (model.Budget, error) {
			return gw.Update(ctx, model.UpdateBudgetRequest{
				ID:              id,
				Name:            d.Name,
				GeneralAmount:   amount(d.GeneralAmount),
				AvailableAmount: amount(d.AvailableAmount),
			})
		},
		Delete: gw.Delete,
	}
	return New(binding, logger)
}
