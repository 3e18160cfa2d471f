package controller

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/officepro/officepro/internal/model"
	"github.com/officepro/officepro/internal/service"
	"github.com/officepro/officepro/internal/validate"
)

// PurchaseDraft stages a purchase request's editable fields. The status
// select is shown in both modes but only update payloads carry it; the
// server assigns Pending on create.
type PurchaseDraft struct {
	Title           string
	Description     string
	RequestedAmount string
	UserID          string
	CategoryID      string
	Status          model.PurchaseStatus
}

var purchaseRules = validate.RuleSet{
	"title": {
		validate.Required(),
		validate.MaxLength(120),
		validate.Pattern(validate.ResourceName, "contains unsupported characters"),
	},
	"description": {
		validate.Required(),
		validate.MaxLength(500),
		validate.Pattern(validate.FreeText, "must contain text"),
	},
	"requestedAmount": {
		validate.Required(),
		validate.Min(0),
		validate.Pattern(validate.Amount, "must be a non-negative number"),
	},
	"userId": {
		validate.Required(),
	},
	"categoryId": {
		validate.Required(),
	},
	"status": {
		validate.Required(),
	},
}

func (d PurchaseDraft) values() map[string]string {
	return map[string]string{
		"title":           d.Title,
		"description":     d.Description,
		"requestedAmount": d.RequestedAmount,
		"userId":          d.UserID,
		"categoryId":      d.CategoryID,
		"status":          strconv.Itoa(int(d.Status)),
	}
}

// StatusOptions lists the selectable purchase statuses.
func StatusOptions() []Option {
	return []Option{
		{Label: model.StatusPending.String(), Value: strconv.Itoa(int(model.StatusPending))},
		{Label: model.StatusApproved.String(), Value: strconv.Itoa(int(model.StatusApproved))},
		{Label: model.StatusRejected.String(), Value: strconv.Itoa(int(model.StatusRejected))},
	}
}

// NewPurchaseController instantiates the CRUD controller for purchase
// requests. userOptions and categoryOptions feed the reference selects;
// the first entry of each becomes the draft default.
func NewPurchaseController(gw service.PurchaseGateway, userOptions, categoryOptions func() []Option, logger *slog.Logger) *Controller[model.Purchase, PurchaseDraft] {
	binding := Binding[model.Purchase, PurchaseDraft]{
		Name: ResourcePurchases,
		Fields: []FieldDef{
			{Key: "title", Label: "Title", Kind: FieldText},
			{Key: "description", Label: "Description", Kind: FieldText},
			{Key: "requestedAmount", Label: "Requested amount", Kind: FieldText},
			{Key: "userId", Label: "Requested by", Kind: FieldSelect, Options: userOptions},
			{Key: "categoryId", Label: "Category", Kind: FieldSelect, Options: categoryOptions},
			{Key: "status", Label: "Status", Kind: FieldSelect, Options: StatusOptions},
		},
		NewDraft: func() PurchaseDraft {
			return PurchaseDraft{
				RequestedAmount: "0",
				UserID:          firstOption(userOptions),
				CategoryID:      firstOption(categoryOptions),
				Status:          model.StatusPending,
			}
		},
		DraftFor: func(p model.Purchase) PurchaseDraft {
			return PurchaseDraft{
				Title:           p.Title,
				Description:     p.Description,
				RequestedAmount: formatAmount(p.RequestedAmount),
				UserID:          p.UserID,
				CategoryID:      p.CategoryID,
				Status:          p.Status,
			}
		},
		Validate: func(d PurchaseDraft, _ bool) validate.Errors {
			return validate.Fields(d.values(), purchaseRules)
		},
		Get: func(d PurchaseDraft, key string) string {
			return d.values()[key]
		},
		Set: func(d PurchaseDraft, key, value string) PurchaseDraft {
			switch key {
			case "title":
				d.Title = value
			case "description":
				d.Description = value
			case "requestedAmount":
				d.RequestedAmount = value
			case "userId":
				d.UserID = value
			case "categoryId":
				d.CategoryID = value
			case "status":
				if n, err := strconv.Atoi(value); err == nil && model.PurchaseStatus(n).Valid() {
					d.Status = model.PurchaseStatus(n)
				}
			}
			return d
		},
		List: gw.List,
		Create: func(ctx context.Context, d PurchaseDraft) (model.Purchase, error) {
			return gw.Create(ctx, model.CreatePurchaseRequest{
				UserID:          d.UserID,
				CategoryID:      d.CategoryID,
				Title:           d.Title,
				Description:     d.Description,
				RequestedAmount: amount(d.RequestedAmount),
			})
		},
		Update: func(ctx context.Context, id string, d PurchaseDraft) (model.Purchase, error) {
			return gw.Update(ctx, model.UpdatePurchaseRequest{
				ID:              id,
				UserID:          d.UserID,
				CategoryID:      d.CategoryID,
				Title:           d.Title,
				Description:     d.Description,
				Status:          d.Status,
				RequestedAmount: amount(d.RequestedAmount),
			})
		},
		Delete: gw.Delete,
	}
	return New(binding, logger)
}
