package controller

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/officepro/officepro/internal/model"
	"github.com/officepro/officepro/internal/service"
	"github.com/officepro/officepro/internal/validate"
)

// UserDraft stages a staff account's editable fields. The password is
// only meaningful in create mode; edit mode never sends credentials.
type UserDraft struct {
	Name     string
	Surname  string
	Email    string
	Password string
	Role     model.UserRole
}

var userRules = validate.RuleSet{
	"name": {
		validate.Required(),
		validate.MaxLength(80),
		validate.Pattern(validate.PersonName, "contains unsupported characters"),
	},
	"surname": {
		validate.Required(),
		validate.MaxLength(80),
		validate.Pattern(validate.PersonName, "contains unsupported characters"),
	},
	"email": {
		validate.Required(),
		validate.Email(),
		validate.MaxLength(120),
	},
	"role": {
		validate.Required(),
	},
}

// Password rules apply only when creating an account; entering edit
// mode drops them, mirroring the conditional requiredness of the form.
var userPasswordRules = []validate.Rule{
	validate.Required(),
	validate.MinLength(6),
}

func (d UserDraft) values() map[string]string {
	return map[string]string{
		"name":     d.Name,
		"surname":  d.Surname,
		"email":    d.Email,
		"role":     strconv.Itoa(int(d.Role)),
		"password": d.Password,
	}
}

// RoleOptions lists the selectable user roles.
func RoleOptions() []Option {
	return []Option{
		{Label: model.RoleEmployee.String(), Value: strconv.Itoa(int(model.RoleEmployee))},
		{Label: model.RoleAnalyst.String(), Value: strconv.Itoa(int(model.RoleAnalyst))},
		{Label: model.RoleAdmin.String(), Value: strconv.Itoa(int(model.RoleAdmin))},
	}
}

// NewUserController instantiates the CRUD controller for staff accounts.
func NewUserController(gw service.UserGateway, logger *slog.Logger) *Controller[model.User, UserDraft] {
	binding := Binding[model.User, UserDraft]{
		Name: ResourceUsers,
		Fields: []FieldDef{
			{Key: "name", Label: "Name", Kind: FieldText},
			{Key: "surname", Label: "Surname", Kind: FieldText},
			{Key: "email", Label: "Email", Kind: FieldText},
			{Key: "role", Label: "Role", Kind: FieldSelect, Options: RoleOptions},
			{Key: "password", Label: "Password", Kind: FieldSecret, CreateOnly: true},
		},
		NewDraft: func() UserDraft {
			return UserDraft{Role: model.RoleEmployee}
		},
		DraftFor: func(u model.User) UserDraft {
			return UserDraft{Name: u.Name, Surname: u.Surname, Email: u.Email, Role: u.Role}
		},
		Validate: func(d UserDraft, editing bool) validate.Errors {
			rules := userRules
			if !editing {
				rules = validate.RuleSet{}
				for k, v := range userRules {
					rules[k] = v
				}
				rules["password"] = userPasswordRules
			}
			return validate.Fields(d.values(), rules)
		},
		Get: func(d UserDraft, key string) string {
			return d.values()[key]
		},
		Set: func(d UserDraft, key, value string) UserDraft {
			switch key {
			case "name":
				d.Name = value
			case "surname":
				d.Surname = value
			case "email":
				d.Email = value
			case "password":
				d.Password = value
			case "role":
				if n, err := strconv.Atoi(value); err == nil && model.UserRole(n).Valid() {
					d.Role = model.UserRole(n)
				}
			}
			return d
		},
		List: gw.List,
		Create: func(ctx context.Context, d UserDraft) (model.User, error) {
			return gw.Create(ctx, model.CreateUserRequest{
				Name:     d.Name,
				Surname:  d.Surname,
				Role:     d.Role,
				Email:    d.Email,
				Password: d.Password,
			})
		},
		Update: func(ctx context.Context, id string, d UserDraft) (model.User, error) {
			return gw.Update(ctx, model.UpdateUserRequest{
				ID:      id,
				Name:    d.Name,
				Surname: d.Surname,
				Role:    d.Role,
				Email:   d.Email,
			})
		},
		Delete: gw.Delete,
	}
	return New(binding, logger)
}
