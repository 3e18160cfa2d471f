package mockapi

import (
	"context"
	"fmt"

	"github.com/officepro/officepro/internal/model"
)

// Seed loads a small office into an empty store so the UI has something
// to show on first run. Seeding a non-empty store is a no-op.
func (s *Store) Seed(ctx context.Context) error {
	existing, err := s.ListBudgets(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	budgets := []model.CreateBudgetRequest{
		{Name: "Office supplies", GeneralAmount: 12000},
		{Name: "Hardware refresh", GeneralAmount: 45000},
		{Name: "Team events", GeneralAmount: 6000},
	}
	for _, b := range budgets {
		if _, err := s.CreateBudget(ctx, b); err != nil {
			return fmt.Errorf("failed to seed budget: %w", err)
		}
	}

	var categoryIDs []string
	for _, name := range []string{"Stationery", "Electronics", "Furniture"} {
		c, err := s.CreateCategory(ctx, model.CreateCategoryRequest{Name: name})
		if err != nil {
			return fmt.Errorf("failed to seed category: %w", err)
		}
		categoryIDs = append(categoryIDs, c.ID)
	}

	suppliers := []model.CreateSupplierRequest{
		{Name: "Paper Trail Ltd", ContactInfo: "orders@papertrail.example", CategoryID: categoryIDs[0]},
		{Name: "Volt & Bolt", ContactInfo: "+380 44 123 4567", CategoryID: categoryIDs[1]},
	}
	for _, sp := range suppliers {
		if _, err := s.CreateSupplier(ctx, sp); err != nil {
			return fmt.Errorf("failed to seed supplier: %w", err)
		}
	}

	users := []model.CreateUserRequest{
		{Name: "Olena", Surname: "Kovalenko", Role: model.RoleAdmin, Email: "olena@office.example", Password: "changeme"},
		{Name: "Taras", Surname: "Bondar", Role: model.RoleAnalyst, Email: "taras@office.example", Password: "changeme"},
		{Name: "Iryna", Surname: "Melnyk", Role: model.RoleEmployee, Email: "iryna@office.example", Password: "changeme"},
	}
	var userIDs []string
	for _, u := range users {
		created, err := s.CreateUser(ctx, u)
		if err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
		userIDs = append(userIDs, created.ID)
	}

	purchases := []model.CreatePurchaseRequest{
		{UserID: userIDs[2], CategoryID: categoryIDs[0], Title: "Printer paper", Description: "A4, 20 boxes", RequestedAmount: 340},
		{UserID: userIDs[1], CategoryID: categoryIDs[1], Title: "Second monitor", Description: "27 inch, for the analytics desk", RequestedAmount: 5200},
	}
	for _, p := range purchases {
		if _, err := s.CreatePurchase(ctx, p); err != nil {
			return fmt.Errorf("failed to seed purchase: %w", err)
		}
	}
	return nil
}
