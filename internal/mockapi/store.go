package mockapi

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/officepro/officepro/internal/model"
	"github.com/officepro/officepro/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store persists the mock back office's records in SQLite. Pass
// ":memory:" as the path for a throwaway database.
type Store struct {
	db *sql.DB
}

// OpenStore opens (and bootstraps) the mock database.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS budgets (
		guid TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		general_amount REAL NOT NULL,
		available_amount REAL NOT NULL
	);
	CREATE TABLE IF NOT EXISTS categories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS suppliers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		contact_info TEXT NOT NULL,
		category_id TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		surname TEXT NOT NULL,
		role INTEGER NOT NULL,
		email TEXT NOT NULL,
		password TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS purchases (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		category_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		status INTEGER NOT NULL,
		requested_amount REAL NOT NULL,
		created_at TEXT NOT NULL
	);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Budgets

// ListBudgets returns every budget, newest first.
func (s *Store) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT guid, name, general_amount, available_amount FROM budgets ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	budgets := []model.Budget{}
	for rows.Next() {
		var b model.Budget
		if err := rows.Scan(&b.GUID, &b.Name, &b.GeneralAmount, &b.AvailableAmount); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// GetBudget fetches one budget by id.
func (s *Store) GetBudget(ctx context.Context, id string) (model.Budget, error) {
	var b model.Budget
	err := s.db.QueryRowContext(ctx,
		`SELECT guid, name, general_amount, available_amount FROM budgets WHERE guid = ?`, id).
		Scan(&b.GUID, &b.Name, &b.GeneralAmount, &b.AvailableAmount)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Budget{}, service.ErrNotFound
	}
	if err != nil {
		return model.Budget{}, fmt.Errorf("failed to get budget: %w", err)
	}
	return b, nil
}

// CreateBudget inserts a budget. The available amount starts equal to
// the general amount; the server owns that field.
func (s *Store) CreateBudget(ctx context.Context, req model.CreateBudgetRequest) (model.Budget, error) {
	b := model.Budget{
		GUID:            uuid.NewString(),
		Name:            req.Name,
		GeneralAmount:   req.GeneralAmount,
		AvailableAmount: req.GeneralAmount,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO budgets (guid, name, general_amount, available_amount) VALUES (?, ?, ?, ?)`,
		b.GUID, b.Name, b.GeneralAmount, b.AvailableAmount)
	if err != nil {
		return model.Budget{}, fmt.Errorf("failed to insert budget: %w", err)
	}
	return b, nil
}

// UpdateBudget replaces a budget's fields and returns the stored record.
func (s *Store) UpdateBudget(ctx context.Context, req model.UpdateBudgetRequest) (model.Budget, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE budgets SET name = ?, general_amount = ?, available_amount = ? WHERE guid = ?`,
		req.Name, req.GeneralAmount, req.AvailableAmount, req.ID)
	if err != nil {
		return model.Budget{}, fmt.Errorf("failed to update budget: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Budget{}, service.ErrNotFound
	}
	return s.GetBudget(ctx, req.ID)
}

// DeleteBudget removes a budget by id.
func (s *Store) DeleteBudget(ctx context.Context, id string) error {
	return s.deleteByID(ctx, `DELETE FROM budgets WHERE guid = ?`, id, "budget")
}

// Categories

// ListCategories returns every category, newest first.
func (s *Store) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetCategory fetches one category by id.
func (s *Store) GetCategory(ctx context.Context, id string) (model.Category, error) {
	var c model.Category
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM categories WHERE id = ?`, id).
		Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Category{}, service.ErrNotFound
	}
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to get category: %w", err)
	}
	return c, nil
}

// CreateCategory inserts a category.
func (s *Store) CreateCategory(ctx context.Context, req model.CreateCategoryRequest) (model.Category, error) {
	c := model.Category{ID: uuid.NewString(), Name: req.Name}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (id, name) VALUES (?, ?)`, c.ID, c.Name); err != nil {
		return model.Category{}, fmt.Errorf("failed to insert category: %w", err)
	}
	return c, nil
}

// UpdateCategory replaces a category's fields.
func (s *Store) UpdateCategory(ctx context.Context, req model.UpdateCategoryRequest) (model.Category, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE categories SET name = ? WHERE id = ?`, req.Name, req.ID)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to update category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Category{}, service.ErrNotFound
	}
	return model.Category{ID: req.ID, Name: req.Name}, nil
}

// DeleteCategory removes a category by id.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	return s.deleteByID(ctx, `DELETE FROM categories WHERE id = ?`, id, "category")
}

// Suppliers

// ListSuppliers returns every supplier, newest first.
func (s *Store) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, contact_info, category_id FROM suppliers ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	suppliers := []model.Supplier{}
	for rows.Next() {
		var sp model.Supplier
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.ContactInfo, &sp.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, sp)
	}
	return suppliers, rows.Err()
}

// GetSupplier fetches one supplier by id.
func (s *Store) GetSupplier(ctx context.Context, id string) (model.Supplier, error) {
	var sp model.Supplier
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, contact_info, category_id FROM suppliers WHERE id = ?`, id).
		Scan(&sp.ID, &sp.Name, &sp.ContactInfo, &sp.CategoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Supplier{}, service.ErrNotFound
	}
	if err != nil {
		return model.Supplier{}, fmt.Errorf("failed to get supplier: %w", err)
	}
	return sp, nil
}

// CreateSupplier inserts a supplier.
func (s *Store) CreateSupplier(ctx context.Context, req model.CreateSupplierRequest) (model.Supplier, error) {
	sp := model.Supplier{
		ID:          uuid.NewString(),
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
		CategoryID:  req.CategoryID,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO suppliers (id, name, contact_info, category_id) VALUES (?, ?, ?, ?)`,
		sp.ID, sp.Name, sp.ContactInfo, sp.CategoryID)
	if err != nil {
		return model.Supplier{}, fmt.Errorf("failed to insert supplier: %w", err)
	}
	return sp, nil
}

// UpdateSupplier replaces a supplier's fields.
func (s *Store) UpdateSupplier(ctx context.Context, req model.UpdateSupplierRequest) (model.Supplier, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE suppliers SET name = ?, contact_info = ?, category_id = ? WHERE id = ?`,
		req.Name, req.ContactInfo, req.CategoryID, req.ID)
	if err != nil {
		return model.Supplier{}, fmt.Errorf("failed to update supplier: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Supplier{}, service.ErrNotFound
	}
	return model.Supplier{ID: req.ID, Name: req.Name, ContactInfo: req.ContactInfo, CategoryID: req.CategoryID}, nil
}

// DeleteSupplier removes a supplier by id.
func (s *Store) DeleteSupplier(ctx context.Context, id string) error {
	return s.deleteByID(ctx, `DELETE FROM suppliers WHERE id = ?`, id, "supplier")
}

// Users

// ListUsers returns every staff account, newest first. Passwords never
// leave the store.
func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, surname, role, email FROM users ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Surname, &u.Role, &u.Email); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetUser fetches one staff account by id.
func (s *Store) GetUser(ctx context.Context, id string) (model.User, error) {
	var u model.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, surname, role, email FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Name, &u.Surname, &u.Role, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, service.ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// CreateUser inserts a staff account.
func (s *Store) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	u := model.User{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Surname: req.Surname,
		Role:    req.Role,
		Email:   req.Email,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, name, surname, role, email, password) VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Surname, u.Role, u.Email, req.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return u, nil
}

// UpdateUser replaces a staff account's fields; the password is
// untouched.
func (s *Store) UpdateUser(ctx context.Context, req model.UpdateUserRequest) (model.User, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET name = ?, surname = ?, role = ?, email = ? WHERE id = ?`,
		req.Name, req.Surname, req.Role, req.Email, req.ID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.User{}, service.ErrNotFound
	}
	return model.User{ID: req.ID, Name: req.Name, Surname: req.Surname, Role: req.Role, Email: req.Email}, nil
}

// DeleteUser removes a staff account by id.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	return s.deleteByID(ctx, `DELETE FROM users WHERE id = ?`, id, "user")
}

// Purchases

// ListPurchases returns every purchase request, newest first.
func (s *Store) ListPurchases(ctx context.Context) ([]model.Purchase, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, category_id, title, description, status, requested_amount, created_at
		 FROM purchases ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer func() { _ = rows.Close() }()

	purchases := []model.Purchase{}
	for rows.Next() {
		var p model.Purchase
		if err := rows.Scan(&p.ID, &p.UserID, &p.CategoryID, &p.Title, &p.Description,
			&p.Status, &p.RequestedAmount, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

// GetPurchase fetches one purchase request by id.
func (s *Store) GetPurchase(ctx context.Context, id string) (model.Purchase, error) {
	var p model.Purchase
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, category_id, title, description, status, requested_amount, created_at
		 FROM purchases WHERE id = ?`, id).
		Scan(&p.ID, &p.UserID, &p.CategoryID, &p.Title, &p.Description,
			&p.Status, &p.RequestedAmount, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Purchase{}, service.ErrNotFound
	}
	if err != nil {
		return model.Purchase{}, fmt.Errorf("failed to get purchase: %w", err)
	}
	return p, nil
}

// CreatePurchase files a purchase request. Status starts Pending and
// the creation time is assigned here; both are server-owned.
func (s *Store) CreatePurchase(ctx context.Context, req model.CreatePurchaseRequest) (model.Purchase, error) {
	p := model.Purchase{
		ID:              uuid.NewString(),
		UserID:          req.UserID,
		CategoryID:      req.CategoryID,
		Title:           req.Title,
		Description:     req.Description,
		Status:          model.StatusPending,
		RequestedAmount: req.RequestedAmount,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO purchases (id, user_id, category_id, title, description, status, requested_amount, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.CategoryID, p.Title, p.Description, p.Status, p.RequestedAmount, p.CreatedAt)
	if err != nil {
		return model.Purchase{}, fmt.Errorf("failed to insert purchase: %w", err)
	}
	return p, nil
}

// UpdatePurchase replaces a purchase request's fields, including its
// review status.
func (s *Store) UpdatePurchase(ctx context.Context, req model.UpdatePurchaseRequest) (model.Purchase, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE purchases SET user_id = ?, category_id = ?, title = ?, description = ?, status = ?, requested_amount = ?
		 WHERE id = ?`,
		req.UserID, req.CategoryID, req.Title, req.Description, req.Status, req.RequestedAmount, req.ID)
	if err != nil {
		return model.Purchase{}, fmt.Errorf("failed to update purchase: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Purchase{}, service.ErrNotFound
	}
	return s.GetPurchase(ctx, req.ID)
}

// DeletePurchase removes a purchase request by id.
func (s *Store) DeletePurchase(ctx context.Context, id string) error {
	return s.deleteByID(ctx, `DELETE FROM purchases WHERE id = ?`, id, "purchase")
}

func (s *Store) deleteByID(ctx context.Context, query, id, kind string) error {
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return service.ErrNotFound
	}
	return nil
}
