// Package mockapi is a runnable stand-in for the procurement back
// office. It implements the exact wire contract the client expects so
// the TUI, the CLI, and the integration tests can work without a real
// backend. It is development tooling, not an offline mode: the client
// never falls back to it implicitly.
package mockapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/officepro/officepro/internal/model"
	"github.com/officepro/officepro/internal/service"
)

// Server serves the five REST resources from a Store.
type Server struct {
	store  *Store
	logger *slog.Logger
	router chi.Router
}

// NewServer wires the routes over the store.
func NewServer(store *Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{store: store, logger: logger}
	s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(s.logRequests)
	r.Use(s.requireDemoAuth)

	r.Route("/api/Budgets", func(r chi.Router) {
		r.Get("/", s.listBudgets)
		r.Get("/{id}", s.getBudget)
		r.Post("/", s.createBudget)
		r.Put("/", s.updateBudget)
		r.Delete("/", s.deleteBudget)
	})
	r.Route("/api/Categories", func(r chi.Router) {
		r.Get("/", s.listCategories)
		r.Get("/{id}", s.getCategory)
		r.Post("/", s.createCategory)
		r.Put("/", s.updateCategory)
		r.Delete("/", s.deleteCategory)
	})
	r.Route("/api/Suppliers", func(r chi.Router) {
		r.Get("/", s.listSuppliers)
		r.Get("/{id}", s.getSupplier)
		r.Post("/", s.createSupplier)
		r.Put("/", s.updateSupplier)
		r.Delete("/", s.deleteSupplier)
	})
	r.Route("/api/Users", func(r chi.Router) {
		r.Get("/", s.listUsers)
		r.Get("/{id}", s.getUser)
		r.Post("/", s.createUser)
		r.Put("/", s.updateUser)
		r.Delete("/", s.deleteUser)
	})
	r.Route("/api/Purchases", func(r chi.Router) {
		r.Get("/", s.listPurchases)
		r.Get("/{id}", s.getPurchase)
		r.Post("/", s.createPurchase)
		r.Put("/", s.updatePurchase)
		r.Delete("/", s.deletePurchase)
	})

	s.router = r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// requireDemoAuth rejects requests without the demo auth header, like
// the real back office rejects missing credentials.
func (s *Server) requireDemoAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Demo-Auth") == "" {
			http.Error(w, "missing auth header", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// idBody is the request body of a delete addressed to the collection.
type idBody struct {
	ID string `json:"id"`
}

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			s.logger.Error("failed to encode response", "error", err)
		}
	}
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	s.logger.Error("store operation failed", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func decode(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// Budgets

func (s *Server) listBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := s.store.ListBudgets(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, budgets)
}

func (s *Server) getBudget(w http.ResponseWriter, r *http.Request) {
	b, err := s.store.GetBudget(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, b)
}

func (s *Server) createBudget(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBudgetRequest
	if !decode(w, r, &req) {
		return
	}
	b, err := s.store.CreateBudget(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusCreated, b)
}

func (s *Server) updateBudget(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateBudgetRequest
	if !decode(w, r, &req) {
		return
	}
	b, err := s.store.UpdateBudget(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, b)
}

func (s *Server) deleteBudget(w http.ResponseWriter, r *http.Request) {
	var req idBody
	if !decode(w, r, &req) {
		return
	}
	if err := s.store.DeleteBudget(r.Context(), req.ID); err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusNoContent, nil)
}

// Categories

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.store.ListCategories(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, categories)
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, c)
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCategoryRequest
	if !decode(w, r, &req) {
		return
	}
	c, err := s.store.CreateCategory(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusCreated, c)
}

func (s *Server) updateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateCategoryRequest
	if !decode(w, r, &req) {
		return
	}
	c, err := s.store.UpdateCategory(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, c)
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	var req idBody
	if !decode(w, r, &req) {
		return
	}
	if err := s.store.DeleteCategory(r.Context(), req.ID); err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusNoContent, nil)
}

// Suppliers

func (s *Server) listSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := s.store.ListSuppliers(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, suppliers)
}

func (s *Server) getSupplier(w http.ResponseWriter, r *http.Request) {
	sp, err := s.store.GetSupplier(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, sp)
}

func (s *Server) createSupplier(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSupplierRequest
	if !decode(w, r, &req) {
		return
	}
	sp, err := s.store.CreateSupplier(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusCreated, sp)
}

func (s *Server) updateSupplier(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateSupplierRequest
	if !decode(w, r, &req) {
		return
	}
	sp, err := s.store.UpdateSupplier(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, sp)
}

func (s *Server) deleteSupplier(w http.ResponseWriter, r *http.Request) {
	var req idBody
	if !decode(w, r, &req) {
		return
	}
	if err := s.store.DeleteSupplier(r.Context(), req.ID); err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusNoContent, nil)
}

// Users

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.store.ListUsers(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, users)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.store.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, u)
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if !decode(w, r, &req) {
		return
	}
	u, err := s.store.CreateUser(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusCreated, u)
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateUserRequest
	if !decode(w, r, &req) {
		return
	}
	u, err := s.store.UpdateUser(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, u)
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	var req idBody
	if !decode(w, r, &req) {
		return
	}
	if err := s.store.DeleteUser(r.Context(), req.ID); err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusNoContent, nil)
}

// Purchases

func (s *Server) listPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := s.store.ListPurchases(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, purchases)
}

func (s *Server) getPurchase(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.GetPurchase(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, p)
}

func (s *Server) createPurchase(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePurchaseRequest
	if !decode(w, r, &req) {
		return
	}
	p, err := s.store.CreatePurchase(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusCreated, p)
}

func (s *Server) updatePurchase(w http.ResponseWriter, r *http.Request) {
	var req model.UpdatePurchaseRequest
	if !decode(w, r, &req) {
		return
	}
	p, err := s.store.UpdatePurchase(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, p)
}

func (s *Server) deletePurchase(w http.ResponseWriter, r *http.Request) {
	var req idBody
	if !decode(w, r, &req) {
		return
	}
	if err := s.store.DeletePurchase(r.Context(), req.ID); err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusNoContent, nil)
}
