package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"earlybirds/internal/menu"
	"earlybirds/internal/model"
	"earlybirds/internal/service"
	"earlybirds/internal/storage"
)

var validate = validator.New()

type CoffeeHandler struct {
	svc *service.CoffeeService
}

func NewCoffeeHandler(svc *service.CoffeeService) *CoffeeHandler {
	return &CoffeeHandler{svc: svc}
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	Passcode string `json:"passcode"`
}

type OrderRequest struct {
	Email      string            `json:"email" validate:"required,email"`
	Items      []model.OrderItem `json:"items" validate:"required,min=1"`
	TotalPrice float64           `json:"total_price"`
}

func (h *CoffeeHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "Welcome to EarlyBirds API (Demo Mode)"})
}

func (h *CoffeeHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, menu.Items())
}

func (h *CoffeeHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	if err := h.svc.Register(r.Context(), req.Email, req.Name, req.Passcode); err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			respondError(w, http.StatusBadRequest, "User already exists")
			return
		}
		slog.Error("register failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "User created successfully"})
}

// Login takes email and passcode as query parameters, not a JSON body.
func (h *CoffeeHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	passcode := r.URL.Query().Get("passcode")

	result, err := h.svc.Login(r.Context(), email, passcode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPasscode):
			respondError(w, http.StatusUnauthorized, "Invalid passcode")
		case errors.Is(err, storage.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "User not found")
		default:
			slog.Error("login failed", "error", err)
			respondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	message := "Login successful"
	if result.AutoGenerated {
		message = "Login successful (Auto-generated)"
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"message": message,
		"email":   result.User.Email,
		"name":    result.User.Name,
	})
}

func (h *CoffeeHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid order")
		return
	}

	order := model.Order{
		Email:      req.Email,
		Items:      req.Items,
		TotalPrice: req.TotalPrice,
	}
	if err := h.svc.PlaceOrder(r.Context(), order); err != nil {
		slog.Error("place order failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Order placed successfully"})
}

func (h *CoffeeHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	orders, err := h.svc.OrderHistory(r.Context(), email)
	if err != nil {
		slog.Error("order history failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
