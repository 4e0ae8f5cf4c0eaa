package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handler struct {
	router *chi.Mux
	coffee *CoffeeHandler
}

func NewHandler(coffee *CoffeeHandler) *Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// Open CORS: the storefront frontend is served from a different origin.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	h := &Handler{
		router: router,
		coffee: coffee,
	}

	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.router.Get("/", h.coffee.Root)
	h.router.Get("/health", h.HealthCheck)
	h.router.Get("/menu", h.coffee.GetMenu)
	h.router.Post("/register", h.coffee.Register)
	h.router.Post("/login", h.coffee.Login)
	h.router.Post("/orders", h.coffee.PlaceOrder)
	h.router.Get("/orders/{email}", h.coffee.GetOrders)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
