package router

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/rogerio-castellano/inventory-api/docs"
	"github.com/rogerio-castellano/inventory-api/internal/http/handlers"
	mw "github.com/rogerio-castellano/inventory-api/internal/http/middleware"
	rl "github.com/rogerio-castellano/inventory-api/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-api/internal/models"
	"github.com/rogerio-castellano/inventory-api/internal/storage"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Options struct {
	Development bool
	CORSOrigins []string
	// AuthLimiter throttles register, login and google per client IP; nil
	// disables it.
	AuthLimiter *rl.Limiter
}

func writeStatus(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(handlers.MessageResponse{Status: false, Message: message})
}

func NewRouter(s *handlers.Server, opts Options) http.Handler {
	r := chi.NewRouter()

	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(logger))
	r.Use(mw.Recoverer(logger, opts.Development))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Set before any Route so sub-routers inherit them.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", s.Health)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	if s.Store != nil {
		r.Handle(storage.PublicPrefix+"*", http.StripPrefix(storage.PublicPrefix, http.FileServer(s.Store.FileSystem())))
	}

	authenticated := mw.Authenticate(s.Tokens)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(mw.RateLimit(opts.AuthLimiter))
				r.Post("/register", s.Register)
				r.Post("/login", s.Login)
				r.Post("/google", s.GoogleLogin)
			})
			r.With(authenticated).Get("/me", s.CurrentUser)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.GetProducts)
			r.Get("/{id}", s.GetProductByID)
			r.Get("/{id}/shifts", s.GetShifts)

			r.Group(func(r chi.Router) {
				r.Use(authenticated)
				r.Post("/", s.CreateProduct)
				r.Post("/import", s.ImportProducts)
				r.Put("/{id}", s.UpdateProduct)
				r.Delete("/{id}", s.DeleteProduct)
				r.Post("/{id}/shift", s.ShiftProduct)
			})
		})

		for _, kind := range models.MasterKinds {
			r.Get("/"+kind.Table, s.ListMasterData(kind))
		}

		r.Route("/admin", func(r chi.Router) {
			r.Use(authenticated, mw.RequireRole(models.RoleAdmin))
			for _, kind := range models.MasterKinds {
				r.Post("/"+kind.Table, s.CreateMasterData(kind))
				r.Put("/"+kind.Table+"/{id}", s.UpdateMasterData(kind))
				r.Delete("/"+kind.Table+"/{id}", s.DeleteMasterData(kind))
			}
			r.Get("/bans", s.BanLog)
		})

		r.With(authenticated).Get("/metrics/dashboard", s.GetDashboardMetrics)

		r.Route("/upload", func(r chi.Router) {
			r.Use(authenticated)
			r.Post("/products/{productId}/images", s.UploadProductImages)
			r.Delete("/images/{imageId}", s.DeleteProductImage)
		})
	})

	return r
}
