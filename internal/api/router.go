package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bizlingo/bizlingo-be/internal/api/handlers"
	"github.com/bizlingo/bizlingo-be/internal/auth"
	"github.com/bizlingo/bizlingo-be/internal/monitoring"
	"github.com/bizlingo/bizlingo-be/internal/services"
	"github.com/bizlingo/bizlingo-be/internal/websocket"
)

// RouterDeps bundles everything the router wires into handlers.
type RouterDeps struct {
	Hub           *websocket.Hub
	Users         services.UserServiceProvider
	Sessions      services.SessionServiceProvider
	Generator     services.GenerationServiceProvider
	Contents      services.ContentServiceProvider
	Products      services.ProductServiceProvider
	Notifications services.NotificationServiceProvider
	Sampler       *monitoring.StatsSampler
	AllowedOrigin string
	SessionTTL    time.Duration
}

// NewRouter creates and configures a new Chi router.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for the frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(deps.Users, deps.Sessions, deps.Notifications, deps.SessionTTL)
	generateHandler := handlers.NewGenerateHandler(deps.Generator, deps.Users, deps.Notifications)
	contentHandler := handlers.NewContentHandler(deps.Contents)
	productHandler := handlers.NewProductHandler(deps.Products)
	notificationHandler := handlers.NewNotificationHandler(deps.Notifications)
	systemHandler := handlers.NewSystemHandler(deps.Sampler)
	wsHandler := handlers.NewWebSocketHandler(deps.Hub)

	requireAuth := auth.JWTMiddleware(deps.Sessions)

	// API versioning
	r.Route("/api/v1", func(r chi.Router) {
		// WebSocket notification feed
		r.Get("/ws", wsHandler.Serve)

		// Public endpoints
		r.Post("/auth/register", userHandler.Register)
		r.Post("/auth/login", userHandler.Login)
		r.Get("/system/stats", systemHandler.Stats)
		r.Get("/meta/languages", systemHandler.Languages)
		r.Get("/meta/industries", systemHandler.Industries)

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Post("/auth/logout", userHandler.Logout)
			r.Get("/auth/me", userHandler.GetMe)
			r.Put("/users/me", userHandler.UpdateProfile)
			r.Post("/users/me/password", userHandler.ChangePassword)

			r.Post("/generate", generateHandler.Generate)

			r.Route("/content", func(r chi.Router) {
				r.Get("/", contentHandler.GetAll)
				r.Post("/", contentHandler.Save)
				r.Delete("/{id}", contentHandler.Delete)
				r.Post("/{id}/rating", contentHandler.Rate)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", productHandler.GetAll)
				r.Post("/", productHandler.Create)
				r.Delete("/{id}", productHandler.Delete)
			})

			r.Get("/notifications", notificationHandler.GetRecent)
		})
	})

	return r
}
