package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/servicehub/internal/api/http/handlers"
	"github.com/spec-kit/servicehub/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Requests       *handlers.RequestsHandler
	Professionals  *handlers.ProfessionalsHandler
	Dashboard      *handlers.DashboardHandler
	Messages       *handlers.MessagesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, auth.RequireAnyRole(), cfg.Users.Logout)

	users := app.Group("/users", cfg.AuthMiddleware.Handle, auth.RequireAnyRole())
	users.Get("/me", cfg.Users.GetProfile)
	users.Put("/me", cfg.Users.UpdateProfile)

	requests := app.Group("/requests", cfg.AuthMiddleware.Handle)
	requests.Post("", auth.RequireCustomer(), cfg.Requests.CreateRequest)
	requests.Get("", auth.RequireAnyRole(), cfg.Requests.ListRequests)
	requests.Get("/:id", auth.RequireAnyRole(), cfg.Requests.GetRequest)
	requests.Put("/:id/accept", auth.RequireProfessional(), cfg.Requests.AcceptRequest)
	requests.Put("/:id/complete", auth.RequireProfessional(), cfg.Requests.CompleteRequest)
	requests.Put("/:id/cancel", auth.RequireAnyRole(), cfg.Requests.CancelRequest)

	professionals := app.Group("/professionals")
	professionals.Get("", cfg.Professionals.Search)
	professionals.Get("/:id", cfg.Professionals.GetProfessional)
	professionals.Post("/:id/rate", cfg.AuthMiddleware.Handle, auth.RequireCustomer(), cfg.Professionals.SubmitRating)

	dashboard := app.Group("/dashboard", cfg.AuthMiddleware.Handle, auth.RequireProfessional())
	dashboard.Get("/metrics", cfg.Dashboard.Metrics)
	dashboard.Get("/requests", cfg.Dashboard.Requests)

	messages := app.Group("/messages", cfg.AuthMiddleware.Handle, auth.RequireAnyRole())
	messages.Post("", cfg.Messages.SendMessage)
	messages.Get("", cfg.Messages.ListMessages)
}
