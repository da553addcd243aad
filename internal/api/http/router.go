package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/emergency-care/internal/api/http/handlers"
	"github.com/spec-kit/emergency-care/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Profile        *handlers.ProfileHandler
	Triage         *handlers.TriageHandler
	Emergency      *handlers.EmergencyHandler
	Hospitals      *handlers.HospitalHandler
	Tips           *handlers.TipsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/", cfg.Auth.Root)
	app.Get("/signup", cfg.Auth.SignupPage)
	app.Post("/signup", cfg.Auth.Signup)
	app.Get("/login", cfg.Auth.LoginPage)
	app.Post("/login", cfg.Auth.Login)
	app.Get("/logout", cfg.Auth.Logout)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/dashboard", cfg.Triage.Dashboard)
	protected.Get("/symptom-checker", cfg.Triage.CheckerPage)
	protected.Post("/api/check-symptoms", cfg.Triage.CheckSymptoms)
	protected.Get("/history", cfg.Triage.History)
	protected.Post("/emergency", cfg.Emergency.Create)
	protected.Get("/hospitals", cfg.Hospitals.List)
	protected.Get("/tips", cfg.Tips.List)
	protected.Get("/profile", cfg.Profile.Show)
	protected.Post("/profile", cfg.Profile.Update)
}
