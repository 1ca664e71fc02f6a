package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agenciaflow/backoffice/internal/api/http/handlers"
	"github.com/agenciaflow/backoffice/internal/auth"
	"github.com/agenciaflow/backoffice/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Leads          *handlers.LeadsHandler
	Accounts       *handlers.AccountsHandler
	Managers       *handlers.ManagersHandler
	Integrations   *handlers.IntegrationsHandler
	Training       *handlers.TrainingHandler
	Reports        *handlers.ReportsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Role enforcement only gates which
// surfaces are reachable; data-layer invariants live in the services.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Managers.Login)

	api := app.Group("", cfg.AuthMiddleware.Handle)
	api.Get("/auth/me", cfg.Managers.Me)
	api.Post("/auth/password/change", cfg.Managers.ChangePassword)

	leads := api.Group("/leads", auth.RequireRole(domain.RoleAdmin, domain.RoleManager))
	leads.Get("", cfg.Leads.ListLeads)
	leads.Get("/stats", cfg.Leads.GetStats)
	leads.Get("/export", cfg.Leads.ExportCSV)
	leads.Get("/:id", cfg.Leads.GetLead)
	leads.Put("/:id/feedback", cfg.Leads.UpdateFeedback)

	accounts := api.Group("/accounts", auth.RequireRole(domain.RoleAdmin, domain.RoleManager))
	accounts.Get("", cfg.Accounts.ListAccounts)
	accounts.Get("/:id", cfg.Accounts.GetAccount)
	accounts.Post("", auth.RequireRole(domain.RoleAdmin), cfg.Accounts.CreateAccount)
	accounts.Put("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Accounts.UpdateAccount)

	managers := api.Group("/managers", auth.RequireRole(domain.RoleAdmin))
	managers.Get("", cfg.Managers.ListManagers)
	managers.Post("", cfg.Managers.CreateManager)
	managers.Put("/:id", cfg.Managers.UpdateManager)

	integrations := api.Group("/integrations/ad-accounts", auth.RequireRole(domain.RoleAdmin, domain.RoleManager))
	integrations.Get("", cfg.Integrations.ListByAccount)
	integrations.Post("", cfg.Integrations.Connect)
	integrations.Patch("/:id/status", cfg.Integrations.MarkStatus)

	training := api.Group("/training")
	training.Get("", cfg.Training.ListContents)
	training.Post("", auth.RequireRole(domain.RoleAdmin), cfg.Training.CreateContent)
	training.Put("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Training.UpdateContent)

	reports := api.Group("/reports", auth.RequireRole(domain.RoleAdmin, domain.RoleManager))
	reports.Get("/schedules", cfg.Reports.ListByAccount)
	reports.Post("/schedules", cfg.Reports.CreateSchedule)
	reports.Put("/schedules/:id", cfg.Reports.UpdateSchedule)
	reports.Post("/dispatch", auth.RequireRole(domain.RoleAdmin), cfg.Reports.DispatchNow)
}
