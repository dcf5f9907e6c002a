package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturacion-api/internal/application/auth"
	"github.com/jhoicas/Facturacion-api/internal/application/dashboard"
	"github.com/jhoicas/Facturacion-api/internal/application/seed"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoicesUC  *dashboard.InvoicesUseCase
	CustomersUC *dashboard.CustomersUseCase
	SummaryUC   *dashboard.SummaryUseCase
	AuthUC      *auth.AuthUseCase
	Seeder      *seed.Seeder
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard (protegido)
	dashboardGroup := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.SummaryUC)
	dashboardGroup.Get("/cards", dashboardHandler.Cards)
	dashboardGroup.Get("/revenue", dashboardHandler.Revenue)

	// Invoices (protegido). "latest" y "pages" antes de ":id" para que
	// Fiber no las capture como parámetro.
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoicesUC)
	invoices.Get("/latest", invoiceHandler.Latest)
	invoices.Get("/pages", invoiceHandler.Pages)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomersUC)
	customers.Get("/names", customerHandler.Names)
	customers.Get("/", customerHandler.List)

	// Admin (protegido)
	admin := protected.Group("/admin")
	adminHandler := NewAdminHandler(deps.Seeder)
	admin.Post("/seed", adminHandler.Seed)
}
