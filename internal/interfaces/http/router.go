package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Comercio-api/internal/application/analytics"
	"github.com/jhoicas/Comercio-api/internal/application/reports"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CartUC      *usecase.CartUseCase
	OrderUC     *usecase.OrderUseCase
	ReturnUC    *usecase.ReturnUseCase
	DefectUC    *usecase.DefectUseCase
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *reports.ReportUseCase
	ReportPDF   ReportPDFGenerator
	JWTSecret   string
}

// Router registra las rutas de la API.
// Tienda: catálogo público, carrito/pedidos/devoluciones con token de cliente.
// CRM: todo bajo /api/crm, restringido a admin y staff.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo (público)
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)

	// Rutas de tienda (requieren Bearer Token; cualquier rol autenticado)
	auth := AuthMiddleware(deps.JWTSecret)

	cart := api.Group("/cart", auth)
	cartHandler := NewCartHandler(deps.CartUC)
	cart.Get("/", cartHandler.Get)
	cart.Post("/items", cartHandler.AddItem)
	cart.Delete("/items/:productId", cartHandler.RemoveItem)

	orders := api.Group("/orders", auth)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/checkout", orderHandler.Checkout)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/cancel", orderHandler.Cancel)

	returns := api.Group("/returns", auth)
	returnHandler := NewReturnHandler(deps.ReturnUC)
	returns.Post("/", returnHandler.Create)
	returns.Get("/", returnHandler.List)

	// CRM (solo admin y staff)
	crm := api.Group("/crm", auth, RequireRole(RoleAdmin, RoleStaff))

	crm.Get("/products", productHandler.ListCRM)
	crm.Post("/products", productHandler.Create)
	crm.Put("/products/:id", productHandler.Update)

	crm.Get("/orders", orderHandler.ListCRM)
	crm.Put("/orders/:id/status", orderHandler.UpdateStatus)

	crm.Get("/returns", returnHandler.ListCRM)
	crm.Put("/returns/:id/status", returnHandler.UpdateStatus)

	defectHandler := NewDefectHandler(deps.DefectUC)
	crm.Post("/defects", defectHandler.Create)
	crm.Get("/defects", defectHandler.List)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	crm.Get("/dashboard", dashboardHandler.GetSummary)

	reportHandler := NewReportHandler(deps.ReportUC, deps.ReportPDF)
	crm.Get("/reports", reportHandler.Generate)
	crm.Get("/reports/pdf", reportHandler.GeneratePDF)
}
