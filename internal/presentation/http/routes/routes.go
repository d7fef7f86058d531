package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkadima/resto-api/internal/config"
	domainRepo "github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/internal/domain/policy"
	"github.com/mkadima/resto-api/internal/presentation/http/handler"
	"github.com/mkadima/resto-api/internal/presentation/http/middleware"
	"github.com/mkadima/resto-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Product   *handler.ProductHandler
	Category  *handler.CategoryHandler
	Stock     *handler.StockHandler
	Sale      *handler.SaleHandler
	Kitchen   *handler.KitchenHandler
	Inventory *handler.InventoryHandler
	Client    *handler.ClientHandler
	Rate      *handler.RateHandler
	Supplier  *handler.SupplierHandler
	Purchase  *handler.PurchaseHandler
	Expense   *handler.ExpenseHandler
	Payroll   *handler.PayrollHandler
	Report    *handler.ReportHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile
	protected.GET("/auth/me", h.Auth.Me)
	protected.PUT("/auth/password", h.Auth.ChangePassword)

	// Staff accounts
	users := protected.Group("/users", middleware.RequireAction(policy.ActionManageUsers))
	{
		users.POST("", h.User.Create)
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}

	// Catalog: read side open to every role that can sell
	catalogView := protected.Group("", middleware.RequireAction(policy.ActionViewCatalog))
	{
		catalogView.GET("/products", h.Product.List)
		catalogView.GET("/products/vendable", h.Product.ListVendable)
		catalogView.GET("/products/:id", h.Product.Get)
		catalogView.GET("/categories", h.Category.List)
		catalogView.GET("/categories/:id", h.Category.Get)
		catalogView.GET("/sale-spaces", h.Category.ListSaleSpaces)
	}

	catalog := protected.Group("", middleware.RequireAction(policy.ActionManageCatalog))
	{
		catalog.POST("/products", h.Product.Create)
		catalog.PUT("/products/:id", h.Product.Update)
		catalog.DELETE("/products/:id", h.Product.Delete)
		catalog.PUT("/products/:id/prices", h.Product.SetPrice)
		catalog.DELETE("/products/:id/prices/:priceId", h.Product.DeletePrice)
		catalog.PUT("/products/:id/costs", h.Product.SetCost)
		catalog.DELETE("/products/:id/costs/:costId", h.Product.DeleteCost)

		catalog.POST("/categories", h.Category.Create)
		catalog.PUT("/categories/:id", h.Category.Update)
		catalog.DELETE("/categories/:id", h.Category.Delete)

		catalog.POST("/sale-spaces", h.Category.CreateSaleSpace)
		catalog.PUT("/sale-spaces/:id", h.Category.UpdateSaleSpace)
		catalog.DELETE("/sale-spaces/:id", h.Category.DeleteSaleSpace)
	}

	// Stock ledger
	stockView := protected.Group("/stock", middleware.RequireAction(policy.ActionViewStock))
	{
		stockView.GET("", h.Stock.List)
		stockView.GET("/products/:id", h.Stock.GetProductStock)
		stockView.GET("/movements", h.Stock.ListMovements)
		stockView.GET("/audit/:id", h.Stock.Audit)
	}

	stock := protected.Group("/stock", middleware.RequireAction(policy.ActionManageStock))
	{
		stock.POST("/receive", h.Stock.Receive)
		stock.POST("/transfer", h.Stock.Transfer)
		stock.POST("/loss", h.Stock.Loss)
		stock.POST("/adjust", h.Stock.Adjust)
		stock.DELETE("/movements/:id", h.Stock.ReverseMovement)
		stock.POST("/reset", h.Stock.Reset)
	}

	// Sales; settlement carries idempotency replay protection
	salesView := protected.Group("/sales", middleware.RequireAction(policy.ActionViewSales))
	{
		salesView.GET("", h.Sale.List)
		salesView.GET("/:id", h.Sale.Get)
		salesView.GET("/ticket/:ticketNo", h.Sale.GetByTicket)
	}

	sales := protected.Group("/sales", middleware.RequireAction(policy.ActionCreateSale))
	{
		// Settlement refuses unkeyed submits; reprints are harmless and
		// only replay when a key is sent.
		sales.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo:       deps.IdempotencyRepo,
			RequireKey: true,
		}), h.Sale.Settle)
		sales.POST("/:id/print", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Sale.PrintReceipt)
	}

	// Kitchen
	kitchenView := protected.Group("/kitchen", middleware.RequireAction(policy.ActionViewKitchen))
	{
		kitchenView.GET("/orders", h.Kitchen.ListActive)
		kitchenView.GET("/orders/:id", h.Kitchen.Get)
	}

	kitchen := protected.Group("/kitchen", middleware.RequireAction(policy.ActionUpdateKitchen))
	{
		kitchen.PUT("/orders/:id/status", h.Kitchen.UpdateStatus)
		kitchen.POST("/orders/:id/print", h.Kitchen.PrintTicket)
	}

	// Inventory counting
	inventory := protected.Group("/inventory", middleware.RequireAction(policy.ActionManageInventory))
	{
		inventory.POST("/sessions", h.Inventory.Open)
		inventory.GET("/sessions", h.Inventory.List)
		inventory.GET("/sessions/:id", h.Inventory.Get)
		inventory.PUT("/sessions/:id/counts", h.Inventory.RecordCounts)
		inventory.POST("/sessions/:id/close", h.Inventory.Close)
	}

	// Loyalty clients
	clients := protected.Group("/clients", middleware.RequireAction(policy.ActionManageClients))
	{
		clients.POST("", h.Client.Create)
		clients.GET("", h.Client.List)
		clients.GET("/:id", h.Client.Get)
		clients.GET("/:id/transactions", h.Client.ListTransactions)
		clients.PUT("/:id", h.Client.Update)
		clients.DELETE("/:id", h.Client.Delete)
	}

	// Exchange rates; reading the current rate is open to all staff
	protected.GET("/rates/current", h.Rate.Current)
	rates := protected.Group("/rates", middleware.RequireAction(policy.ActionManageRates))
	{
		rates.POST("", h.Rate.Set)
		rates.GET("", h.Rate.List)
	}

	// Purchasing
	purchases := protected.Group("", middleware.RequireAction(policy.ActionManagePurchases))
	{
		purchases.POST("/suppliers", h.Supplier.Create)
		purchases.GET("/suppliers", h.Supplier.List)
		purchases.GET("/suppliers/:id", h.Supplier.Get)
		purchases.PUT("/suppliers/:id", h.Supplier.Update)
		purchases.DELETE("/suppliers/:id", h.Supplier.Delete)

		purchases.POST("/purchases", h.Purchase.Create)
		purchases.GET("/purchases", h.Purchase.List)
		purchases.GET("/purchases/:id", h.Purchase.Get)
	}

	// Expenses
	expenses := protected.Group("/expenses", middleware.RequireAction(policy.ActionManageExpenses))
	{
		expenses.POST("", h.Expense.Create)
		expenses.GET("", h.Expense.List)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", h.Expense.Delete)
	}

	// Payroll
	payroll := protected.Group("/payroll", middleware.RequireAction(policy.ActionManagePayroll))
	{
		payroll.POST("/employees", h.Payroll.CreateEmployee)
		payroll.GET("/employees", h.Payroll.ListEmployees)
		payroll.PUT("/employees/:id", h.Payroll.UpdateEmployee)
		payroll.DELETE("/employees/:id", h.Payroll.DeleteEmployee)
		payroll.POST("/payments", h.Payroll.PaySalary)
		payroll.GET("/payments", h.Payroll.ListPayments)
	}

	// Reports
	reports := protected.Group("/reports", middleware.RequireAction(policy.ActionViewReports))
	{
		reports.GET("/sales", h.Report.Sales)
		reports.GET("/top-products", h.Report.TopProducts)
		reports.GET("/stock-valuation", h.Report.StockValuation)
		reports.GET("/expenses", h.Report.Expenses)
		reports.GET("/kitchen", h.Report.Kitchen)
	}

	// Printer
	protected.GET("/printer/status", h.Printer.Status)
}
