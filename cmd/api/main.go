package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkadima/resto-api/internal/application/service"
	"github.com/mkadima/resto-api/internal/config"
	"github.com/mkadima/resto-api/internal/infrastructure/database"
	"github.com/mkadima/resto-api/internal/infrastructure/repository"
	"github.com/mkadima/resto-api/internal/presentation/http/handler"
	"github.com/mkadima/resto-api/internal/presentation/http/routes"
	"github.com/mkadima/resto-api/pkg/cache"
	"github.com/mkadima/resto-api/pkg/printer"
	"github.com/mkadima/resto-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db, cfg); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize cache
	var store cache.Cache = cache.NewMemory()
	if cfg.Redis.Enabled {
		redisCache := cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("Warning: Redis unreachable, falling back to in-memory cache: %v", err)
		} else {
			store = redisCache
		}
		cancel()
	}
	cacheTTL := time.Duration(cfg.Currency.CacheTTLSeconds) * time.Second

	// Initialize repositories
	txManager := repository.NewTxManager(db)
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	saleSpaceRepo := repository.NewSaleSpaceRepository(db)
	stockRepo := repository.NewStockRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	kitchenRepo := repository.NewKitchenRepository(db)
	clientRepo := repository.NewClientRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	rateRepo := repository.NewRateRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	payrollRepo := repository.NewPayrollRepository(db)
	reportRepo := repository.NewReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, categoryRepo, store, cacheTTL)
	categoryService := service.NewCategoryService(categoryRepo, saleSpaceRepo)
	stockService := service.NewStockService(stockRepo, productRepo, txManager)
	rateService := service.NewRateService(rateRepo, store, cacheTTL, cfg.Currency.FallbackRate)
	saleService := service.NewSaleService(
		saleRepo, productRepo, stockRepo, clientRepo, rateRepo, txManager,
		cfg.Currency.FallbackRate, cfg.Currency.PointsEarnDivisor,
	)
	kitchenService := service.NewKitchenService(kitchenRepo)
	inventoryService := service.NewInventoryService(inventoryRepo, stockRepo, txManager)
	clientService := service.NewClientService(clientRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	purchaseService := service.NewPurchaseService(purchaseRepo, supplierRepo, productRepo, stockRepo, txManager)
	expenseService := service.NewExpenseService(expenseRepo)
	payrollService := service.NewPayrollService(payrollRepo)
	reportService := service.NewReportService(reportRepo)
	printerService := service.NewPrinterService(thermalPrinter, saleRepo, kitchenRepo, cfg.Printer.Type, cfg.App.Name)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		User:      handler.NewUserHandler(userService),
		Product:   handler.NewProductHandler(productService),
		Category:  handler.NewCategoryHandler(categoryService),
		Stock:     handler.NewStockHandler(stockService),
		Sale:      handler.NewSaleHandler(saleService, printerService),
		Kitchen:   handler.NewKitchenHandler(kitchenService, printerService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Client:    handler.NewClientHandler(clientService),
		Rate:      handler.NewRateHandler(rateService),
		Supplier:  handler.NewSupplierHandler(supplierService),
		Purchase:  handler.NewPurchaseHandler(purchaseService),
		Expense:   handler.NewExpenseHandler(expenseService),
		Payroll:   handler.NewPayrollHandler(payrollService),
		Report:    handler.NewReportHandler(reportService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
