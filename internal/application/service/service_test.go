package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"github.com/mkadima/resto-api/internal/infrastructure/database"
	infraRepo "github.com/mkadima/resto-api/internal/infrastructure/repository"
	"github.com/mkadima/resto-api/pkg/cache"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testFallbackRate = 2850.0
	testEarnDivisor  = 1000
)

// testEnv wires every service against an in-memory database, with a
// seeded cashier and one sale space.
type testEnv struct {
	db      *gorm.DB
	userID  uuid.UUID
	space   *entity.SaleSpace
	store   *cache.Memory
	product *ProductService
	stock   *StockService
	sale    *SaleService
	invent  *InventoryService
	kitchen *KitchenService
	rate    *RateService
	payroll *PayrollService
	client  *ClientService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// The in-memory database lives on a single connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))

	user := &entity.User{
		FirstName: "Test",
		LastName:  "Cashier",
		Email:     "cashier@example.com",
		Password:  "irrelevant",
		Role:      enum.RoleCashier,
		Active:    true,
	}
	require.NoError(t, db.Create(user).Error)

	space := &entity.SaleSpace{Name: "Salle", Active: true}
	require.NoError(t, db.Create(space).Error)

	tx := infraRepo.NewTxManager(db)
	productRepo := infraRepo.NewProductRepository(db)
	categoryRepo := infraRepo.NewCategoryRepository(db)
	stockRepo := infraRepo.NewStockRepository(db)
	saleRepo := infraRepo.NewSaleRepository(db)
	kitchenRepo := infraRepo.NewKitchenRepository(db)
	clientRepo := infraRepo.NewClientRepository(db)
	inventoryRepo := infraRepo.NewInventoryRepository(db)
	rateRepo := infraRepo.NewRateRepository(db)
	payrollRepo := infraRepo.NewPayrollRepository(db)

	store := cache.NewMemory()

	return &testEnv{
		db:      db,
		userID:  user.ID,
		space:   space,
		store:   store,
		product: NewProductService(productRepo, categoryRepo, store, time.Minute),
		stock:   NewStockService(stockRepo, productRepo, tx),
		sale: NewSaleService(saleRepo, productRepo, stockRepo, clientRepo, rateRepo, tx,
			testFallbackRate, testEarnDivisor),
		invent:  NewInventoryService(inventoryRepo, stockRepo, tx),
		kitchen: NewKitchenService(kitchenRepo),
		rate:    NewRateService(rateRepo, store, time.Minute, testFallbackRate),
		payroll: NewPayrollService(payrollRepo),
		client:  NewClientService(clientRepo),
	}
}

func (e *testEnv) createProduct(t *testing.T, name string, ptype enum.ProductType, unit enum.SaleUnit) *entity.Product {
	t.Helper()
	product, err := e.product.CreateProduct(context.Background(), &CreateProductInput{
		Name:     name,
		Type:     ptype,
		SaleUnit: unit,
	})
	require.NoError(t, err)
	return product
}

func (e *testEnv) setPrice(t *testing.T, product *entity.Product, amountUSD int64) {
	t.Helper()
	_, err := e.product.SetPrice(context.Background(), product.ID, &PriceInput{
		SaleSpaceID: e.space.ID,
		SaleUnit:    product.SaleUnit,
		AmountUSD:   amountUSD,
		AmountCDF:   int64(float64(amountUSD) / 100 * testFallbackRate),
	})
	require.NoError(t, err)
}

func (e *testEnv) receive(t *testing.T, product *entity.Product, loc enum.Location, qty float64) {
	t.Helper()
	_, err := e.stock.Receive(context.Background(), &ReceiveInput{
		ProductID: product.ID,
		Location:  loc,
		Quantity:  qty,
		Reason:    "initial stock",
		UserID:    e.userID,
	})
	require.NoError(t, err)
}

func timeAgo(d time.Duration) time.Time {
	return time.Now().Add(-d)
}

func (e *testEnv) stockAt(t *testing.T, product *entity.Product, loc enum.Location) float64 {
	t.Helper()
	items, err := e.stock.GetProductStock(context.Background(), product.ID)
	require.NoError(t, err)
	for _, item := range items {
		if item.Location == loc {
			return item.Quantity
		}
	}
	return 0
}
