package database

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/config"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Staff
		&entity.User{},

		// Catalog
		&entity.Category{},
		&entity.SaleSpace{},
		&entity.Product{},
		&entity.ProductPrice{},
		&entity.ProductCost{},

		// Stock ledger
		&entity.StockItem{},
		&entity.StockMovement{},

		// Sales and kitchen
		&entity.Client{},
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.KitchenOrder{},
		&entity.DeliveryInfo{},
		&entity.LoyaltyTransaction{},

		// Inventory counting
		&entity.InventorySession{},
		&entity.InventoryItem{},

		// Currency
		&entity.ExchangeRate{},

		// Procurement and spending
		&entity.Supplier{},
		&entity.Purchase{},
		&entity.PurchaseItem{},
		&entity.Expense{},

		// Payroll
		&entity.Employee{},
		&entity.SalaryPayment{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default data: the default sale
// space, a fallback exchange rate and the admin user when configured.
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	log.Println("Seeding default data...")

	// Default sale space so pricing has a home before any are created
	var defaultSpace entity.SaleSpace
	if err := db.Where("name = ?", "Salle").First(&defaultSpace).Error; err != nil {
		defaultSpace = entity.SaleSpace{
			Name:   "Salle",
			Active: true,
		}
		if err := db.Create(&defaultSpace).Error; err != nil {
			log.Printf("Warning: failed to create default sale space: %v", err)
		}
	}

	// Admin user from environment, if configured
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")

	var adminID uuid.UUID
	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				adminUser := entity.User{
					ID:        uuid.New(),
					FirstName: "Admin",
					LastName:  "Resto",
					Email:     adminEmail,
					Password:  string(hashedPassword),
					Role:      enum.RoleAdmin,
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					adminID = adminUser.ID
					log.Printf("Admin user created: %s", adminEmail)
				}
			}
		} else {
			adminID = existingAdmin.ID
		}
	}

	// Fallback exchange rate so pricing works before a rate is set
	var rateCount int64
	if err := db.Model(&entity.ExchangeRate{}).Count(&rateCount).Error; err == nil && rateCount == 0 {
		rate := entity.ExchangeRate{
			Rate:          cfg.Currency.FallbackRate,
			EffectiveFrom: time.Now(),
			CreatedByID:   adminID,
		}
		if err := db.Create(&rate).Error; err != nil {
			log.Printf("Warning: failed to create fallback exchange rate: %v", err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
