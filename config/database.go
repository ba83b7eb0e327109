package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gbalekage/my-pos-v2-sub000/models"
)

// ConnectDB opens the Postgres connection and returns it to the caller;
// the handle is injected everywhere instead of living as a package global.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	dbURL := cfg.DatabaseURL
	if dbURL == "" {
		dbURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			"localhost", "postgres", "postgres", "pos", "5432",
		)
	} else if !strings.Contains(dbURL, "sslmode=") {
		sep := "?"
		if strings.Contains(dbURL, "?") {
			sep = "&"
		}
		dbURL = dbURL + sep + "sslmode=require"
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "[GORM] ", log.LstdFlags),
		logger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      logger.Warn,
		},
	)

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.Exec(`SET TIME ZONE 'UTC'`).Error; err != nil {
		log.Printf("could not set timezone UTC: %v", err)
	}
	return db, nil
}

// Migrate keeps the schema in step with the models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Printer{},
		&models.Store{},
		&models.Category{},
		&models.Item{},
		&models.StockAdjustment{},
		&models.Table{},
		&models.Order{},
		&models.OrderItem{},
		&models.Discount{},
		&models.Cancellation{},
		&models.Client{},
		&models.Sale{},
		&models.SaleItem{},
		&models.SignedBill{},
		&models.Expense{},
		&models.CloseDay{},
	)
}
