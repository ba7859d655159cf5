package postgres

import (
	"mealbox/internal/adapters/out/postgres/customerrepo"
	"mealbox/internal/adapters/out/postgres/orderrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to PostgreSQL. Driver errors are translated into gorm sentinels
// so repositories can detect unique violations with gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}

// Migrate creates or updates the customers, orders and order_items tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
}
