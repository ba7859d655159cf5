package cmd

import (
	"fmt"

	"mealbox/internal/adapters/out/memory"
	"mealbox/internal/adapters/out/postgres"
	"mealbox/internal/core/ports"
)

// OpenStorage builds the unit of work factory for the configured driver. The
// returned close function releases the database connection pool.
func OpenStorage(config Config) (ports.UnitOfWorkFactory, func() error, error) {
	if config.StorageDriver == StorageDriverMemory {
		return memory.NewUnitOfWorkFactory(memory.NewStore()), func() error { return nil }, nil
	}

	dsn, err := config.DSN()
	if err != nil {
		return nil, nil, err
	}

	db, err := postgres.Open(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	if err = postgres.Migrate(db); err != nil {
		return nil, nil, fmt.Errorf("migrate database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}

	return postgres.NewGormUnitOfWorkFactory(db), sqlDB.Close, nil
}
