// internal/infrastructure/database/postgres/connection.go
package postgres

import (
	"fmt"
	"log"
	"time"

	"github.com/your-org/clothing-store/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps the GORM database handle
type DB struct {
	gorm *gorm.DB
	cfg  *config.Config
}

// NewConnection creates a new PostgreSQL connection with pooling configured
func NewConnection(cfg *config.Config) (*DB, error) {
	logLevel := logger.Warn
	if cfg.App.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.GetDatabaseDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	log.Println("✅ Database connection established successfully")

	return &DB{
		gorm: db,
		cfg:  cfg,
	}, nil
}

// GetDB returns the GORM database instance
func (d *DB) GetDB() *gorm.DB {
	return d.gorm
}

// Health checks the database connection health
func (d *DB) Health() error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close closes the database connection
func (d *DB) Close() error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Stats reports connection pool statistics for readiness checks
func (d *DB) Stats() (open, idle int, waitDuration time.Duration, err error) {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return 0, 0, 0, err
	}
	stats := sqlDB.Stats()
	return stats.OpenConnections, stats.Idle, stats.WaitDuration, nil
}
