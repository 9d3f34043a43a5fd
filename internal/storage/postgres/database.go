package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/gravadigital/turnier-api/internal/config"
	"github.com/gravadigital/turnier-api/internal/logger"
	"github.com/gravadigital/turnier-api/internal/storage/migrations"
)

// ConnectionConfig holds connection pool settings
type ConnectionConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	RetryDelay      time.Duration
}

// DefaultConnectionConfig returns the pool settings used by Connect
func DefaultConnectionConfig() *ConnectionConfig {
	return &ConnectionConfig{
		MaxIdleConns:    5,
		MaxOpenConns:    20,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
		MaxRetries:      3,
		RetryDelay:      2 * time.Second,
	}
}

// Connect opens the database with retries and exponential backoff
func Connect(cfg *config.Config) (*gorm.DB, error) {
	return ConnectWithConfig(cfg, DefaultConnectionConfig())
}

func ConnectWithConfig(cfg *config.Config, connCfg *ConnectionConfig) (*gorm.DB, error) {
	log := logger.Database()

	if err := validateDatabaseConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	gormLevel := gormLogger.Silent
	if cfg.Server.GinMode == "debug" {
		gormLevel = gormLogger.Info
	}
	gormConfig := &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt: true,
	}

	log.Debug("Connecting to database", "host", cfg.DB.Host, "port", cfg.DB.Port, "database", cfg.DB.Name)

	var db *gorm.DB
	var err error
	delay := connCfg.RetryDelay
	for attempt := 1; attempt <= connCfg.MaxRetries; attempt++ {
		db, err = gorm.Open(postgres.Open(cfg.GetDatabaseURL()), gormConfig)
		if err == nil {
			break
		}
		log.Warn("Database connection failed", "attempt", attempt, "error", err)
		if attempt < connCfg.MaxRetries {
			time.Sleep(delay)
			delay *= 2
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", connCfg.MaxRetries, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(connCfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(connCfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(connCfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connCfg.ConnMaxIdleTime)

	if err := HealthCheck(db, 5*time.Second); err != nil {
		return nil, err
	}

	log.Info("Connected to PostgreSQL", "host", cfg.DB.Host, "database", cfg.DB.Name)
	return db, nil
}

func validateDatabaseConfig(cfg *config.Config) error {
	switch {
	case cfg == nil:
		return fmt.Errorf("config cannot be nil")
	case cfg.DB.Host == "":
		return fmt.Errorf("database host cannot be empty")
	case cfg.DB.Port == "":
		return fmt.Errorf("database port cannot be empty")
	case cfg.DB.Name == "":
		return fmt.Errorf("database name cannot be empty")
	case cfg.DB.User == "":
		return fmt.Errorf("database user cannot be empty")
	}
	// password may be empty for local development
	return nil
}

// HealthCheck pings the database
func HealthCheck(db *gorm.DB, timeout time.Duration) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	return nil
}

// AutoMigrate runs the pending schema migrations
func AutoMigrate(db *gorm.DB) error {
	log := logger.Migration()
	start := time.Now()
	if err := migrations.RunMigrations(db); err != nil {
		log.Error("Database migrations failed", "error", err, "duration", time.Since(start))
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("Database migrations completed", "duration", time.Since(start))
	return nil
}

// Close closes the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	logger.Database().Info("Database connection closed")
	return nil
}
