package database

import (
	"fmt"

	"strata-be-svc/internal/config"
	"strata-be-svc/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database wraps the gorm connection
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens a PostgreSQL connection and tunes the pool
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{DB: db}, nil
}

// New wraps an already opened gorm connection
func New(db *gorm.DB) *Database {
	return &Database{DB: db}
}

// AutoMigrate creates or updates every table the service owns
func (d *Database) AutoMigrate() error {
	return d.DB.AutoMigrate(Models()...)
}

// Models lists the tables in migration order
func Models() []interface{} {
	return []interface{}{
		&models.Account{},
		&models.Profile{},
		&models.HouseholdMember{},
		&models.Vehicle{},
		&models.ProfileDocument{},
		&models.Announcement{},
		&models.SecurityFee{},
		&models.ContactMessage{},
		&models.SchedulerLog{},
	}
}

// Close closes the underlying connection pool
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
