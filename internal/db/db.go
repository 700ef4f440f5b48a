package db

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database holds the ORM handle. It is constructed once at process start and
// injected into every consumer; nothing in this codebase reaches for a
// package-level connection.
type Database struct {
	*gorm.DB
}

// New creates, configures, and verifies a postgres connection pool.
// It returns an error if opening or pinging the database fails.
func New(dsn string, maxOpen, maxIdle int, connMaxLifetime time.Duration) (*Database, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}

	// configure pooling
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	// verify connectivity
	if err := sqlDB.Ping(); err != nil {
		// close the connection pool before returning the ping error
		if cErr := sqlDB.Close(); cErr != nil {
			return nil, cErr
		}
		return nil, err
	}
	return &Database{gdb}, nil
}

// Close releases the underlying connection pool.
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
