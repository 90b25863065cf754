package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	// LogSQL prints every statement; otherwise only slow queries and errors are logged.
	LogSQL       bool
	MaxIdleConns int
	MaxOpenConns int
	ConnLifetime time.Duration
}

func DefaultOptions() Options {
	return Options{
		MaxIdleConns: 5,
		MaxOpenConns: 25,
		ConnLifetime: time.Hour,
	}
}

func newLogger(opts Options) logger.Interface {
	level := logger.Warn
	if opts.LogSQL {
		level = logger.Info
	}
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)
}

func NewGormDBFromDSN(dsn string, opts Options) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         newLogger(opts),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(opts.ConnLifetime)

	return db, nil
}
