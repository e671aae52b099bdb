package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"quizforge/config"
)

// NewDatabase opens the SQLite database and tunes the connection for
// concurrent request handling. SQLite serializes writers, so a single
// write connection with WAL enabled keeps submission transactions safe.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.Path + "?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Error().Err(err).Str("path", cfg.Database.Path).Msg("Failed to open database")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	log.Info().Str("path", cfg.Database.Path).Msg("Database connection established")
	return db, nil
}
