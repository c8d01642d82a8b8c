package configs

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/youssofmousssa/luxestorebackeend/entity"
)

// OpenDB opens the store selected by cfg.DBDriver. The returned handle is
// shared by every repository for the lifetime of the process.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	isSQLite := false

	switch cfg.DBDriver {
	case "", "sqlite", "sqlite3":
		dialector = sqlite.Open(sqliteDSN(cfg.DBSource))
		isSQLite = true
	case "postgres", "postgresql":
		dialector = postgres.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	level := gormlogger.Warn
	if cfg.IsDev() && strings.EqualFold(cfg.LogLevel, "debug") {
		level = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(log.New(os.Stdout, "", log.LstdFlags), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}

	if isSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// single writer: pin the pool to one connection
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}
	return db, nil
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Order{},
		&entity.Review{},
		&entity.Cart{},
	)
}

func sqliteDSN(src string) string {
	if strings.Contains(src, "_foreign_keys") || strings.Contains(src, "_fk=") {
		return src
	}
	if strings.Contains(src, "?") {
		return src + "&_foreign_keys=on"
	}
	return src + "?_foreign_keys=on"
}
