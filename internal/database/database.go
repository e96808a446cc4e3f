package database

import (
	"database/sql"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/winehouse/internal/models"
)

var db *gorm.DB

// Connect initializes the database connection and runs migrations.
// An empty dsn opens the embedded sqlite store under dataDir; a
// postgres:// dsn connects to a server store instead.
func Connect(dsn, dataDir string) *gorm.DB {
	if db != nil {
		return db
	}

	var dialector gorm.Dialector
	if dsn == "" {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			log.Fatal().Err(err).Msg("failed to create data directory")
		}
		dialector = sqlite.Open(filepath.Join(dataDir, "wines.db"))
	} else {
		if err := ensureDatabase(dsn); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure database")
		}
		dialector = postgres.Open(dsn)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := Migrate(conn); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	db = conn
	return db
}

// DB exposes the initialized gorm.DB instance.
func DB() *gorm.DB {
	return db
}

// Migrate creates or updates the schema. Idempotent.
func Migrate(conn *gorm.DB) error {
	migrations := []interface{}{
		&models.Category{},
		&models.Wine{},
		&models.WinePrice{},
		&models.Country{},
		&models.Story{},
		&models.HomeHero{},
		&models.SiteSetting{},
		&models.ContactMessage{},
		&models.Admin{},
		&models.Upload{},
	}

	for _, migration := range migrations {
		if err := conn.AutoMigrate(migration); err != nil {
			return err
		}
	}

	return nil
}

// ensureDatabase creates the target postgres database when it is missing.
func ensureDatabase(dsn string) error {
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return nil
	}

	parsed, err := url.Parse(dsn)
	if err != nil {
		return err
	}

	dbName := strings.TrimPrefix(parsed.Path, "/")
	if dbName == "" {
		return nil
	}

	parsed.Path = "/postgres"
	masterDSN := parsed.String()

	sqlDB, err := sql.Open("postgres", masterDSN)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return err
	}

	var exists bool
	if err := sqlDB.QueryRow("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists); err != nil {
		return err
	}

	if exists {
		return nil
	}

	_, err = sqlDB.Exec("CREATE DATABASE " + pq.QuoteIdentifier(dbName))
	return err
}
