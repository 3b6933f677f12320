package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/trinodb/trino-go-client/trino" // Trino driver
	_ "modernc.org/sqlite"                       // SQLite driver
)

// Config holds configuration for the database connection
type Config struct {
	Type            string        `koanf:"type"`
	Path            string        `koanf:"path"`
	ServerURI       string        `koanf:"server_uri"`
	Catalog         string        `koanf:"catalog"`
	Schema          string        `koanf:"schema"`
	TableName       string        `koanf:"table_name"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

// TableRef returns the fully qualified table name for the configured backend.
func (c Config) TableRef() string {
	if c.Type == "trino" {
		return fmt.Sprintf("%s.%s.%s", c.Catalog, c.Schema, c.TableName)
	}
	return c.TableName
}

// Database provides a database connection
type Database struct {
	*sql.DB
	Config Config
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS %[1]s (
	swift_code TEXT PRIMARY KEY,
	swift_code_base TEXT NOT NULL,
	country_iso_code TEXT NOT NULL,
	bank_name TEXT NOT NULL,
	is_headquarter BOOLEAN NOT NULL,
	address TEXT NOT NULL DEFAULT '',
	country_name TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_%[1]s_base ON %[1]s (swift_code_base);
CREATE INDEX IF NOT EXISTS idx_%[1]s_country ON %[1]s (country_iso_code)`

const trinoSchema = `
CREATE TABLE IF NOT EXISTS %s (
	swift_code VARCHAR,
	swift_code_base VARCHAR,
	country_iso_code VARCHAR,
	bank_name VARCHAR,
	is_headquarter BOOLEAN,
	address VARCHAR,
	country_name VARCHAR
)`

// New initializes a database connection and ensures the schema exists
func New(config Config) (*Database, error) {
	var db *sql.DB
	var err error

	switch config.Type {
	case "sqlite":
		db, err = openSQLite(config)
	case "trino":
		db, err = openTrino(config)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", config.Type)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	database := &Database{DB: db, Config: config}

	if err := database.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to execute schema: %w", err)
	}

	return database, nil
}

func openSQLite(config Config) (*sql.DB, error) {
	dir := filepath.Dir(config.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL", config.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	// SQLite allows a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(config.ConnMaxLifetime)

	return db, nil
}

func openTrino(config Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s?catalog=%s&schema=%s", config.ServerURI, config.Catalog, config.Schema)

	db, err := sql.Open("trino", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open Trino connection: %w", err)
	}

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)
	db.SetConnMaxLifetime(config.ConnMaxLifetime)

	return db, nil
}

// ensureSchema creates the swift_banks table and its indexes if missing.
// Statements are executed one by one, Trino does not support multi-statement
// execution.
func (db *Database) ensureSchema() error {
	var schema string
	switch db.Config.Type {
	case "trino":
		schema = fmt.Sprintf(trinoSchema, db.Config.TableRef())
	default:
		schema = fmt.Sprintf(sqliteSchema, db.Config.TableRef())
	}

	for _, query := range strings.Split(schema, ";") {
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %s, error: %w", query, err)
		}
	}

	return nil
}
