package config

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config is loaded from the environment (a .env file is honored via godotenv).
type Config struct {
	// Dialect is the database dialect, sqlite or postgres.
	Dialect string
	// DSN is the database connection string, a file path for sqlite.
	DSN string
	// HTTPPort is the port the http server listens on.
	HTTPPort string
	// RedisAddr enables the redis entry cache when set; empty means an
	// in-process cache.
	RedisAddr string
	// Compression is the codec used for edit snapshots: none, gzip, lz4 or brotli.
	Compression string
}

func LoadConfig() *Config {
	return &Config{
		Dialect:     env("WIKI_DB", "sqlite"),
		DSN:         env("WIKI_DB_DSN", ".tmp/wiki.db"),
		HTTPPort:    env("WIKI_HTTP_PORT", "4920"),
		RedisAddr:   env("WIKI_REDIS_ADDR", ""),
		Compression: env("WIKI_COMPRESSION", "none"),
	}
}

func GetDb(cnf *Config) *gorm.DB {
	var dialector gorm.Dialector

	switch cnf.Dialect {
	case "postgres":
		dialector = postgres.Open(cnf.DSN)
	default:
		dialector = sqlite.Open(cnf.DSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	return db
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}
