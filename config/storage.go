package config

import (
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the durable mirror behind the store. With DB_URL set it
// is a Postgres database; otherwise a local SQLite file (DATA_PATH,
// defaulting to ./storefront.db) stands in for the browser-local storage
// the web build used. Either way the store only ever sees a key/value blob
// table.
func ConnectDB() (*gorm.DB, error) {
	if dsn := os.Getenv("DB_URL"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	path := os.Getenv("DATA_PATH")
	if path == "" {
		path = "storefront.db"
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
