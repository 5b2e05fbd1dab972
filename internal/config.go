package internal

import (
	"chat-mapper/store"
)

type Config struct {
	StoreDriver    string `env:"STORE_DRIVER,default=badger"`
	BadgerFilepath string `env:"BADGER_FILEPATH"`
	SQLiteFilepath string `env:"SQLITE_FILEPATH,default=entities.db"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
}

// StoreOptions picks the path that belongs to the configured driver.
// An empty Badger path means an in-memory database.
func (c Config) StoreOptions() store.Options {
	switch c.StoreDriver {
	case store.DriverSQLite:
		return store.Options{Driver: c.StoreDriver, Path: c.SQLiteFilepath}
	default:
		return store.Options{Driver: c.StoreDriver, Path: c.BadgerFilepath}
	}
}
