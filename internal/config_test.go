package internal

import (
	"chat-mapper/store"
	"testing"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	var config Config
	err := env.Unmarshal(env.EnvSet{"LOG_LEVEL": "DEBUG"}, &config)
	req.NoError(err)

	req.Equal(store.DriverBadger, config.StoreDriver)
	req.Equal("DEBUG", config.LogLevel)
	req.Equal("entities.db", config.SQLiteFilepath)
	req.Empty(config.BadgerFilepath)
}

func TestConfig_StoreOptions(t *testing.T) {
	req := require.New(t)
	config := Config{
		StoreDriver:    store.DriverSQLite,
		BadgerFilepath: "/var/lib/chat/badger",
		SQLiteFilepath: "/var/lib/chat/entities.db",
	}
	req.Equal(store.Options{Driver: store.DriverSQLite, Path: "/var/lib/chat/entities.db"}, config.StoreOptions())

	config.StoreDriver = store.DriverBadger
	req.Equal(store.Options{Driver: store.DriverBadger, Path: "/var/lib/chat/badger"}, config.StoreOptions())
}
