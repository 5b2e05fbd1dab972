package store

import (
	"chat-mapper/errors"
	"fmt"
	"log/slog"
)

const (
	DriverBadger = "badger"
	DriverSQLite = "sqlite"
)

// Options selects and locates the backend behind EntityStore.
// An empty path opens an in-memory Badger database.
type Options struct {
	Driver string
	Path   string
}

func Open(options Options, log *slog.Logger) (EntityStore, error) {
	var (
		s   EntityStore
		err error
	)
	switch options.Driver {
	case DriverBadger, "":
		s, err = OpenBadger(options.Path, log)
	case DriverSQLite:
		s, err = OpenSQLite(options.Path, log)
	default:
		err = fmt.Errorf("%w: %q", errors.ErrUnknownDriver, options.Driver)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
