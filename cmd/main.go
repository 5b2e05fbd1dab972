package main

import (
	"chat-mapper/directory"
	"chat-mapper/internal"
	"chat-mapper/mapper"
	"fmt"
	"os"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chat-mapper terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires configuration, the persistence registry and the user directory.
// Deferred cleanups run before main exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Entity store and adapters, fatal when the store cannot be opened
	registry, err := mapper.Open(config.StoreOptions(), log)
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		if err := registry.Close(); err != nil {
			log.Error("Closing entity store failed", "error", err)
		}
	}()

	// 3. Warm the user directory by id and phone
	users := directory.New(registry.Users, log)
	if err = users.Warm(); err != nil {
		return exitRuntime, err
	}

	log.Info("chat-mapper ready",
		"driver", config.StoreOptions().Driver,
		"users", users.Len(),
		"pooled", registry.Pool.Len())
	return exitOK, nil
}
