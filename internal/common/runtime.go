package common

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/romaneio/models"
	"github.com/dtnitsch/romaneio/pkg/db"
	"github.com/dtnitsch/romaneio/pkg/store"
)

// Logger builds the process logger: JSON to stderr, errors only under
// --quiet so stdout stays clean for command output.
func Logger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig reads the optional config file named by the global flag.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	return models.LoadConfig(c.String("config"))
}

// OpenStore opens the database and loads the manifest store. The caller must
// Close the returned DB.
func OpenStore(c *cli.Context, logger *slog.Logger) (*store.Store, *db.DB, error) {
	config, err := LoadConfig(c)
	if err != nil {
		return nil, nil, err
	}

	dbPath := config.DBPath
	if c.IsSet("db") {
		dbPath = c.String("db")
	}

	var database *db.DB
	if dbPath != "" {
		database, err = db.OpenAt(dbPath)
	} else {
		database, err = db.Open()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	st, err := store.New(database, logger)
	if err != nil {
		_ = database.Close()
		return nil, nil, err
	}
	return st, database, nil
}

// WarnPersistFailed tells the user a mutation reached memory but not disk.
// The in-memory state stays authoritative for this invocation.
func WarnPersistFailed(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: change applied but not persisted: %v\n", err)
	}
}
