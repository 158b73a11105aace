package main

import (
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"gridCore/contracts"
	"log/slog"
	"os"
	"strconv"
)

const DefaultListenAddress = ":8080"

var ConfigError = errors.New("invalid configuration")

type AppConfig struct {
	DatabaseFilepath string
	ListenAddress    string
	SheetNaming      contracts.SheetNaming
	GridRows         int
	GridCols         int
	LogLevel         string
}

// LoadConfigFromEnv reads the environment, unset variables keep their defaults
func LoadConfigFromEnv() (config AppConfig, err error) {
	config = AppConfig{
		DatabaseFilepath: os.Getenv("DATABASE_FILEPATH"),
		ListenAddress:    DefaultListenAddress,
		SheetNaming:      contracts.CountSheetNaming,
		GridRows:         DefaultGridRows,
		GridCols:         DefaultGridCols,
		LogLevel:         slog.LevelInfo.String(),
	}

	if value := os.Getenv("LISTEN_PORT"); value != "" {
		config.ListenAddress = ":" + value
	}
	if value := os.Getenv("SHEET_NAMING"); value != "" {
		config.SheetNaming = contracts.SheetNaming(value)
	}
	if value := os.Getenv("LOG_LEVEL"); value != "" {
		config.LogLevel = value
	}
	if config.GridRows, err = readIntEnv("GRID_ROWS", config.GridRows); err != nil {
		return
	}
	config.GridCols, err = readIntEnv("GRID_COLS", config.GridCols)
	return
}

// BindFlags registers command line flags overriding the loaded values
func (config *AppConfig) BindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&config.DatabaseFilepath, "db", config.DatabaseFilepath, "bbolt database file path")
	flags.StringVar(&config.ListenAddress, "listen", config.ListenAddress, "HTTP listen address")
	flags.StringVar((*string)(&config.SheetNaming), "sheet-naming", string(config.SheetNaming), "new sheet naming: count or sequence")
	flags.IntVar(&config.GridRows, "rows", config.GridRows, "initial rows of a new sheet")
	flags.IntVar(&config.GridCols, "cols", config.GridCols, "initial columns of a new sheet")
	flags.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level: debug, info, warn or error")
}

func (config AppConfig) Validate() error {
	if config.DatabaseFilepath == "" {
		return fmt.Errorf("%w: database file path is empty", ConfigError)
	}

	if config.GridRows <= 0 || config.GridCols <= 0 {
		return fmt.Errorf("%w: grid dimensions must be positive, got %dx%d", ConfigError, config.GridRows, config.GridCols)
	}

	switch config.SheetNaming {
	case contracts.CountSheetNaming, contracts.SequenceSheetNaming:
	default:
		return fmt.Errorf("%w: %s: %w", ConfigError, config.SheetNaming, contracts.UnknownSheetNamingError)
	}

	if _, err := config.ParseLogLevel(); err != nil {
		return fmt.Errorf("%w: %s", ConfigError, err.Error())
	}

	return nil
}

func (config AppConfig) ParseLogLevel() (level slog.Level, err error) {
	err = level.UnmarshalText([]byte(config.LogLevel))
	return
}

func (config AppConfig) GridDimensions() contracts.SheetDimensions {
	return contracts.SheetDimensions{Rows: config.GridRows, Cols: config.GridCols}
}

func readIntEnv(name string, fallback int) (int, error) {
	value := os.Getenv(name)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s: %s", ConfigError, name, err.Error())
	}
	return parsed, nil
}
