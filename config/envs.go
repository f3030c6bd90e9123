// Package config reads gridpath service settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrInvalidValue is returned when a variable is set but unusable.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvHost        = "GRIDPATH_HOST"
	EnvPort        = "GRIDPATH_PORT"
	EnvBaseURL     = "GRIDPATH_BASE_URL"
	EnvMaxCells    = "GRIDPATH_MAX_CELLS"
	EnvDefaultRows = "GRIDPATH_DEFAULT_ROWS"
	EnvDefaultCols = "GRIDPATH_DEFAULT_COLS"
	EnvGinMode     = "GIN_MODE"
)

// Config holds the service configuration.
type Config struct {
	Host        string // Host IP to listen on
	Port        int    // Port for the REST API
	BaseURL     string // Route prefix, e.g. /api
	MaxCells    int    // Largest board (rows*cols) a request may carry
	DefaultRows int    // Maze rows when a request gives none
	DefaultCols int    // Maze cols when a request gives none
	GinMode     string // Mode for the Gin framework (release, debug, test)
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		Host:        "0.0.0.0",
		Port:        8080,
		BaseURL:     "/api",
		MaxCells:    250000,
		DefaultRows: 30,
		DefaultCols: 50,
		GinMode:     "release",
	}
}

// Addr returns host:port.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads files (".env" when none are given) into the process
// environment, without overriding variables already set, and then builds a
// Config from it. Missing files are logged and ignored.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("%s .env file not found or could not be loaded: %v", LogInfo, err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, falling back to Default for
// unset variables.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var err error

	cfg.Host = getWithDefault(lookup, EnvHost, cfg.Host)
	cfg.BaseURL = getWithDefault(lookup, EnvBaseURL, cfg.BaseURL)
	cfg.GinMode = getWithDefault(lookup, EnvGinMode, cfg.GinMode)

	if cfg.Port, err = getPositiveInt(lookup, EnvPort, cfg.Port); err != nil {
		return Config{}, err
	}
	if cfg.Port > 65535 {
		return Config{}, fmt.Errorf("%w: %s=%d out of range", ErrInvalidValue, EnvPort, cfg.Port)
	}
	if cfg.MaxCells, err = getPositiveInt(lookup, EnvMaxCells, cfg.MaxCells); err != nil {
		return Config{}, err
	}
	if cfg.DefaultRows, err = getPositiveInt(lookup, EnvDefaultRows, cfg.DefaultRows); err != nil {
		return Config{}, err
	}
	if cfg.DefaultCols, err = getPositiveInt(lookup, EnvDefaultCols, cfg.DefaultCols); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// getWithDefault retrieves the value of key or returns def if not set.
func getWithDefault(lookup func(string) (string, bool), key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

// getPositiveInt retrieves key as a positive integer, or def if not set.
func getPositiveInt(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidValue, key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidValue, key, n)
	}
	return n, nil
}
