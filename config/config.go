package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultPort       = 3000
	DefaultDataSource = "wr_data.json"
)

// Config holds the settings shared by the serve and report commands.
type Config struct {
	Port int
	// DataSource is a file path or an http(s) URL.
	DataSource  string
	RoutesFile  string
	CORSOrigins []string
	LogLevel    string
}

// Load reads the given env files (".env" when none are given) into the
// environment and then builds the config from environment variables. Missing
// env files are ignored, variables already set in the environment win.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading %s file: %w", f, err)
		}
	}

	port := DefaultPort
	if p := os.Getenv("PORT"); p != "" {
		var err error
		port, err = strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("error parsing port number: %w", err)
		}
	}

	level := getEnv("LOG_LEVEL", "info")
	if _, err := zapcore.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("error parsing LOG_LEVEL: %w", err)
	}

	return &Config{
		Port:        port,
		DataSource:  getEnv("DATA_SOURCE", DefaultDataSource),
		RoutesFile:  os.Getenv("ROUTES_FILE"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
		LogLevel:    level,
	}, nil
}

// NewLogger builds a production zap logger at the configured level, debug
// when verbose is set.
func (c *Config) NewLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
