// Package logging wires up process-wide structured logging for an EVO
// component: JSON records to a per-component file for ingestion, readable
// text to stdout for operators. Call Init once at startup and keep the
// returned Guard alive for the process lifetime.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	envLogDir   = "EVO_LOG_DIR"
	envLogLevel = "EVO_LOG_LEVEL"

	defaultLogDir = "./logs"
)

// Dir returns the log destination directory: EVO_LOG_DIR if set, otherwise
// ./logs.
func Dir() string {
	if dir := os.Getenv(envLogDir); dir != "" {
		return dir
	}
	return defaultLogDir
}

// Level returns the minimum severity: EVO_LOG_LEVEL if set to one of
// debug/info/warn/error, otherwise info.
func Level() slog.Level {
	switch strings.ToLower(os.Getenv(envLogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Guard owns the open log file. It must stay live for the process
// duration; Close flushes and releases it during shutdown.
type Guard struct {
	file *os.File
}

// Close releases the log file. Records logged after Close are still
// written to stdout.
func (g *Guard) Close() error {
	return g.file.Close()
}

// Init installs the default slog logger for a component: a JSON handler
// appending to <dir>/<component>.log (with source locations, for
// ingestion) and a text handler on stdout. A .env file in the working
// directory is loaded first so EVO_LOG_DIR / EVO_LOG_LEVEL can live there.
func Init(component string) (*Guard, error) {
	_ = godotenv.Load()

	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: create log directory: %w", err)
	}
	file, err := os.OpenFile(filepath.Join(dir, component+".log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}

	level := Level()
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level, AddSource: true})
	stdoutHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})

	logger := slog.New(fanout{fileHandler, stdoutHandler}).With("component", component)
	slog.SetDefault(logger)

	return &Guard{file: file}, nil
}
