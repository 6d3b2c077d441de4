// Package logger provides a logging utility based on log/slog
//
// DEBUG logging can be enabled by setting the MCP_DEBUG environment variable:
//   export MCP_DEBUG=1
//
// By default, debug logging is disabled to reduce noise in normal operation.
// Logs go to stderr so they never mix with the MCP stdio stream.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	// Logger is the global logger instance
	Logger *slog.Logger
)

func init() {
	logLevel := slog.LevelInfo
	if debugFromEnv() {
		logLevel = slog.LevelDebug
	}
	setLogger(logLevel, os.Stderr)
}

func debugFromEnv() bool {
	debugEnv := os.Getenv("MCP_DEBUG")
	return debugEnv != "" && strings.ToLower(debugEnv) != "false" && debugEnv != "0"
}

func setLogger(level slog.Level, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level: level,
	}
	Logger = slog.New(slog.NewTextHandler(w, opts))
	slog.SetDefault(Logger)
}

// ParseLevel converts a config level name to a slog level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// Configure replaces the global logger. MCP_DEBUG still forces debug level.
func Configure(level string, w io.Writer) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	if debugFromEnv() {
		lvl = slog.LevelDebug
	}
	if w == nil {
		w = os.Stderr
	}
	setLogger(lvl, w)
	return nil
}

// With returns a logger carrying the given attributes
func With(args ...any) *slog.Logger {
	return Logger.With(args...)
}

// Debug logs a debug message if debug logging is enabled
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
