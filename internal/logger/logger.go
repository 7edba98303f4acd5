// Package logger provides structured logging of operation results.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/muliwe/go-textmath/internal/runner"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Logger wraps zerolog for result logging
type Logger struct {
	zlog zerolog.Logger
}

// Config holds logger configuration
type Config struct {
	Level  string    // zerolog level name (debug, info, warn, error, disabled)
	Format string    // "console" or "json"
	Output io.Writer // Destination (default: os.Stderr)
}

// DefaultConfig returns default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: FormatConsole,
		Output: os.Stderr,
	}
}

// New creates a new logger instance
func New(cfg Config) (*Logger, error) {
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	switch cfg.Format {
	case FormatJSON:
	case FormatConsole, "":
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
		}
	default:
		return nil, fmt.Errorf("unknown log format %q (want %s or %s)", cfg.Format, FormatConsole, FormatJSON)
	}

	return &Logger{
		zlog: zerolog.New(out).Level(level).With().Timestamp().Logger(),
	}, nil
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

// LogResult writes one debug event for a finished run.
// Failures are returned to the caller, which reports them.
func (l *Logger) LogResult(result runner.Result, elapsed time.Duration) {
	ev := l.zlog.Debug()
	if result.OK() {
		ev = ev.Str("output", result.Output)
	} else {
		ev = ev.Err(result.Err)
	}

	ev.Str("request_id", result.RequestID).
		Str("operation", result.Operation).
		Strs("args", result.Args).
		Int64("duration_ms", elapsed.Milliseconds()).
		Msg("operation finished")
}

// Info returns an info level event
func (l *Logger) Info() *zerolog.Event {
	return l.zlog.Info()
}

// Debug returns a debug level event
func (l *Logger) Debug() *zerolog.Event {
	return l.zlog.Debug()
}

// Error returns an error level event
func (l *Logger) Error() *zerolog.Event {
	return l.zlog.Error()
}
