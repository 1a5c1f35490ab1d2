// Package logger provides structured logging for the image catalog
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger wraps zerolog with catalog-specific functionality
type Logger struct {
	zlog zerolog.Logger
}

// Config holds logger configuration
type Config struct {
	Level      string // debug, info, warn, error
	Pretty     bool   // pretty-print for terminals
	Output     io.Writer
	WithCaller bool
}

// NewLogger creates a new structured logger
func NewLogger(cfg Config) *Logger {
	level := zerolog.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// Logs go to stderr so command output on stdout stays clean
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	zlog := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("service", "imagecatalog").
		Logger()

	if cfg.WithCaller {
		zlog = zlog.With().Caller().Logger()
	}

	return &Logger{zlog: zlog}
}

// GetZerolog returns the underlying zerolog logger
func (l *Logger) GetZerolog() *zerolog.Logger {
	return &l.zlog
}

// Info logs an info message
func (l *Logger) Info(msg string) *zerolog.Event {
	return l.zlog.Info().Str("msg", msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) *zerolog.Event {
	return l.zlog.Debug().Str("msg", msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) *zerolog.Event {
	return l.zlog.Warn().Str("msg", msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) *zerolog.Event {
	return l.zlog.Error().Str("msg", msg)
}

// WithFields returns a logger with additional fields
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	ctx := l.zlog.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{zlog: ctx.Logger()}
}

// DocLogger returns a logger for metadata document operations
func (l *Logger) DocLogger(operation string) *Logger {
	return &Logger{
		zlog: l.zlog.With().
			Str("component", "metadata").
			Str("operation", operation).
			Logger(),
	}
}

// CommandLogger returns a logger for a CLI command
func (l *Logger) CommandLogger(command string) *Logger {
	return &Logger{
		zlog: l.zlog.With().
			Str("component", "cli").
			Str("command", command).
			Logger(),
	}
}

// LogDocumentOperation logs a document read/write. Call it on a DocLogger,
// which carries the component and operation.
func (l *Logger) LogDocumentOperation(path string, duration time.Duration, err error) {
	event := l.zlog.Debug().
		Str("path", path).
		Dur("duration_ms", duration)

	if err != nil {
		event = l.zlog.Error().
			Str("path", path).
			Dur("duration_ms", duration).
			Err(err)
	}

	event.Msg("Document operation completed")
}

// LogCacheLookup logs a dataset cache lookup
func (l *Logger) LogCacheLookup(hit bool) {
	l.Debug("Dataset cache lookup").
		Bool("hit", hit).
		Send()
}

// LogCommandStart logs the start of a CLI command. Call it on a
// CommandLogger, which carries the command name.
func (l *Logger) LogCommandStart(args []string) {
	l.zlog.Info().
		Str("event", "command_start").
		Strs("args", args).
		Msg("Command starting")
}

// LogCommandDone logs the end of a CLI command
func (l *Logger) LogCommandDone(duration time.Duration, err error) {
	event := l.zlog.Info().
		Str("event", "command_done").
		Dur("duration_ms", duration)

	if err != nil {
		event = l.zlog.Error().
			Str("event", "command_failed").
			Dur("duration_ms", duration).
			Err(err)
	}

	event.Msg("Command finished")
}

// DocumentObserver adapts a Logger to metadata.Observer. Log must not
// already carry a component field.
type DocumentObserver struct {
	Log *Logger
}

func (o DocumentObserver) DocumentOperation(op, path string, duration time.Duration, err error) {
	o.Log.DocLogger(op).LogDocumentOperation(path, duration, err)
}

func (o DocumentObserver) CacheLookup(hit bool) {
	o.Log.DocLogger("cache_lookup").LogCacheLookup(hit)
}

// Global logger instance
var globalLogger *Logger

// InitGlobalLogger initializes the global logger
func InitGlobalLogger(cfg Config) {
	globalLogger = NewLogger(cfg)
	log.Logger = *globalLogger.GetZerolog()
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() *Logger {
	if globalLogger == nil {
		InitGlobalLogger(Config{
			Level:  "info",
			Pretty: true,
		})
	}
	return globalLogger
}
