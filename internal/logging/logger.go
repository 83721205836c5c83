package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// contextKey is the type for context keys
type contextKey string

const (
	// RequestIDKey is the context key for request IDs
	RequestIDKey contextKey = "request_id"
	// ClientIDKey is the context key for the storefront client namespace
	ClientIDKey contextKey = "client_id"
)

// Logger wraps zerolog for application logging
type Logger struct {
	logger zerolog.Logger
}

// Config holds logging configuration
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, text
	Output io.Writer
}

// New creates a new logger with the given configuration
func New(cfg Config) *Logger {
	// Set output
	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	// Parse log level
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	// Create logger based on format
	var logger zerolog.Logger
	if cfg.Format == "text" {
		// Pretty console output for development
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}).
			Level(level).
			With().
			Timestamp().
			Logger()
	} else {
		// JSON output for production
		logger = zerolog.New(output).
			Level(level).
			With().
			Timestamp().
			Logger()
	}

	return &Logger{logger: logger}
}

// Nop returns a logger that discards everything. Handy in tests.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger *Logger) {
	log.Logger = logger.logger
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	l.logger.Debug().Msg(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.logger.Info().Msg(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	l.logger.Warn().Msg(msg)
}

// Error logs an error message
func (l *Logger) Error(err error, msg string) {
	l.logger.Error().Err(err).Msg(msg)
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(err error, msg string) {
	l.logger.Fatal().Err(err).Msg(msg)
}

// WithContext returns a logger carrying the request and client ids found in ctx
func (l *Logger) WithContext(ctx context.Context) *zerolog.Logger {
	logger := withIDs(ctx, l.logger.With()).Logger()
	return &logger
}

// WithFields returns a logger with additional fields
func (l *Logger) WithFields(fields map[string]interface{}) *zerolog.Logger {
	event := l.logger.With()
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	logger := event.Logger()
	return &logger
}

// HTTPRequest logs a completed HTTP request
func (l *Logger) HTTPRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration) {
	logger := l.WithContext(ctx)

	// Escalate on client and server errors
	event := logger.Info()
	switch {
	case statusCode >= 500:
		event = logger.Error()
	case statusCode >= 400:
		event = logger.Warn()
	}

	event.
		Str("method", method).
		Str("path", path).
		Int("status_code", statusCode).
		Dur("duration_ms", duration).
		Msg("HTTP request completed")
}

// StoreOp logs a key-value store operation
func (l *Logger) StoreOp(ctx context.Context, op, key string, duration time.Duration, err error) {
	logger := l.WithContext(ctx)

	// Successful operations are only interesting when debugging
	event := logger.Debug()
	if err != nil {
		event = logger.Error()
	}

	event.
		Str("op", op).
		Str("key", key).
		Dur("duration_ms", duration).
		Err(err).
		Msg("Store operation")
}

// WithRequestID stores a request id in ctx
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// WithClientID stores a client id in ctx
func WithClientID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ClientIDKey, id)
}

// RequestID returns the request id stored in ctx, if any
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// ClientID returns the client id stored in ctx, if any
func ClientID(ctx context.Context) string {
	id, _ := ctx.Value(ClientIDKey).(string)
	return id
}

// Global logger functions for convenience

// Info logs an info message using the global logger
func Info(msg string) {
	log.Info().Msg(msg)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(err error, msg string) {
	log.Fatal().Err(err).Msg(msg)
}

// WithContext returns a logger with context values from the global logger
func WithContext(ctx context.Context) *zerolog.Logger {
	logger := withIDs(ctx, log.With()).Logger()
	return &logger
}

func withIDs(ctx context.Context, c zerolog.Context) zerolog.Context {
	// Add request ID if present
	if id := RequestID(ctx); id != "" {
		c = c.Str("request_id", id)
	}
	// Add client ID if present
	if id := ClientID(ctx); id != "" {
		c = c.Str("client_id", id)
	}
	return c
}
