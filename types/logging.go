package types

// Logger defines the structured logging interface used by the client.
//
// Messages are accompanied by alternating key/value pairs, making the
// interface compatible with slog-style and zap.SugaredLogger-style loggers.
// Implementations must be safe for concurrent use.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at info level.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at warn level.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at error level.
	Error(msg string, keysAndValues ...any)
}
