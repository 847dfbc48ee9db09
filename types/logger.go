package types

// Logger is the structured logging interface the library components accept.
//
// Methods take a message plus alternating key-value pairs, the shape used by
// log/slog's sugared calls and by most structured loggers, so adapting an
// existing logger is a thin wrapper.
type Logger interface {
	// Debug logs fine-grained events such as applied batches and skipped
	// saves.
	Debug(msg string, keysAndValues ...any)

	// Info logs state-changing events such as a saved snapshot or a
	// published change set.
	Info(msg string, keysAndValues ...any)

	// Warn logs recoverable anomalies such as rejected batches and lost
	// revision races.
	Warn(msg string, keysAndValues ...any)

	// Error logs failures the caller will also see as a returned error.
	Error(msg string, keysAndValues ...any)

	// Fatal logs the message and terminates the process. The library never
	// calls Fatal itself; it exists for callers sharing one logger.
	Fatal(msg string, keysAndValues ...any)
}
