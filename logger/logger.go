package logger

// Logger provides a standardized logging interface for the CRPT Go client.
// It defines methods for different log levels (Debug, Info, Warn, Error) so
// users can plug in their preferred logging implementation (e.g., slog,
// logrus, zap, standard log) or use the provided Noop logger to disable
// logging entirely.
//
// The logger is used throughout the client for:
// - request/response debugging
// - rate-gate wait diagnostics
// - background submitter status and errors
// - connection and transport issues
//
// Usage Example:
//
//	client, err := crpt_go.NewClient(token, crpt_go.WithLogger(myLogger))
//
//	// Disable logging entirely (the default)
//	client, err := crpt_go.NewClient(token, crpt_go.WithLogger(&logger.Noop{}))
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
