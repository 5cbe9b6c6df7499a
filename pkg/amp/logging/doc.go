// Package logging is the logging facade used across applied-math-playground.
//
// Logger wraps the context-aware subset of log/slog the library needs:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// New(nil) binds slog.Default(); Nop() drops every record and is what the
// library uses when the caller does not supply a logger.
//
// # Redaction
//
// Private exponents and prime factors must never reach a log record. Mark the
// attribute instead:
//
//	logger.Info(ctx, "keypair accepted", "bits", 1024, logging.Redacted("d"))
//	// d="[redacted]"
package logging
