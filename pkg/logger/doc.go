// Package logger provides structured logging with context attributes and optional
// Sentry reporting.
//
// Records go to stderr by default, so tools that print their result on stdout
// can log freely:
//
//	log := logger.New(logger.Config{Format: logger.FormatText, Level: slog.LevelInfo})
//
// # Context Attributes
//
// Attributes stored in a context with ContextWithAttrs are added to every record
// logged with that context:
//
//	ctx = logger.ContextWithAttrs(ctx, slog.String("run_id", id))
//	log.WarnContext(ctx, "failed to load translation document")
//	// ... run_id=... is included
//
// A ContextExtractor does the same for values computed per call.
//
// # Sentry Integration
//
// Setting Config.Sentry.DSN forwards warnings and errors to Sentry as well.
// If the DSN is empty or initialization fails, logging continues locally.
// Call Flush before the process exits so buffered events are delivered.
package logger
