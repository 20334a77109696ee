// Package logging configures structured logging for the nominal tools.
//
// It wraps log/slog so every command builds its logger the same way from
// the resolved configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.ParseLevel(cfg.LogLevel),
//	    Format: logging.ParseFormat(cfg.LogFormat),
//	})
//	logger.Info("verified corpus", "corpus", "uuidv7", "pairs", 100)
//
// Text output is meant for terminals, JSON for log aggregation.
//
// The codec and identifier packages never log. Components that do, such as
// the SQL fixture verifier, accept a *slog.Logger and fall back to Nop when
// none is given.
package logging
