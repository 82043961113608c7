// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for console (development) or JSON
// (production) output and integrates with the Fiber web framework.
//
// All output is written to stderr. Stdout belongs to the launcher, which prints
// its human-readable announcement and shutdown lines there.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it
// to the log entry, so every line logged while serving a request can be
// correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Serving root resolved", zap.String("root", root))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Warn("File not found", zap.String("path", c.Path()))
package logger
