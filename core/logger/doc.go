// Package logger provides a structured logging facility based on Zap.
//
// Debug level selects zap's development preset, anything else the production
// preset. Format picks json or console encoding.
//
// WithRayID attaches the request's ray ID (set by the rayid middleware) so
// every log line of a request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Merge failed", zap.Error(err))
package logger
