// Package logging wraps log/slog for Domus Core.
//
// Every record carries service and version fields; the handler format
// (JSON or text), level, and destination come from the logging section
// of config.yaml. Component loggers are derived with With:
//
//	log := logging.New(cfg.Logging, version)
//	regLog := log.With("component", "registry")
//	regLog.Info("device registered", "id", id)
//
// Never log credentials or broker passwords.
package logging
