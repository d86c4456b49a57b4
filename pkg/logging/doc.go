// Package logging provides structured logging configuration for mcpconsole.
//
// This package wraps log/slog so that the CLI, the terminal UI and the
// development backend all log the same way.
//
// # Usage
//
//	logger := logging.New(logging.Settings(cfg.LogLevel, cfg.LogFormat, os.Stderr))
//	logger.Info("instance created", "id", inst.ID)
//
// Attributes named in SecretKeys, such as "token", are written as
// [Redacted] so the bearer token never reaches a log file.
//
// # Integration
//
// Components accept a *slog.Logger in their constructor or through an
// option. When none is given they fall back to logging.Nop().
package logging
