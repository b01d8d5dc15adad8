// Package logging provides structured logging for bootstrap and
// infrastructure diagnostics: a slog.TextHandler, a LogLevel filter, and a
// small set of per-subsystem helpers (Debug/Info/Warn/Error).
//
// # Scope
//
// Per-test pass/fail output never goes through this package — that is the
// Reporter's job (internal/report), which writes directly to the
// configured output stream under its own mutex so streaming status lines
// stay uncluttered by log formatting. This package is reserved for
// infrastructure-phase concerns: Storage Bootstrapper diagnostics,
// reference-VM model construction, and backend-level debug tracing
// (per-test VM session correlation).
//
// # Usage
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//	logging.Info("bootstrap", "publishing %d modules", len(modules))
//	logging.Error("bootstrap", err, "dependency graph contains a cycle")
package logging
