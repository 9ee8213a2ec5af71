// Package logging provides the structured logger used throughout xatsw.
//
// It is a thin layer over the standard slog package: every record carries a
// subsystem attribute so diagnostics from the configuration store, the
// transfer engine and the command layer can be told apart.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Debug("Config", "Loaded configuration from %s", path)
//	logging.Warn("Config", "Ignoring malformed configuration file %s", path)
//	logging.Error("Transfer", err, "Copy of %s failed", src)
//
// # Subsystems
//
//   - **Config**: configuration loading and persistence
//   - **Registry**: storage registry mutations
//   - **Profile**: profile name resolution
//   - **Transfer**: file copies between target and storage
//   - **CLI**: command dispatch
//
// Before InitForCLI is called only warnings and errors are emitted, to
// standard error.
package logging
