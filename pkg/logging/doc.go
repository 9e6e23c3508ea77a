// Package logging provides the shared diagnostic logger for scriptctl.
//
// All packages log through the package-level functions with a subsystem tag,
// e.g. logging.Info("Registry", "enabled %s", name). Output is slog text on
// stderr, filtered by the level chosen at startup, so it never interleaves
// with the user-facing confirmation output on stdout.
package logging
