package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
)

// Filters the user selection against the values actually present in reference.
// A nil selection selects the whole reference. Duplicates are dropped and
// selected values missing from reference are returned separately.
func FilterSlice[T comparable](selection, reference []T) (kept, skipped []T) {
	if selection == nil {
		return reference, nil
	}

	kept = make([]T, 0, len(selection))
	for _, s := range selection {
		switch {
		case slices.Contains(kept, s) || slices.Contains(skipped, s):
			continue
		case slices.Contains(reference, s):
			kept = append(kept, s)
		default:
			skipped = append(skipped, s)
		}
	}
	return kept, skipped
}

// Replaces the default logger with a text logger writing to w
func SetLogger(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// Redirects logging to filename. The caller closes the returned file.
func SetLogFile(filename string, verbose bool) (*os.File, error) {
	fh, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("could not create log '%s': %w", filename, err)
	}
	SetLogger(fh, verbose)
	return fh, nil
}
