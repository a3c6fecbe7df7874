package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dodonator/dive-analysis/dive"
)

// Outcome of processing a single dive log
type Result[T any] struct {
	Path string
	Ok   T
	Err  error
}

func Ok[T any](path string, ok T) Result[T] {
	return Result[T]{Path: path, Ok: ok}
}

func Err[T any](path string, err error) Result[T] {
	return Result[T]{Path: path, Err: err}
}

// Opens every dive log, keeping going after failures
func openAll(paths []string) []Result[*dive.Record] {
	results := make([]Result[*dive.Record], 0, len(paths))
	for _, path := range paths {
		record, err := dive.Open(path)
		if err != nil {
			slog.Error(err.Error())
			results = append(results, Err[*dive.Record](path, err))
			continue
		}
		slog.Debug(fmt.Sprintf("Opened dive %s from '%s'", record.Key(), path))
		results = append(results, Ok(path, record))
	}
	return results
}

// Returns an error naming the dive logs that failed, nil if none did
func failures[T any](results []Result[T]) error {
	var failed []string
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r.Path)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d dive logs could not be processed: %s",
			len(failed), len(results), strings.Join(failed, ", "))
	}
	return nil
}
