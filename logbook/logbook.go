// Package logbook collects dive records and removes duplicate exports of the same dive.
package logbook

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/dodonator/dive-analysis/dive"
)

// Logbook holds at most one record per dive, keyed by its start date and time
type Logbook struct {
	dives map[dive.Key]*dive.Record
}

func New() *Logbook {
	return &Logbook{dives: make(map[dive.Key]*dive.Record)}
}

// Adds the record unless the logbook already contains the same dive.
// Returns false for duplicates, keeping the record that was added first.
func (l *Logbook) Add(record *dive.Record) bool {
	key := record.Key()
	if existing, ok := l.dives[key]; ok {
		slog.Warn(fmt.Sprintf("Dive %s from '%s' already added from '%s', skipping", key, record.Path(), existing.Path()))
		return false
	}
	l.dives[key] = record
	return true
}

func (l *Logbook) Get(key dive.Key) (*dive.Record, bool) {
	record, ok := l.dives[key]
	return record, ok
}

func (l *Logbook) Len() int {
	return len(l.dives)
}

// Returns the records in chronological order
func (l *Logbook) Records() []*dive.Record {
	records := slices.Collect(maps.Values(l.dives))
	slices.SortFunc(records, func(a, b *dive.Record) int {
		return a.Key().Compare(b.Key())
	})
	return records
}

// Returns the distinct dive modes found in the logbook, sorted
func (l *Logbook) Modes() []string {
	var modes []string
	for _, record := range l.dives {
		if !slices.Contains(modes, record.DiveMode) {
			modes = append(modes, record.DiveMode)
		}
	}
	slices.Sort(modes)
	return modes
}

// Returns the records whose dive mode is in modes, in chronological order
func (l *Logbook) ByMode(modes []string) []*dive.Record {
	var out []*dive.Record
	for _, record := range l.Records() {
		if slices.Contains(modes, record.DiveMode) {
			out = append(out, record)
		}
	}
	return out
}
