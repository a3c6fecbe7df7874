// Package dive reads dive computer log exports.
//
// An export is a CSV file that starts with two key/value metadata blocks
// followed by a table of depth and temperature samples:
//
//	Date,Duration,Max depth [m],...
//	21.07.2023 09:15:42,01:23:45,18.4,...
//
//	Dive mode,Deco dive [Y|N],...
//	Single gas,N,...
//
//	Dive time [min:s],Depth [m],Temperature [°C],...
//	0:00,0.0,18.0,...
//
// The metadata is parsed when the record is opened, the samples only when
// they are needed.
package dive

import (
	"fmt"
	"hash/fnv"
	"iter"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Key identifies a dive: no two dives start at the same date and time
type Key struct {
	Date Date
	Time Clock
}

func (k Key) String() string {
	return k.Date.String() + " " + k.Time.String()
}

// Orders keys chronologically
func (k Key) Compare(other Key) int {
	a := [...]int{k.Date.Year, int(k.Date.Month), k.Date.Day, k.Time.Hour, k.Time.Minute, k.Time.Second}
	b := [...]int{other.Date.Year, int(other.Date.Month), other.Date.Day, other.Time.Hour, other.Time.Minute, other.Time.Second}
	return slices.Compare(a[:], b[:])
}

// Record is a single logged dive.
//
// The samples are loaded on first use and then kept for the lifetime of the record.
// No file handle is kept open between calls.
type Record struct {
	Date              Date
	Time              Clock
	Duration          time.Duration
	MaxDepth          float64 // meters
	MinTemperature    float64 // °C
	DiveMode          string
	DecoDive          bool
	DecoStopViolation bool
	DecoStopMissed    bool

	path string

	mu     sync.Mutex
	loaded bool
	rows   []Sample
}

// Opens the dive log at path and parses its metadata block.
// The sample table is not read.
func Open(path string) (*Record, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("could not open dive log: %w", err)
	}

	meta, err := readHeader(path)
	if err != nil {
		return nil, fmt.Errorf("could not read header of '%s': %w", path, err)
	}

	record := &Record{path: path}
	if err := record.setMetadata(meta); err != nil {
		return nil, fmt.Errorf("could not parse header of '%s': %w", path, err)
	}
	return record, nil
}

func (r *Record) Path() string {
	return r.path
}

func (r *Record) Key() Key {
	return Key{r.Date, r.Time}
}

// Equal reports whether both records describe the same dive.
// Comparing against a nil record is a programming error and panics.
func (r *Record) Equal(other *Record) bool {
	if other == nil {
		panic("dive: Equal called with a nil record")
	}
	return r.Key() == other.Key()
}

// Hash is consistent with Equal
func (r *Record) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(r.Key().String()))
	return h.Sum64()
}

// (Re)reads the sample table from disk, replacing any samples already loaded.
// On error the previously loaded samples are kept.
func (r *Record) LoadRows() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// Loads the sample table unless it has already been loaded
func (r *Record) EnsureRows() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded {
		return nil
	}
	return r.load()
}

// Must be called with r.mu held
func (r *Record) load() error {
	rows, err := readSamples(r.path)
	if err != nil {
		return fmt.Errorf("could not load samples of '%s': %w", r.path, err)
	}

	slog.Debug(fmt.Sprintf("Loaded %d samples from '%s'", len(rows), r.path))
	r.rows = rows
	r.loaded = true
	return nil
}

func (r *Record) Loaded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loaded
}

func (r *Record) snapshot() []Sample {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows
}

// Returns a copy of the loaded samples, nil if they have not been loaded
func (r *Record) Rows() []Sample {
	rows := r.snapshot()
	if rows == nil {
		return nil
	}
	out := make([]Sample, len(rows))
	for i, sample := range rows {
		out[i] = sample.clone()
	}
	return out
}

// All iterates over copies of the loaded samples in file order.
// It does not load the samples: call LoadRows or EnsureRows first.
func (r *Record) All() iter.Seq2[int, Sample] {
	return func(yield func(int, Sample) bool) {
		for i, sample := range r.snapshot() {
			if !yield(i, sample.clone()) {
				return
			}
		}
	}
}

// Mean depth over all samples, rounded to two decimals.
// Loads the samples if needed.
func (r *Record) AverageDepth() (float64, error) {
	if err := r.EnsureRows(); err != nil {
		return 0, err
	}

	rows := r.snapshot()
	if len(rows) == 0 {
		return 0, fmt.Errorf("could not compute average depth of '%s': %w", r.path, ErrNoSamples)
	}

	depths := make([]float64, len(rows))
	for i, sample := range rows {
		depths[i] = sample.Depth
	}

	return roundTo(stat.Mean(depths, nil), 2)
}

// Rounds half to even on the exact binary value of v, so 2.675 (stored as
// 2.67499999...) becomes 2.67
func roundTo(v float64, scale int) (float64, error) {
	return strconv.ParseFloat(strconv.FormatFloat(v, 'f', scale, 64), 64)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// Shortest representation, whole numbers keep one decimal: 30 prints as "30.0"
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.ContainsAny(s, ".IN") {
		return s
	}
	return s + ".0"
}

func (r *Record) String() string {
	return fmt.Sprintf(`Dive:
    Date: %s
    Time: %s
    Duration: %s
    Depth: %s
    Temperature: %s°C
`, r.Date, r.Time, formatDuration(r.Duration), formatFloat(r.MaxDepth), formatFloat(r.MinTemperature))
}
