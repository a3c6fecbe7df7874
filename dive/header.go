package dive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
)

// The export starts with two key/value blocks separated by a blank line.
// The row loader skips HeaderLines physical lines before the sample table.
const HeaderLines = 6

// Metadata keys in the header block
const (
	KeyDate              = "Date"
	KeyDuration          = "Duration"
	KeyMaxDepth          = "Max depth [m]"
	KeyMinTemperature    = "Min temp [°C]"
	KeyDiveMode          = "Dive mode"
	KeyDecoDive          = "Deco dive [Y|N]"
	KeyDecoStopViolation = "Deco stop violation [Y|N]"
	KeyDecoStopMissed    = "Deco stop missed [Y|N]"
)

// UTF-8 byte order mark, often left in front of the first key
const bom = "\ufeff"

// Reads a single physical line without its terminator.
// io.EOF is only returned when nothing was read.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Splits a single line into fields. A blank line has no fields.
func tokenize(line string) ([]string, error) {
	fields, err := gocsv.DefaultCSVReader(strings.NewReader(line)).Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	return fields, err
}

// Pairs a key line with a value line. Keys and values are matched by position,
// surplus keys or values on either line are dropped.
func parseBlock(keys, values string) (map[string]string, error) {
	k, err := tokenize(keys)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedHeader, err)
	}
	v, err := tokenize(values)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedHeader, err)
	}

	block := make(map[string]string, min(len(k), len(v)))
	for i := range min(len(k), len(v)) {
		block[k[i]] = v[i]
	}
	return block, nil
}

// Reads both metadata blocks and merges them. The second block wins on duplicate keys.
func readMetadata(r io.Reader) (map[string]string, error) {
	br := bufio.NewReader(r)

	var lines [5]string
	for i := range lines {
		line, err := readLine(br)
		if err != nil {
			return nil, fmt.Errorf("%w: could not read line %d: %w", ErrMalformedHeader, i+1, err)
		}
		lines[i] = line
	}

	// Line 3 separates the blocks and is ignored
	meta, err := parseBlock(strings.TrimPrefix(lines[0], bom), lines[1])
	if err != nil {
		return nil, err
	}
	more, err := parseBlock(lines[3], lines[4])
	if err != nil {
		return nil, err
	}

	for k, v := range more {
		meta[k] = v
	}
	return meta, nil
}

type metadata map[string]string

func (m metadata) require(key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", &FieldError{Field: key, Err: ErrMissingField}
	}
	return v, nil
}

// Looks up the key and converts it, attaching the field context to any error
func convertField[T any](m metadata, key string, conv func(string) (T, error)) (T, error) {
	var zero T
	raw, err := m.require(key)
	if err != nil {
		return zero, err
	}
	v, err := conv(raw)
	if err != nil {
		return zero, &FieldError{Field: key, Value: raw, Err: err}
	}
	return v, nil
}

// Populates the summary attributes of the record from the merged header mapping
func (r *Record) setMetadata(m metadata) error {
	raw, err := m.require(KeyDate)
	if err != nil {
		return err
	}
	r.Date, r.Time, err = ParseDateTime(raw)
	if err != nil {
		return &FieldError{Field: KeyDate, Value: raw, Err: err}
	}

	if r.Duration, err = convertField(m, KeyDuration, ParseDuration); err != nil {
		return err
	}
	if r.MaxDepth, err = convertField(m, KeyMaxDepth, parseDepth); err != nil {
		return err
	}
	if r.MinTemperature, err = convertField(m, KeyMinTemperature, ParseFloat); err != nil {
		return err
	}
	if r.DiveMode, err = m.require(KeyDiveMode); err != nil {
		return err
	}

	// Missing flags are treated as "N"
	r.DecoDive = ParseFlag(m[KeyDecoDive])
	r.DecoStopViolation = ParseFlag(m[KeyDecoStopViolation])
	r.DecoStopMissed = ParseFlag(m[KeyDecoStopMissed])
	return nil
}

func parseDepth(s string) (float64, error) {
	v, err := ParseFloat(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: depth '%s' is negative", ErrMalformed, s)
	}
	return v, nil
}

// Opens the file at path and reads the metadata block
func readHeader(path string) (metadata, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return readMetadata(file)
}
