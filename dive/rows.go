package dive

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

// Columns of the sample table that are converted to typed values
const (
	ColumnDiveTime    = "Dive time [min:s]"
	ColumnDepth       = "Depth [m]"
	ColumnTemperature = "Temperature [°C]"
)

// Sample is one time-series measurement during the dive
type Sample struct {
	DiveTime    time.Duration
	Depth       float64
	Temperature float64
	// Remaining columns of the row, untouched
	Extra map[string]string
}

func (s Sample) clone() Sample {
	s.Extra = maps.Clone(s.Extra)
	return s
}

// Converts a row of the sample table. The row map is consumed.
func newSample(row map[string]string, n int) (Sample, error) {
	var sample Sample

	take := func(column string) (string, error) {
		v, ok := row[column]
		if !ok {
			return "", &FieldError{Field: column, Row: n, Err: ErrMissingField}
		}
		delete(row, column)
		return v, nil
	}

	raw, err := take(ColumnDiveTime)
	if err != nil {
		return sample, err
	}
	if sample.DiveTime, err = ParseDiveTime(raw); err != nil {
		return sample, &FieldError{Field: ColumnDiveTime, Value: raw, Row: n, Err: err}
	}

	if raw, err = take(ColumnDepth); err != nil {
		return sample, err
	}
	if sample.Depth, err = ParseFloat(raw); err != nil {
		return sample, &FieldError{Field: ColumnDepth, Value: raw, Row: n, Err: err}
	}

	if raw, err = take(ColumnTemperature); err != nil {
		return sample, err
	}
	if sample.Temperature, err = ParseFloat(raw); err != nil {
		return sample, &FieldError{Field: ColumnTemperature, Value: raw, Row: n, Err: err}
	}

	sample.Extra = row
	return sample, nil
}

// Parses the sample table that follows the header block
func parseSamples(r io.Reader) ([]Sample, error) {
	br := bufio.NewReader(r)

	for i := 0; i < HeaderLines; i++ {
		if _, err := readLine(br); err != nil {
			return nil, fmt.Errorf("%w: file ends inside the header block", ErrNoColumns)
		}
	}

	columns, err := readLine(br)
	if err != nil || strings.TrimSpace(columns) == "" {
		return nil, ErrNoColumns
	}

	rows, err := gocsv.CSVToMaps(io.MultiReader(strings.NewReader(columns+"\n"), br))
	if err != nil {
		return nil, err
	}

	samples := make([]Sample, 0, len(rows))
	for i, row := range rows {
		sample, err := newSample(row, i+1)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

func readSamples(path string) ([]Sample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parseSamples(file)
}
