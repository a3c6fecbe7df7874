package utils

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestFilterSlice(t *testing.T) {
	reference := []string{"Freedive", "Single gas", "CCR"}

	type testCase struct {
		input   []string
		kept    []string
		skipped []string
	}

	cases := []testCase{
		{nil, reference, nil},
		{[]string{}, []string{}, nil},
		{[]string{"CCR"}, []string{"CCR"}, nil},
		{[]string{"Gauge", "Freedive"}, []string{"Freedive"}, []string{"Gauge"}},
		{[]string{"CCR", "Gauge", "CCR", "Gauge"}, []string{"CCR"}, []string{"Gauge"}},
		{[]string{"Gauge"}, []string{}, []string{"Gauge"}},
	}

	for _, c := range cases {
		t.Log("Testing selection:", c.input)

		kept, skipped := FilterSlice(c.input, reference)
		if !slices.Equal(kept, c.kept) {
			t.Errorf("Got %v, wanted %v", kept, c.kept)
		}
		if !slices.Equal(skipped, c.skipped) {
			t.Errorf("Got %v, wanted %v skipped", skipped, c.skipped)
		}
	}
}

func TestSetLogger(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	SetLogger(&buf, true)
	slog.Debug("debug line")

	if !strings.Contains(buf.String(), "msg=\"debug line\"") {
		t.Errorf("Debug message missing from verbose log: %q", buf.String())
	}
}

func TestSetLogFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	filename := filepath.Join(t.TempDir(), "divelog.txt")
	fh, err := SetLogFile(filename, false)
	if err != nil {
		t.Fatal(err)
	}

	slog.Debug("hidden")
	slog.Info("visible")
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "msg=visible") {
		t.Errorf("Info message missing from log: %q", content)
	}
	if strings.Contains(string(content), "hidden") {
		t.Errorf("Debug message written without verbose: %q", content)
	}

	if _, err := SetLogFile(filepath.Join(t.TempDir(), "missing", "log.txt"), true); err == nil {
		t.Error("Got no error for a log file in a missing directory")
	}
}
