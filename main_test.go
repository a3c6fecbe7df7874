package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	goodLog = filepath.Join("dive", "testdata", "dive_20230721.csv")
	badLog  = filepath.Join("dive", "testdata", "dive_bad_sample.csv")
)

func TestSummary(t *testing.T) {
	var out bytes.Buffer
	config := SummaryConfig{Rows: true}

	require.NoError(t, config.run(&out, []string{goodLog}))
	assert.Contains(t, out.String(), "Date: 2023-07-21")
	assert.Contains(t, out.String(), "Samples: 3")
	assert.Contains(t, out.String(), "Average depth: 20")
}

func TestSummaryKeepsGoingAfterFailures(t *testing.T) {
	var out bytes.Buffer
	config := SummaryConfig{Rows: true}

	missing := filepath.Join(t.TempDir(), "missing.csv")
	err := config.run(&out, []string{missing, badLog, goodLog})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3")

	// The header of the bad log is fine, only its samples are not
	assert.Contains(t, out.String(), "Date: 2023-08-02")
	assert.Contains(t, out.String(), "Average depth: 20")

	assert.Error(t, config.run(&out, nil))
}

func TestLogbook(t *testing.T) {
	var out bytes.Buffer
	config := LogbookConfig{}

	require.NoError(t, config.run(&out, []string{badLog, goodLog, goodLog}))
	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.True(t, bytes.HasPrefix(lines[0], []byte("2023-07-21 09:15:42\t1h23m45s\t30.0 m")))
	assert.True(t, bytes.HasPrefix(lines[1], []byte("2023-08-02 14:05:00")))

	out.Reset()
	config = LogbookConfig{ModesCmd: "Freedive,Gauge"}
	config.setup()
	require.NoError(t, config.run(&out, []string{badLog, goodLog}))
	assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("\n")))
	assert.Contains(t, out.String(), "Freedive")
}

func TestParseArgs(t *testing.T) {
	t.Setenv("DIVELOG_LOG_FILE", filepath.Join(t.TempDir(), "divelog.txt"))

	args := CmdArgs{}
	parser := flags.NewParser(&args, flags.HelpFlag)

	var executed []string
	parser.CommandHandler = func(cmd flags.Commander, rest []string) error {
		executed = rest
		return nil
	}

	_, err := parser.ParseArgs([]string{"-v", "logbook", "--mode", "CCR", goodLog})
	require.NoError(t, err)
	assert.True(t, args.Verbose)
	assert.Equal(t, os.Getenv("DIVELOG_LOG_FILE"), args.LogFile)
	assert.Equal(t, "CCR", args.Logbook.ModesCmd)
	assert.Equal(t, []string{goodLog}, executed)
}

func TestFailures(t *testing.T) {
	results := []Result[int]{Ok("a.csv", 1), Err[int]("b.csv", os.ErrNotExist), Ok("c.csv", 3)}

	err := failures(results)
	if err == nil {
		t.Fatal("Got no error, wanted one failure")
	}
	if want := "1 of 3 dive logs could not be processed: b.csv"; err.Error() != want {
		t.Errorf("Got %v, wanted %v", err, want)
	}

	if err := failures(results[:1]); err != nil {
		t.Errorf("Got %v, wanted no error", err)
	}
}
