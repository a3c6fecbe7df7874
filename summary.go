package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

type SummaryConfig struct {
	Rows bool `long:"rows" description:"Also load the samples and print their count and the average depth"`
}

// This method is automatically called by go-flags while parsing the cmd
func (config *SummaryConfig) Execute(files []string) error {
	return config.run(os.Stdout, files)
}

func (config *SummaryConfig) run(w io.Writer, files []string) error {
	if len(files) == 0 {
		return errors.New("no dive logs given")
	}

	results := openAll(files)
	for i, result := range results {
		if result.Err != nil {
			continue
		}
		record := result.Ok
		fmt.Fprint(w, record)

		if !config.Rows {
			continue
		}

		avg, err := record.AverageDepth()
		if err != nil {
			slog.Error(err.Error())
			results[i].Err = err
			continue
		}
		fmt.Fprintf(w, "    Samples: %d\n    Average depth: %v\n", len(record.Rows()), avg)
	}

	return failures(results)
}
