package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dodonator/dive-analysis/logbook"
	"github.com/dodonator/dive-analysis/utils"
)

type LogbookConfig struct {
	ModesCmd string `long:"mode" default:"" description:"Optional comma separated list of dive modes. By default dives of all modes are listed"`
	Modes    []string
}

// Populates config slices by splitting cmd strings
func (config *LogbookConfig) setup() {
	if config.ModesCmd != "" {
		config.Modes = strings.Split(config.ModesCmd, ",")
	}
}

// This method is automatically called by go-flags while parsing the cmd
func (config *LogbookConfig) Execute(files []string) error {
	config.setup()
	return config.run(os.Stdout, files)
}

func (config *LogbookConfig) run(w io.Writer, files []string) error {
	if len(files) == 0 {
		return errors.New("no dive logs given")
	}

	results := openAll(files)
	book := logbook.New()
	for _, result := range results {
		if result.Err == nil {
			book.Add(result.Ok)
		}
	}

	modes, skipped := utils.FilterSlice(config.Modes, book.Modes())
	for _, mode := range skipped {
		slog.Warn(fmt.Sprintf("Dive mode '%s' not present in any dive log, skipping", mode))
	}
	for _, record := range book.ByMode(modes) {
		deco := ""
		if record.DecoDive {
			deco = "deco"
		}
		fmt.Fprintf(w, "%s\t%s\t%.1f m\t%.1f°C\t%s\t%s\n",
			record.Key(), record.Duration, record.MaxDepth, record.MinTemperature, record.DiveMode, deco)
	}

	return failures(results)
}
