package main

import (
	"os"

	"github.com/dodonator/dive-analysis/utils"
)

// Global options. Defaults can be provided through the environment or a .env file.
type CmdArgs struct {
	Verbose bool   `short:"v" long:"verbose" env:"DIVELOG_VERBOSE" description:"Increase verbosity level"`
	LogFile string `long:"log-file" env:"DIVELOG_LOG_FILE" default:"" description:"Optional file the log is written to instead of stderr"`

	Summary SummaryConfig `command:"summary" description:"Print the metadata summary of each dive log"`
	Logbook LogbookConfig `command:"logbook" description:"Collect dive logs into a logbook, dropping duplicate exports of the same dive"`
}

// Sets up logging. The returned function releases the log file, if any.
func (args *CmdArgs) setup() (func(), error) {
	if args.LogFile == "" {
		utils.SetLogger(os.Stderr, args.Verbose)
		return func() {}, nil
	}

	fh, err := utils.SetLogFile(args.LogFile, args.Verbose)
	if err != nil {
		return nil, err
	}
	return func() { fh.Close() }, nil
}
