package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn(fmt.Sprint("Could not load .env file: ", err))
	}

	args := CmdArgs{}
	parser := flags.NewParser(&args, flags.Default)
	parser.CommandHandler = func(cmd flags.Commander, rest []string) error {
		closeLog, err := args.setup()
		if err != nil {
			return err
		}
		defer closeLog()

		return cmd.Execute(rest)
	}

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		fmt.Println("See 'divelog -h' for help")
		os.Exit(1)
	}
}
