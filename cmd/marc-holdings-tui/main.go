package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/handiism/marc-holdings/internal/config"
	"github.com/handiism/marc-holdings/internal/logging"
	"github.com/handiism/marc-holdings/internal/tui"
)

func main() {
	var (
		configFlag  = flag.String("config", "", "Path to config file (default "+config.DefaultPath()+")")
		logFileFlag = flag.String("log-file", "", "Write logs to this file")
		dirFlag     = flag.String("dir", "", "Directory to start browsing in")
	)
	flag.Parse()

	path := *configFlag
	if path == "" {
		path = config.DefaultPath()
	}
	settings, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *dirFlag != "" {
		settings.StartDirectory = *dirFlag
	}

	logger, closeLog, err := newLogger(settings, *logFileFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := tui.Run(settings, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger logs to a file, since the terminal belongs to the UI. Without a
// log file, logs are discarded.
func newLogger(settings *config.Settings, path string) (*slog.Logger, func(), error) {
	if path == "" {
		return logging.NewNop(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(logging.Options{Level: settings.LogLevel, Format: settings.LogFormat, Output: f})
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}
