// cmd/jdiff/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stlog "log" // Standard log for fatal errors before the logger is ready
	"os"
	"os/signal"
	"syscall"

	"github.com/bethropolis/jdiff/internal/app"
	"github.com/bethropolis/jdiff/internal/config"
	"github.com/bethropolis/jdiff/internal/logger"
	"github.com/bethropolis/jdiff/internal/tui"
)

const version = "0.1.0"

func main() {
	// --- Flags & Config ---
	flags := &config.Flags{}
	fs := flag.NewFlagSet(config.AppName, flag.ExitOnError)
	if _, err := flags.ParseFlags(fs, os.Args[1:]); err != nil {
		stlog.Fatalf("Failed to parse flags: %v", err)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}

	cfg, cfgErr := config.LoadConfig(*flags.ConfigFilePath, flags)
	if cfg == nil {
		stlog.Fatalf("Failed to load configuration: %v", cfgErr)
	}

	// --- Logger ---
	logOutput, closeLog, err := openLogOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.LogFilePath, err)
	}
	defer closeLog()

	logger.Init(cfg.Logger, logOutput)
	logger.SetDebugFilter(*flags.DebugLog)
	if cfgErr != nil {
		logger.Warnf("Config: %v (using defaults)", cfgErr)
	}
	for _, w := range config.Warnings() {
		logger.Warnf("Config: %s", w)
	}
	logger.Infof("Starting %s %s", config.AppName, version)
	logger.Debugf("Database: %s, project: %s", cfg.Database.Path, cfg.Database.Project)

	// --- Terminal ---
	ui, err := tui.New()
	if err != nil {
		logger.Errorf("Error initializing terminal: %v", err)
		os.Exit(1)
	}
	// Runs before any other deferred cleanup so a panic never leaves the terminal raw.
	defer ui.Restore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Create and Run App ---
	jdiffApp, err := app.New(ctx, cfg, ui)
	if err != nil {
		ui.Close()
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}

	if err := jdiffApp.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf("Application exited with error: %v", err)
		ui.Close()
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}
	logger.Infof("%s finished.", config.AppName)
}

// openLogOutput opens the log destination. "-" is stderr, "" discards output.
func openLogOutput(path string) (io.Writer, func(), error) {
	switch path {
	case "":
		return io.Discard, func() {}, nil
	case "-":
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
