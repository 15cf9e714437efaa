// Command logfan is a small demonstration driver for the logging core.
// It loads an optional .env file, reads a YAML config describing the
// loggers, emits a few messages at every level, and drains everything on
// exit. The core itself never depends on this binary.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/mbeckersen/logfan/config"
	"github.com/mbeckersen/logfan/logger"
)

func main() {
	configPath := flag.String("config", "logfan.yaml", "path to the logger configuration file")
	flag.Parse()

	// A missing .env is fine; explicit env vars still apply.
	_ = godotenv.Load()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "logfan: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	registry := logger.NewRegistry()
	if err := cfg.Apply(registry); err != nil {
		_ = registry.ShutdownAll()
		return err
	}

	for _, spec := range cfg.Loggers {
		l, ok := registry.Get(spec.Name)
		if !ok {
			continue
		}
		_ = l.Debug("debug sample from " + spec.Name)
		_ = l.Info("info sample from " + spec.Name)
		_ = l.Warn("warn sample from " + spec.Name)
		_ = l.Error("error sample from " + spec.Name)
		_ = l.Fatal("fatal sample from " + spec.Name)
	}

	return registry.ShutdownAll()
}
