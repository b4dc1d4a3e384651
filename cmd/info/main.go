package main

import (
	"flag"
	"log"
	"os"

	"github.com/anrid/dog-stats/pkg/config"
	"github.com/anrid/dog-stats/pkg/logger"
	"github.com/anrid/dog-stats/pkg/stats"
	"github.com/davecgh/go-spew/spew"
)

var (
	configPath = flag.String("config", "", "Path to configuration file")
	dump       = flag.Bool("dump", false, "Dump every loaded record")
)

// Prints a summary of a registration data file. The file can be given as
// the first argument, otherwise the configured data path is used.
func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if flag.NArg() > 0 {
		cfg.Data.Path = flag.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	if cfg.EnvFile != "" {
		logger.Debug("Loaded environment from %s", cfg.EnvFile)
	} else {
		logger.Debug("No .env file found, using system env vars")
	}

	ds, err := stats.Load(stats.Source{Path: cfg.Data.Path, Sheet: cfg.Data.Sheet})
	if err != nil {
		logger.Fatal("%v", err)
	}

	ds.Info(os.Stdout)

	if *dump {
		spew.Dump(ds.AllRecords())
	}
}
