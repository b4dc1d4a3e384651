package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/anrid/dog-stats/pkg/config"
	"github.com/anrid/dog-stats/pkg/logger"
	"github.com/anrid/dog-stats/pkg/stats"
	"github.com/davecgh/go-spew/spew"
)

var (
	configPath = flag.String("config", "", "Path to configuration file")
	dataPath   = flag.String("data", "", "Path to the registration data file (.xlsx, .xls or .csv)")
	sheetName  = flag.String("sheet", "", "Workbook sheet to read, defaults to the first one")
	dump       = flag.Bool("dump", false, "Dump the computed statistics after the report")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dataPath != "" {
		cfg.Data.Path = *dataPath
	}
	if *sheetName != "" {
		cfg.Data.Sheet = *sheetName
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

	res, err := prompt(os.Stdin, os.Stdout, ds)
	if err != nil {
		logger.Fatal("%v", err)
	}

	stats.WriteReport(os.Stdout, res)

	if *dump {
		spew.Dump(res)
	}
}

// prompt prints the banner and asks for a breed until one is found in the
// dataset. Only an unknown breed leads to another attempt.
func prompt(in io.Reader, out io.Writer, ds *stats.Dataset) (*stats.StatisticsResult, error) {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "ENSF 692 Dogs of Calgary")

	for {
		fmt.Fprint(out, "Please enter a dog breed: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, errors.New("no dog breed entered")
		}

		res, err := stats.RunQuery(scanner.Text(), ds)

		var unknown *stats.UnknownBreedError
		if errors.As(err, &unknown) {
			fmt.Fprintln(out, unknown.Error())
			continue
		}
		return res, err
	}
}
