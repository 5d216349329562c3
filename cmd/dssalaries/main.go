package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/fr4nk3nst1ner/dssalaries/internal/client"
	"github.com/fr4nk3nst1ner/dssalaries/internal/config"
	"github.com/fr4nk3nst1ner/dssalaries/internal/dataset"
	"github.com/fr4nk3nst1ner/dssalaries/internal/models"
	"github.com/fr4nk3nst1ner/dssalaries/internal/ui"
)

// Exit codes
const (
	ExitSuccess     = 0
	ExitFetchError  = 1
	ExitParseError  = 2
	ExitConfigError = 3
)

// fetcherFactory builds the dataset source; tests replace it with a fixture
type fetcherFactory func(cfg config.Config, progress io.Writer, logger zerolog.Logger) (dataset.Fetcher, error)

func httpFetcher(cfg config.Config, progress io.Writer, logger zerolog.Logger) (dataset.Fetcher, error) {
	httpClient, err := client.CreateHTTPClient(cfg.Timeout, cfg.Proxy)
	if err != nil {
		return nil, err
	}
	f := client.NewFetcher(httpClient)
	f.Progress = progress
	f.Logger = logger
	return f, nil
}

// printExamples displays usage examples for the program
func printExamples(w io.Writer) {
	fmt.Fprintln(w, "\n📋 dssalaries Usage Examples 📋")
	fmt.Fprintln(w, "\n1. Load the default dataset and list senior salaries:")
	fmt.Fprintln(w, "   dssalaries")
	fmt.Fprintln(w, "\n2. Show mid-level salaries as a table:")
	fmt.Fprintln(w, "   dssalaries -level MI -table")
	fmt.Fprintln(w, "\n3. Use a mirror of the dataset through a proxy with a progress bar:")
	fmt.Fprintln(w, "   dssalaries -url https://example.com/ds_salaries.csv -proxy http://localhost:8080 -progress")
	fmt.Fprintln(w, "\n4. Read settings from a YAML file and enable debug logging:")
	fmt.Fprintln(w, "   dssalaries -config dssalaries.yaml -debug")
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, httpFetcher))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, newFetcher fetcherFactory) int {
	fs := flag.NewFlagSet("dssalaries", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to a YAML configuration file")
	url := fs.String("url", config.DefaultURL, "Dataset CSV URL")
	timeout := fs.Duration("timeout", config.DefaultTimeout, "HTTP request timeout")
	level := fs.String("level", config.DefaultExperienceLevel, "Experience level code to keep (EN, MI, SE, EX)")
	proxyURL := fs.String("proxy", "", "Proxy URL to use")
	table := fs.Bool("table", false, "Show results in table format")
	progress := fs.Bool("progress", false, "Show a download progress bar")
	debug := fs.Bool("debug", false, "Enable debug mode")
	examples := fs.Bool("examples", false, "Show usage examples")

	// Banner control flags (two aliases for the same functionality)
	silence := fs.Bool("silence", false, "Silence the banner")
	noBanner := fs.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	if err := fs.Parse(args); err != nil {
		return ExitConfigError
	}

	if *examples {
		printExamples(stdout)
		return ExitSuccess
	}

	logLevel := zerolog.InfoLevel
	if *debug {
		logLevel = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}).
		Level(logLevel).
		With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading configuration: %v\n", err)
		return ExitConfigError
	}

	// Explicit flags win over the configuration file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "url":
			cfg.URL = *url
		case "timeout":
			cfg.Timeout = *timeout
		case "level":
			cfg.ExperienceLevel = *level
		case "proxy":
			cfg.Proxy = *proxyURL
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error reading configuration: %v\n", err)
		return ExitConfigError
	}

	ui.PrintBanner(stderr, *silence || *noBanner)

	var progressOut io.Writer
	if *progress {
		progressOut = stderr
	}
	fetcher, err := newFetcher(cfg, progressOut, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading configuration: %v\n", err)
		return ExitConfigError
	}

	logger.Debug().
		Str("url", cfg.URL).
		Dur("timeout", cfg.Timeout).
		Str("level", cfg.ExperienceLevel).
		Msg("starting")

	result, err := dataset.Run(ctx, fetcher, cfg.URL, cfg.ExperienceLevel)
	if err != nil {
		return reportError(stderr, err)
	}

	fmt.Fprintf(stdout, "Loaded %d records\n", len(result.Records))
	logger.Debug().Int("matched", len(result.Projected)).Msg("filter applied")

	if *table {
		rendered, err := ui.RenderTable(result.Projected, cfg.ExperienceLevel)
		if err == nil {
			fmt.Fprintln(stdout, rendered)
			return ExitSuccess
		}
		logger.Warn().Err(err).Msg("table rendering failed, falling back to plain output")
	}

	fmt.Fprintf(stdout, "Filtered and converted data: %s\n", models.FormatSeniorSalaries(result.Projected))
	return ExitSuccess
}

// reportError prints the diagnostic line for the failing stage and picks the exit code
func reportError(stderr io.Writer, err error) int {
	var fetchErr *dataset.FetchError
	if errors.As(err, &fetchErr) {
		fmt.Fprintf(stderr, "Error fetching dataset: %v\n", fetchErr)
		return ExitFetchError
	}

	fmt.Fprintf(stderr, "Error loading dataset: %v\n", err)
	return ExitParseError
}
