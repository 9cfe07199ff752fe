// Command zipstat answers questions about ZIP-code population, COVID
// vaccination and property data through an interactive menu.
//
// Usage:
//
//	zipstat --population=population.csv --covid=covid.json --properties=properties.csv.gz --log=events.log
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/nao1215/zipstat"
	"github.com/nao1215/zipstat/internal/ui"
	"gopkg.in/alecthomas/kingpin.v2"
)

// options holds the parsed command line.
type options struct {
	population string
	covid      string
	properties string
	logPath    string
	logLevel   string
	logFormat  string
	exportPath string
}

func newApp(stderr io.Writer) (*kingpin.Application, *options) {
	opts := &options{}
	app := kingpin.New("zipstat", "Answer questions about ZIP-code population, vaccination and property data.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	app.Flag("population", "Population file (CSV or XLSX, optionally compressed).").
		Envar("ZIPSTAT_POPULATION").StringVar(&opts.population)
	app.Flag("covid", "COVID report file (CSV, XLSX or JSON, optionally compressed).").
		Envar("ZIPSTAT_COVID").StringVar(&opts.covid)
	app.Flag("properties", "Property file (CSV or XLSX, optionally compressed).").
		Envar("ZIPSTAT_PROPERTIES").StringVar(&opts.properties)
	app.Flag("log", "Log file to append to; standard error when empty.").
		Envar("ZIPSTAT_LOG").StringVar(&opts.logPath)
	app.Flag("log-level", "Log level.").
		Envar("ZIPSTAT_LOG_LEVEL").Default("info").EnumVar(&opts.logLevel, "debug", "info", "warn", "error")
	app.Flag("log-format", "Log format.").
		Envar("ZIPSTAT_LOG_FORMAT").Default("text").EnumVar(&opts.logFormat, "text", "json")
	app.Flag("export", "Also write the loaded data to this new SQLite file.").
		Envar("ZIPSTAT_EXPORT").StringVar(&opts.exportPath)

	return app, opts
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes zipstat and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app, opts := newApp(stderr)
	if _, err := app.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err) //nolint:errcheck
		return 1
	}

	logger, closeLog, err := zipstat.NewLogger(opts.logPath, opts.logLevel, opts.logFormat)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err) //nolint:errcheck
		return 1
	}
	defer func() {
		_ = closeLog() // Ignore close error
	}()
	logger = logger.With("session", uuid.NewString())
	logger.Info("command line", "args", args)

	builder := zipstat.NewBuilder().WithLogger(logger)
	if opts.population != "" {
		builder.WithPopulation(opts.population)
	}
	if opts.covid != "" {
		builder.WithVaccinations(opts.covid)
	}
	if opts.properties != "" {
		builder.WithProperties(opts.properties)
	}

	dataset, err := builder.Build(ctx)
	if err != nil {
		logger.Error("failed to load data", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err) //nolint:errcheck
		return 1
	}

	if opts.exportPath != "" {
		if err := dataset.ExportSQLite(ctx, opts.exportPath); err != nil {
			logger.Error("failed to export data", "error", err)
			fmt.Fprintf(stderr, "Error: %v\n", err) //nolint:errcheck
			return 1
		}
		logger.Info("exported data", "file", opts.exportPath)
	}

	menu := &ui.Menu{In: stdin, Out: stdout, Dataset: dataset, Logger: logger}
	if err := menu.Run(ctx); err != nil {
		logger.Error("session ended", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err) //nolint:errcheck
		return 1
	}
	return 0
}
