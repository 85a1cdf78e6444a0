package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/mcncl/jsoncompare/internal/compare"
	"github.com/mcncl/jsoncompare/internal/config"
	"github.com/mcncl/jsoncompare/internal/errors"
	"github.com/mcncl/jsoncompare/internal/report"
)

// CLI defines the command-line interface
var CLI struct {
	File1       string `arg:"" help:"Path to the first JSON file." type:"path"`
	File2       string `arg:"" help:"Path to the second JSON file." type:"path"`
	ExportToCsv string `help:"Write the detailed comparison report to a CSV file instead of the terminal." name:"export-to-csv" placeholder:"PATH" type:"path"`
	Config      string `help:"Path to a YAML display configuration file." short:"c" type:"path"`
	NoColor     bool   `help:"Disable colored output."`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     kong.VersionFlag `help:"Show version information." short:"v"`
}

// Version information
const (
	Version = "0.1.0"
)

// newKongParser builds the CLI parser. Extra options are appended so tests
// can override exit behavior and output streams.
func newKongParser(options ...kong.Option) *kong.Kong {
	base := []kong.Option{
		kong.Name("jsoncompare"),
		kong.Description("Compare two JSON files for structural equality, ignoring object field order."),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("jsoncompare version %s", Version)},
	}
	return kong.Must(&CLI, append(base, options...)...)
}

func main() {
	parser := newKongParser()
	if _, err := parser.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	setupLogging(CLI.Debug)

	equal, err := run(context.Background(), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
	if !equal {
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// run executes the comparison and reports the result to out. The boolean
// result is the structural verdict; differences and errors both lead to a
// non-zero exit status in main.
func run(ctx context.Context, out io.Writer) (bool, error) {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return false, errors.NewInputError("failed to load configuration", err)
	}
	if CLI.NoColor {
		cfg.Color = false
	}

	slog.Info("comparing JSON structures", "file1", CLI.File1, "file2", CLI.File2)
	startTime := time.Now()

	first, second, err := compare.LoadPair(ctx, CLI.File1, CLI.File2)
	if err != nil {
		return false, err
	}

	equal := compare.Equal(first, second)

	if CLI.ExportToCsv != "" {
		rep, err := compare.DetailedDiff(ctx, first, second)
		if err != nil {
			return false, err
		}
		if err := report.ExportCSV(rep, CLI.ExportToCsv); err != nil {
			return false, err
		}
		slog.Info("comparison report exported to CSV", "path", CLI.ExportToCsv)
	} else if equal {
		fmt.Fprintln(out, "✓ JSON structures are identical")
	} else {
		fmt.Fprintln(out, "✗ JSON structures are different")
		rep, err := compare.DetailedDiff(ctx, first, second)
		if err != nil {
			return false, err
		}
		report.NewTableRenderer(out, cfg).Render(rep)
	}

	slog.Info("comparison finished", "equal", equal, "duration", time.Since(startTime))
	return equal, nil
}
