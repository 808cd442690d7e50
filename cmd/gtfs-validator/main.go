// Command-line interface for the GTFS validator library
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	gtfsvalidator "github.com/transitlint/gtfs-validator"
	"github.com/transitlint/gtfs-validator/config"
	"github.com/transitlint/gtfs-validator/logging"
)

// version is stamped at build time via -ldflags "-X main.version=...". It
// defaults to "dev" for local builds.
var version = "dev"

// cliOptions mirrors the flags a validation run accepts, whether they came
// from the command line, a config file, or environment variables.
type cliOptions struct {
	input        string
	format       string
	output       string
	countryCode  string
	maxMemoryMB  int64
	workers      int
	mode         string
	maxNotices   int
	timeout      time.Duration
	showProgress bool
	configPath   string
}

func main() {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:     "gtfs-validator",
		Short:   "A comprehensive GTFS feed validator",
		Long:    "GTFS Validator CLI - validates GTFS Schedule feeds against the specification and reports errors, warnings, and informational notices.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts)
		},
	}
	rootCmd.SetVersionTemplate("GTFS Validator CLI v{{.Version}}\nA comprehensive GTFS feed validator written in Go\n")

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "Path to GTFS feed (ZIP file or directory)")
	flags.StringVarP(&opts.format, "format", "f", "console", "Output format: console, json, summary")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file path (default: stdout)")
	flags.StringVarP(&opts.countryCode, "country", "c", "US", "Country code for validation (e.g., US, GB, FR)")
	flags.Int64Var(&opts.maxMemoryMB, "memory", 0, "Maximum memory usage in MB (0 = no limit)")
	flags.IntVarP(&opts.workers, "workers", "w", 4, "Number of parallel workers")
	flags.StringVarP(&opts.mode, "mode", "m", "default", "Validation mode: performance, default, comprehensive")
	flags.IntVar(&opts.maxNotices, "max-notices", 100, "Maximum notices per type (0 = mode default: 50 performance, 100 default, 1000 comprehensive)")
	flags.DurationVarP(&opts.timeout, "timeout", "t", 5*time.Minute, "Validation timeout")
	flags.BoolVar(&opts.showProgress, "progress", false, "Show progress bar")
	flags.StringVar(&opts.configPath, "config", "", "Path to a .gtfsvalidator.yml config file (flags override it)")

	if err := rootCmd.MarkFlagRequired("input"); err != nil {
		fmt.Fprintf(os.Stderr, "internal error: %v\n", err)
		os.Exit(1)
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the validator version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("GTFS Validator CLI v%s\n", version)
			fmt.Println("A comprehensive GTFS feed validator written in Go")
		},
	}
	rootCmd.AddCommand(versionCmd)

	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runValidate(cmd *cobra.Command, opts *cliOptions) error {
	// A config file, when present, supplies defaults; explicit flags always
	// win because applyConfigDefaults only fills in options whose flags were
	// not set on the command line.
	fileCfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyConfigDefaults(cmd, opts, fileCfg)

	log := logging.WithCorrelationID(logging.GetGlobalLogger(), logging.NewCorrelationID())

	if err := validateInput(opts.input, opts.mode, opts.format); err != nil {
		return fmt.Errorf("❌ %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		fmt.Fprintf(os.Stderr, "\n⚠️  Cancelling validation...\n")
		cancel()
	}()

	validatorOpts := []gtfsvalidator.Option{
		gtfsvalidator.WithCountryCode(opts.countryCode),
		gtfsvalidator.WithMaxMemory(opts.maxMemoryMB * 1024 * 1024),
		gtfsvalidator.WithParallelWorkers(opts.workers),
		gtfsvalidator.WithMaxNoticesPerType(opts.maxNotices),
	}

	switch opts.mode {
	case "performance":
		validatorOpts = append(validatorOpts, gtfsvalidator.WithValidationMode(gtfsvalidator.ValidationModePerformance))
	case "comprehensive":
		validatorOpts = append(validatorOpts, gtfsvalidator.WithValidationMode(gtfsvalidator.ValidationModeComprehensive))
	default:
		validatorOpts = append(validatorOpts, gtfsvalidator.WithValidationMode(gtfsvalidator.ValidationModeDefault))
	}

	var bar *progressbar.ProgressBar
	if opts.showProgress {
		bar = progressbar.NewOptions(100,
			progressbar.OptionSetDescription("validating"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionClearOnFinish(),
		)
		validatorOpts = append(validatorOpts, gtfsvalidator.WithProgressCallback(func(info gtfsvalidator.ProgressInfo) {
			_ = bar.Set(int(info.PercentComplete))
		}))
	}

	v := gtfsvalidator.New(validatorOpts...)

	fmt.Fprintf(os.Stderr, "🚀 Starting GTFS validation...\n")
	fmt.Fprintf(os.Stderr, "   Feed: %s\n", filepath.Base(opts.input))
	fmt.Fprintf(os.Stderr, "   Mode: %s\n", opts.mode)
	if opts.maxNotices > 0 {
		fmt.Fprintf(os.Stderr, "   Notice limit: %d per type\n", opts.maxNotices)
	}
	fmt.Fprintf(os.Stderr, "\n")

	log.Info("validation started", logging.String("feed", opts.input), logging.String("mode", opts.mode))

	startTime := time.Now()
	result, err := v.ValidateFileWithContext(ctx, opts.input)
	elapsed := time.Since(startTime)

	if err != nil {
		if bar != nil {
			_ = bar.Clear()
		}
		switch err {
		case context.Canceled:
			fmt.Fprintf(os.Stderr, "⚠️  Validation cancelled by user\n")
		case context.DeadlineExceeded:
			fmt.Fprintf(os.Stderr, "⏰ Validation timed out after %v\n", opts.timeout)
		default:
			fmt.Fprintf(os.Stderr, "❌ Validation Error: %v\n", err)
		}
		log.Error("validation failed", logging.ErrorField("error", err))
		os.Exit(1)
	}
	if bar != nil {
		_ = bar.Clear()
	}

	fmt.Fprintf(os.Stderr, "✅ Validation completed in %.2fs\n\n", elapsed.Seconds())
	log.Info("validation completed", logging.Duration("elapsed", elapsed), logging.Int("errors", result.ErrorCount()))

	output := os.Stdout
	if opts.output != "" {
		file, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("❌ Output Error: Failed to create output file '%s': %w", opts.output, err)
		}
		defer file.Close()
		output = file
		fmt.Fprintf(os.Stderr, "📄 Writing output to: %s\n", opts.output)
	}

	switch opts.format {
	case "json":
		if err := json.NewEncoder(output).Encode(result); err != nil {
			return fmt.Errorf("❌ JSON Error: Failed to encode report: %w", err)
		}
	case "summary":
		outputSummary(output, result, opts.input)
	case "console":
		outputConsole(output, result, opts.input)
	default:
		return fmt.Errorf("❌ Format Error: Unknown output format '%s'\n   Valid formats: console, json, summary", opts.format)
	}

	if result.HasErrors() {
		statusLine(os.Stderr, color.FgRed, "💀 Validation FAILED: %d errors found\n", result.ErrorCount())
		os.Exit(1)
	} else if result.HasSystemErrors() {
		statusLine(os.Stderr, color.FgRed, "💀 Validation FAILED: validators raised system errors\n")
		os.Exit(1)
	} else if result.HasWarnings() {
		statusLine(os.Stderr, color.FgYellow, "⚠️  Validation completed with %d warnings\n", result.WarningCount())
	} else {
		statusLine(os.Stderr, color.FgGreen, "🎉 Validation PASSED: Feed is valid!\n")
	}
	return nil
}

// applyConfigDefaults fills in opts fields the user did not explicitly set
// on the command line from the loaded config file.
func applyConfigDefaults(cmd *cobra.Command, opts *cliOptions, fileCfg *config.Config) {
	if fileCfg == nil {
		return
	}
	flags := cmd.Flags()
	if !flags.Changed("country") && fileCfg.CountryCode != "" {
		opts.countryCode = fileCfg.CountryCode
	}
	if !flags.Changed("mode") && fileCfg.ValidationMode != "" {
		opts.mode = fileCfg.ValidationMode
	}
	if !flags.Changed("workers") && fileCfg.Workers > 0 {
		opts.workers = fileCfg.Workers
	}
	if !flags.Changed("max-notices") && fileCfg.MaxNoticesPerType > 0 {
		opts.maxNotices = fileCfg.MaxNoticesPerType
	}
	if !flags.Changed("format") && fileCfg.Format != "" {
		opts.format = fileCfg.Format
	}
}

// statusLine writes a colored status line when stderr is a terminal and
// plain text otherwise, so piped/CI output stays free of escape codes.
func statusLine(w *os.File, attr color.Attribute, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd()) {
		c := color.New(attr)
		c.Fprint(w, msg) //nolint:errcheck
		return
	}
	fmt.Fprint(w, msg)
}

func validateInput(inputPath, mode, format string) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("Input Error: Path does not exist: '%s'", inputPath)
	}

	validModes := []string{"performance", "default", "comprehensive"}
	if !contains(validModes, mode) {
		return fmt.Errorf("invalid validation mode: '%s'. Valid modes: %s", mode, strings.Join(validModes, ", "))
	}

	validFormats := []string{"console", "json", "summary"}
	if !contains(validFormats, format) {
		return fmt.Errorf("invalid output format: '%s'. Valid formats: %s", format, strings.Join(validFormats, ", "))
	}

	return nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func outputSummary(output *os.File, report *gtfsvalidator.ValidationReport, inputPath string) {
	fmt.Fprintf(output, "GTFS Validation Summary\n")
	fmt.Fprintf(output, "======================\n\n")
	fmt.Fprintf(output, "Feed: %s\n", filepath.Base(inputPath))
	fmt.Fprintf(output, "Validation Time: %.2fs\n\n", report.Summary.ValidationTime)

	fmt.Fprintf(output, "Feed Statistics:\n")
	fmt.Fprintf(output, "  Agencies: %d\n", report.Summary.FeedInfo.AgencyCount)
	fmt.Fprintf(output, "  Routes: %d\n", report.Summary.FeedInfo.RouteCount)
	fmt.Fprintf(output, "  Trips: %d\n", report.Summary.FeedInfo.TripCount)
	fmt.Fprintf(output, "  Stops: %d\n", report.Summary.FeedInfo.StopCount)
	fmt.Fprintf(output, "  Stop Times: %d\n", report.Summary.FeedInfo.StopTimeCount)
	if report.Summary.FeedInfo.ServiceDateFrom != "" && report.Summary.FeedInfo.ServiceDateTo != "" {
		fmt.Fprintf(output, "  Service Period: %s to %s\n", report.Summary.FeedInfo.ServiceDateFrom, report.Summary.FeedInfo.ServiceDateTo)
	}

	fmt.Fprintf(output, "\nValidation Results:\n")
	fmt.Fprintf(output, "  Errors: %d\n", report.Summary.Counts.Errors)
	fmt.Fprintf(output, "  Warnings: %d\n", report.Summary.Counts.Warnings)
	fmt.Fprintf(output, "  Infos: %d\n", report.Summary.Counts.Infos)
	fmt.Fprintf(output, "  Total: %d\n", report.Summary.Counts.Total)

	if report.HasErrors() {
		fmt.Fprintf(output, "\n❌ Validation FAILED - Feed contains errors\n")
	} else if report.HasWarnings() {
		fmt.Fprintf(output, "\n⚠️  Validation completed with warnings\n")
	} else {
		fmt.Fprintf(output, "\n✅ Validation PASSED\n")
	}
}

func outputConsole(output *os.File, report *gtfsvalidator.ValidationReport, inputPath string) {
	outputSummary(output, report, inputPath)

	if len(report.Notices) > 0 {
		fmt.Fprintf(output, "\nSample Notices:\n")
		fmt.Fprintf(output, "===============\n")

		errorCount := 0
		warningCount := 0

		for _, n := range report.Notices {
			if errorCount >= 5 && warningCount >= 5 {
				break
			}

			if n.Severity == "ERROR" && errorCount < 5 {
				fmt.Fprintf(output, "ERROR: %s (%d instances)\n", n.Code, n.TotalNotices)
				if len(n.SampleNotices) > 0 {
					showNoticeContext(output, n.SampleNotices[0])
				}
				errorCount++
			} else if n.Severity == "WARNING" && warningCount < 5 {
				fmt.Fprintf(output, "WARNING: %s (%d instances)\n", n.Code, n.TotalNotices)
				if len(n.SampleNotices) > 0 {
					showNoticeContext(output, n.SampleNotices[0])
				}
				warningCount++
			}
		}

		if len(report.Notices) > 10 {
			fmt.Fprintf(output, "\n... and %d more notices (use -f json for full details)\n", len(report.Notices)-10)
		}
	}
}

func showNoticeContext(output *os.File, context map[string]interface{}) {
	details := []string{}

	if filename, ok := context["filename"].(string); ok {
		details = append(details, fmt.Sprintf("file=%s", filename))
	}
	if row, ok := context["csvRowNumber"].(float64); ok {
		details = append(details, fmt.Sprintf("row=%d", int(row)))
	}
	if field, ok := context["fieldName"].(string); ok {
		details = append(details, fmt.Sprintf("field=%s", field))
	}
	if routeId, ok := context["routeId"].(string); ok {
		details = append(details, fmt.Sprintf("route=%s", routeId))
	}

	if len(details) > 0 {
		fmt.Fprintf(output, "       (%s)\n", strings.Join(details, ", "))
	}
}
