// Package main provides the processor command that runs the export pipeline
// over an already-fetched JSON response.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/app"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/config"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/loader"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/logger"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/models"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/presenter"

	"golang.org/x/term"
)

const defaultConfigPath = "configs/newsgenie.yaml"

func main() {
	// Long and short forms share one variable, so either spelling works.
	var (
		configFile  string
		outputDir   string
		jsonName    string
		csvName     string
		quiet       bool
		fullContent bool
		debug       bool
		help        bool
	)

	flag.StringVar(&configFile, "config", "", "Path to YAML configuration file")
	flag.StringVar(&outputDir, "output-dir", "", "Directory for exported files")
	flag.StringVar(&outputDir, "o", "", "Directory for exported files (shorthand)")
	flag.StringVar(&jsonName, "json", "", "JSON output filename")
	flag.StringVar(&jsonName, "j", "", "JSON output filename (shorthand)")
	flag.StringVar(&csvName, "csv", "", "CSV output filename")
	flag.StringVar(&csvName, "s", "", "CSV output filename (shorthand)")
	flag.BoolVar(&quiet, "quiet", false, "Suppress console display")
	flag.BoolVar(&quiet, "q", false, "Suppress console display (shorthand)")
	flag.BoolVar(&fullContent, "full-content", false, "Show full article content")
	flag.BoolVar(&fullContent, "f", false, "Show full article content (shorthand)")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&debug, "d", false, "Enable debug logging (shorthand)")
	flag.BoolVar(&help, "help", false, "Show usage information")
	flag.Usage = printUsage
	flag.Parse()

	if help {
		printUsage()
		os.Exit(0)
	}

	cfg, err := loadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}

	cfg.ApplyEnv()

	// Flags win over config file values.
	if debug {
		cfg.Logging.Level = "debug"
	}

	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}

	if jsonName != "" {
		cfg.Output.JSONFile = jsonName
	}

	if csvName != "" {
		cfg.Output.CSVFile = csvName
	}

	log := logger.New(cfg.Logging.Level)
	log.Debug("configuration resolved", "config", cfg.String())

	raw, err := loadInput(flag.Args(), log)
	if err != nil {
		log.Error(app.Explain(err), "error", err)
		os.Exit(1)
	}

	opts := app.Options{
		OutputDir:   cfg.Output.Dir,
		JSONName:    cfg.Output.JSONFile,
		CSVName:     cfg.Output.CSVFile,
		Quiet:       quiet || cfg.Display.Quiet,
		FullContent: fullContent || cfg.Display.FullContent,
		Styles:      pickStyles(),
	}

	if err := app.Run(raw, opts, log, os.Stdout); err != nil {
		log.Error(app.Explain(err), "error", err)
		os.Exit(1)
	}
}

// loadInput resolves the positional argument into a parsed response. An
// existing file path is read from disk, text that looks like JSON is parsed
// directly, and anything else is treated as a missing file. With no
// argument the response is read from stdin.
func loadInput(args []string, log *logger.Logger) (*models.RawResponse, error) {
	if len(args) == 0 {
		log.Info("📥 Reading response from stdin")

		return loader.FromReader(os.Stdin)
	}

	arg := args[0]

	if _, err := os.Stat(arg); err == nil {
		log.Info("📂 Reading response file", "path", arg)

		return loader.FromFile(arg)
	}

	if trimmed := strings.TrimSpace(arg); strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		log.Info("📥 Parsing inline JSON argument")

		return loader.FromString(arg)
	}

	return loader.FromFile(arg)
}

// loadConfig resolves the configuration: an explicit path must load, the
// default path loads when present, and otherwise the built-ins apply.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	if _, err := os.Stat(defaultConfigPath); err == nil {
		return config.Load(defaultConfigPath)
	}

	return config.Default(), nil
}

// pickStyles enables colored output only when stdout is a terminal.
func pickStyles() presenter.Styles {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return presenter.DefaultStyles()
	}

	return presenter.PlainStyles()
}

func printUsage() {
	fmt.Println("Usage: ./bin/processor [OPTIONS] [FILE | JSON]")
	fmt.Println()
	fmt.Println("Exports a stored news API response to JSON and CSV and displays it.")
	fmt.Println("Reads from stdin when no input argument is given.")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples (flags must come before the input argument):")
	fmt.Println("  ./bin/processor response.json")
	fmt.Println("  ./bin/processor -o exports -q response.json")
	fmt.Println("  ./bin/processor '{\"status\": \"ok\", \"totalResults\": 0, \"articles\": []}'")
	fmt.Println("  curl -s https://... | ./bin/processor")
}
