package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	md2docx "github.com/md2docx/go-md2docx"
	"github.com/md2docx/go-md2docx/internal/config"
	"github.com/md2docx/go-md2docx/internal/fileutil"
	"github.com/md2docx/go-md2docx/internal/hints"
)

// run dispatches to the requested command. args is os.Args.
func run(ctx context.Context, args []string, deps *Dependencies) error {
	if len(args) < 2 {
		printUsage(deps.Stderr)
		return ErrNoInput
	}

	switch args[1] {
	case "convert":
		flags, positional, err := parseConvertFlags(args[2:])
		if err != nil {
			return err
		}
		return runConvert(ctx, positional, flags, deps)
	case "init-config":
		return runInitConfig(args[2:], deps)
	case "version":
		fmt.Fprintf(deps.Stdout, "md2docx %s\n", Version)
		return nil
	case "help":
		runHelp(args[2:], deps)
		return nil
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[1])
		printUsage(deps.Stderr)
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, deps *Dependencies) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		loaded, err := config.LoadConfig(flags.common.config)
		if err != nil {
			if !fileutil.IsFilePath(flags.common.config) {
				return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(flags.common.config)))
			}
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	// Resolve input path
	inputPath, err := resolveInputPath(positionalArgs, flags, cfg, deps)
	if err != nil {
		return err
	}

	// Resolve output directory
	outputDir := resolveOutputDir(flags.output, cfg)

	// Discover files to convert
	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", inputPath)
	}

	params := &conversionParams{
		baseDir:  flags.baseDir,
		metadata: buildMetadata(cfg),
	}

	svc := md2docx.New(md2docx.WithLogger(newLogger(flags.common, deps)))
	workers := resolveWorkers(flags.workers)
	if flags.common.verbose {
		fmt.Fprintf(deps.Stderr, "Workers: %d\n", workers)
	}

	results := convertBatch(ctx, svc, workers, files, params)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, deps)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}

	return nil
}

// runInitConfig writes a default config file for editing.
func runInitConfig(args []string, deps *Dependencies) error {
	path := "md2docx.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if err := config.WriteDefault(path); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Created %s\n", path)
	return nil
}

// newLogger builds the diagnostics logger from output-control flags.
// Degradation events (missing images, unresolved references) log at Warn,
// so the default level surfaces them without flooding stdout pipelines.
func newLogger(common commonFlags, deps *Dependencies) *slog.Logger {
	level := slog.LevelWarn
	if common.verbose {
		level = slog.LevelDebug
	}
	if common.quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: level}))
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.metadata.title != "" {
		cfg.Document.Title = flags.metadata.title
	}
	if flags.metadata.author != "" {
		cfg.Document.Author = flags.metadata.author
	}
	if flags.metadata.affiliation != "" {
		cfg.Document.Affiliation = flags.metadata.affiliation
	}
}

// buildMetadata creates metadata overrides from config.
// Returns nil when nothing is set so front matter stays authoritative.
func buildMetadata(cfg *config.Config) *md2docx.Metadata {
	d := cfg.Document
	if d.Title == "" && d.Author == "" && d.Affiliation == "" {
		return nil
	}
	return &md2docx.Metadata{
		Title:       d.Title,
		Author:      d.Author,
		Affiliation: d.Affiliation,
	}
}

// resolveInputPath determines the input path from args, flags, or config.
// With --sample, a sample markdown file is written first and used as input.
func resolveInputPath(args []string, flags *convertFlags, cfg *config.Config, deps *Dependencies) (string, error) {
	if flags.sample {
		path := sampleFileName
		if len(args) > 0 {
			path = args[0]
		}
		if err := writeSample(path); err != nil {
			return "", err
		}
		if !flags.common.quiet {
			fmt.Fprintf(deps.Stdout, "Created %s\n", path)
		}
		return path, nil
	}
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// writeSample writes the sample markdown document to path.
func writeSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	// #nosec G306 -- sample markdown is meant to be readable
	if err := os.WriteFile(path, []byte(sampleMarkdown), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	return nil
}
