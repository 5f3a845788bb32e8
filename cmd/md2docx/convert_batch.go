package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	md2docx "github.com/md2docx/go-md2docx"
	"github.com/md2docx/go-md2docx/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput       = errors.New("no input specified")
	ErrReadMarkdown  = errors.New("failed to read markdown file")
	ErrWriteDocument = errors.New("failed to write document file")
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input md2docx.Input) (*md2docx.Document, error)
}

// Compile-time interface implementation check.
var _ Converter = (*md2docx.Service)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	baseDir  string // --base-dir flag (empty = derive from each input file)
	metadata *md2docx.Metadata
}

// convertBatch processes files concurrently with a bounded worker count.
// The service is shared: conversion state lives in each Convert call.
func convertBatch(ctx context.Context, svc Converter, workers int, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	if workers > len(files) {
		workers = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, svc, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, svc Converter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	// Relative image paths resolve against the input file's directory
	// unless --base-dir points somewhere else.
	baseDir := params.baseDir
	if baseDir == "" {
		baseDir = filepath.Dir(f.InputPath)
	}

	doc, err := svc.Convert(ctx, md2docx.Input{
		Markdown: string(content),
		BaseDir:  baseDir,
		Metadata: params.metadata,
	})
	if err != nil {
		if errors.Is(err, md2docx.ErrBaseDirNotFound) {
			err = fmt.Errorf("%w%s", err, hints.ForMissingImages())
		}
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		result.Err = fmt.Errorf("encoding document: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	outDir := filepath.Dir(f.OutputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v%s", ErrWriteDocument, err, hints.ForOutputFile())
		result.Duration = time.Since(start)
		return result
	}

	// #nosec G306 -- document files are meant to be readable
	if err := os.WriteFile(f.OutputPath, data, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v%s", ErrWriteDocument, err, hints.ForOutputFile())
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results using the provided writers.
// Returns the number of failed conversions.
func printResults(results []ConversionResult, quiet, verbose bool, deps *Dependencies) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(deps.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(deps.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(deps.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(deps.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
