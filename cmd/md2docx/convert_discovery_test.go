package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDiscoverFiles_SingleFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "doc.md")
	if err := os.WriteFile(input, []byte("# Title"), 0o600); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	files, err := discoverFiles(input, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
	wantOut := filepath.Join(tmpDir, "doc.json")
	if files[0].OutputPath != wantOut {
		t.Errorf("OutputPath = %q, want %q", files[0].OutputPath, wantOut)
	}
}

func TestDiscoverFiles_WrongExtension(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "doc.txt")
	if err := os.WriteFile(input, []byte("text"), 0o600); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	_, err := discoverFiles(input, "")
	if !errors.Is(err, ErrInvalidExtension) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidExtension)
	}
}

func TestDiscoverFiles_Directory(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	subDir := filepath.Join(tmpDir, "nested")
	if err := os.MkdirAll(subDir, 0o750); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}
	for _, name := range []string{"a.md", "b.markdown", "skip.txt"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("# x"), 0o600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	if err := os.WriteFile(filepath.Join(subDir, "c.md"), []byte("# x"), 0o600); err != nil {
		t.Fatalf("failed to write nested file: %v", err)
	}

	files, err := discoverFiles(tmpDir, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3 (skip.txt excluded)", len(files))
	}
}

func TestDiscoverFiles_MissingInput(t *testing.T) {
	t.Parallel()

	_, err := discoverFiles(filepath.Join(t.TempDir(), "missing.md"), "")
	if err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		inputPath    string
		outputDir    string
		baseInputDir string
		want         string
	}{
		{
			name:      "no output dir uses input dir",
			inputPath: filepath.Join("docs", "readme.md"),
			want:      filepath.Join("docs", "readme.json"),
		},
		{
			name:      "explicit json output path",
			inputPath: "readme.md",
			outputDir: filepath.Join("out", "custom.json"),
			want:      filepath.Join("out", "custom.json"),
		},
		{
			name:      "output directory",
			inputPath: filepath.Join("docs", "readme.md"),
			outputDir: "out",
			want:      filepath.Join("out", "readme.json"),
		},
		{
			name:         "preserves relative structure under base dir",
			inputPath:    filepath.Join("docs", "guide", "intro.md"),
			outputDir:    "out",
			baseInputDir: "docs",
			want:         filepath.Join("out", "guide", "intro.json"),
		},
		{
			name:      "markdown extension variant",
			inputPath: "notes.markdown",
			outputDir: "out",
			want:      filepath.Join("out", "notes.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveOutputPath(tt.inputPath, tt.outputDir, tt.baseInputDir)
			if got != tt.want {
				t.Errorf("resolveOutputPath(%q, %q, %q) = %q, want %q",
					tt.inputPath, tt.outputDir, tt.baseInputDir, got, tt.want)
			}
		})
	}
}

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		wantErr bool
	}{
		{name: "zero means auto", workers: 0, wantErr: false},
		{name: "explicit count", workers: 4, wantErr: false},
		{name: "maximum", workers: MaxWorkers, wantErr: false},
		{name: "negative", workers: -1, wantErr: true},
		{name: "over maximum", workers: MaxWorkers + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateWorkers(tt.workers)
			if tt.wantErr && !errors.Is(err, ErrInvalidWorkerCount) {
				t.Errorf("error = %v, want %v", err, ErrInvalidWorkerCount)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	if got := resolveWorkers(3); got != 3 {
		t.Errorf("resolveWorkers(3) = %d, want 3", got)
	}
	if got := resolveWorkers(0); got < 1 || got > 8 {
		t.Errorf("resolveWorkers(0) = %d, want within [1, 8]", got)
	}
}
