package md2docx

import (
	"fmt"
	"log/slog"

	"github.com/md2docx/go-md2docx/internal/fileutil"
)

// Input contains conversion parameters.
type Input struct {
	Markdown string    // Markdown content (required)
	BaseDir  string    // Directory for resolving relative image paths (optional)
	Metadata *Metadata // Document metadata (optional, nil = read from front matter)
}

// Metadata holds document front-matter fields.
// It is rendered as a title block at the top of the document and is
// otherwise passed through untouched.
type Metadata struct {
	Title       string `yaml:"title" json:"title,omitempty"`
	Author      string `yaml:"author" json:"author,omitempty"`
	Affiliation string `yaml:"affiliation" json:"affiliation,omitempty"`
}

// Validate checks that input fields are present and valid.
func (in Input) Validate() error {
	if in.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if in.BaseDir != "" && !fileutil.DirExists(in.BaseDir) {
		return fmt.Errorf("%w: %s", ErrBaseDirNotFound, in.BaseDir)
	}
	return nil
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for non-fatal conversion diagnostics
// (duplicate references, unresolved placeholders, missing images).
// Panics if logger is nil (programmer error, similar to time.NewTicker).
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("md2docx: WithLogger logger must not be nil")
	}
	return func(s *Service) {
		s.cfg.logger = logger
	}
}
