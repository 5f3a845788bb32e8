package md2docx_test

import (
	"errors"
	"testing"

	md2docx "github.com/md2docx/go-md2docx"
)

func TestInputValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   md2docx.Input
		wantErr error
	}{
		{
			name:    "empty markdown",
			input:   md2docx.Input{},
			wantErr: md2docx.ErrEmptyMarkdown,
		},
		{
			name:  "markdown only",
			input: md2docx.Input{Markdown: "# Hi"},
		},
		{
			name:  "existing base dir",
			input: md2docx.Input{Markdown: "# Hi", BaseDir: t.TempDir()},
		},
		{
			name:    "missing base dir",
			input:   md2docx.Input{Markdown: "# Hi", BaseDir: "/no/such/dir"},
			wantErr: md2docx.ErrBaseDirNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.input.Validate()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
