package md2docx

import "testing"

func TestDecodeImageModifiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		alt  string
		want ImageModifiers
	}{
		{
			name: "empty alt gives defaults",
			alt:  "",
			want: ImageModifiers{Scale: 1.0},
		},
		{
			name: "plain alt text gives defaults",
			alt:  "a diagram of the system",
			want: ImageModifiers{Scale: 1.0},
		},
		{
			name: "scale and ref",
			alt:  `{"scale": 0.5, "ref": "fig-a"}`,
			want: ImageModifiers{Scale: 0.5, Ref: "fig-a"},
		},
		{
			name: "ref only keeps default scale",
			alt:  `{"ref": "fig-a"}`,
			want: ImageModifiers{Scale: 1.0, Ref: "fig-a"},
		},
		{
			name: "scale only",
			alt:  `{"scale": 2}`,
			want: ImageModifiers{Scale: 2.0},
		},
		{
			name: "null ref treated as absent",
			alt:  `{"scale": 1.5, "ref": null}`,
			want: ImageModifiers{Scale: 1.5},
		},
		{
			name: "malformed JSON gives defaults",
			alt:  `{"scale": 0.5,`,
			want: ImageModifiers{Scale: 1.0},
		},
		{
			name: "zero scale corrected to 1.0",
			alt:  `{"scale": 0, "ref": "fig-a"}`,
			want: ImageModifiers{Scale: 1.0, Ref: "fig-a"},
		},
		{
			name: "negative scale corrected to 1.0",
			alt:  `{"scale": -2}`,
			want: ImageModifiers{Scale: 1.0},
		},
		{
			name: "surrounding whitespace tolerated",
			alt:  `  {"ref": "fig-a"}  `,
			want: ImageModifiers{Scale: 1.0, Ref: "fig-a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := decodeImageModifiers(tt.alt, testLogger()); got != tt.want {
				t.Errorf("decodeImageModifiers(%q) = %+v, want %+v", tt.alt, got, tt.want)
			}
		})
	}
}

func TestDecodeCellMetadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		want   TableCellMetadata
		wantOK bool
	}{
		{
			name: "plain cell text",
			text: "Latency",
		},
		{
			name: "empty text",
			text: "",
		},
		{
			name:   "caption and ref",
			text:   `{"caption": "Results", "ref": "tbl-a"}`,
			want:   TableCellMetadata{Caption: "Results", Ref: "tbl-a"},
			wantOK: true,
		},
		{
			name:   "caption without ref still renders",
			text:   `{"caption": "Results"}`,
			want:   TableCellMetadata{Caption: "Results"},
			wantOK: true,
		},
		{
			name:   "ref without caption",
			text:   `{"ref": "tbl-a"}`,
			want:   TableCellMetadata{Ref: "tbl-a"},
			wantOK: true,
		},
		{
			name: "brace-prefixed but malformed",
			text: `{"caption": unquoted}`,
		},
		{
			name: "empty object carries nothing",
			text: `{}`,
		},
		{
			name: "JSON with trailing content is not metadata",
			text: `{"ref": "tbl-a"} extra`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := decodeCellMetadata(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("decodeCellMetadata(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("decodeCellMetadata(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}
