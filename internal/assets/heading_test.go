package assets

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseHeadingTemplate - Validation and flattening
// ---------------------------------------------------------------------------

func TestParseHeadingTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{
			name: "single line",
			raw:  "<h2 data-n='{h2_count}'>{h2_text}</h2>",
			want: "<h2 data-n='{h2_count}'>{h2_text}</h2>",
		},
		{
			name: "trailing newline removed",
			raw:  "<h2>{h2_text}</h2>\n",
			want: "<h2>{h2_text}</h2>",
		},
		{
			name: "indented markup flattened",
			raw:  "<section>\n  <h2>\n    {h2_text}\n  </h2>\n</section>\n",
			want: "<section><h2>{h2_text}</h2></section>",
		},
		{
			name: "text lines keep a separating space",
			raw:  "<h2>Part {h2_count}\n{h2_text}</h2>",
			want: "<h2>Part {h2_count} {h2_text}</h2>",
		},
		{
			name: "windows line endings",
			raw:  "<h2>\r\n{h2_text}\r\n</h2>\r\n",
			want: "<h2>{h2_text}</h2>",
		},
		{
			name: "count placeholder is optional",
			raw:  "<p class=\"title\">{h2_text}</p>",
			want: "<p class=\"title\">{h2_text}</p>",
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: ErrEmptyHeadingTemplate,
		},
		{
			name:    "whitespace only",
			raw:     " \n\t\n",
			wantErr: ErrEmptyHeadingTemplate,
		},
		{
			name:    "missing text placeholder",
			raw:     "<h2>{h2_count}</h2>",
			wantErr: ErrHeadingPlaceholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseHeadingTemplate(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseHeadingTemplate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHeadingTemplate() unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseHeadingTemplate() = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestHeadingTemplate_Execute - Placeholder substitution
// ---------------------------------------------------------------------------

func TestHeadingTemplate_Execute(t *testing.T) {
	t.Parallel()

	tmpl, err := ParseHeadingTemplate("<h2 data-n='{h2_count}'>{h2_text}</h2>")
	if err != nil {
		t.Fatalf("ParseHeadingTemplate() error = %v", err)
	}

	tests := []struct {
		name    string
		text    string
		ordinal int
		want    string
	}{
		{"first heading", "Section One", 1, "<h2 data-n='1'>Section One</h2>"},
		{"tenth heading", "Wrap-up", 10, "<h2 data-n='10'>Wrap-up</h2>"},
		{"placeholder in text not expanded", "{h2_count}", 3, "<h2 data-n='3'>{h2_count}</h2>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tmpl.Execute(tt.text, tt.ordinal); got != tt.want {
				t.Errorf("Execute(%q, %d) = %q, want %q", tt.text, tt.ordinal, got, tt.want)
			}
		})
	}
}

func TestDefaultHeadingTemplate(t *testing.T) {
	t.Parallel()

	got := DefaultHeadingTemplate().Execute("Intro", 1)
	if got != "<h2>Intro</h2>" {
		t.Errorf("DefaultHeadingTemplate().Execute() = %q, want %q", got, "<h2>Intro</h2>")
	}
}
