package styles

import (
	"strings"
	"testing"
)

func TestProgress(t *testing.T) {
	t.Parallel()

	got := Progress(2, 5, "post.md")
	for _, want := range []string{"2/5", "post.md"} {
		if !strings.Contains(got, want) {
			t.Errorf("Progress() = %q, want to contain %q", got, want)
		}
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		succeeded, failed int
		want              []string
	}{
		{name: "all succeeded", succeeded: 3, failed: 0, want: []string{"succeeded", "3", "failed 0"}},
		{name: "with failures", succeeded: 2, failed: 1, want: []string{"succeeded", "2", "failed", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Summary(tt.succeeded, tt.failed)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("Summary() = %q, want to contain %q", got, want)
				}
			}
		})
	}
}
