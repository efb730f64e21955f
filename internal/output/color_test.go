package output

import (
	"bytes"
	"testing"

	"github.com/Arize-ai/phoenix-sub007/internal/executor"
)

func TestNewColorScheme_NonTTY(t *testing.T) {
	// A bytes.Buffer is never a TTY, so colors must be disabled even
	// without the explicit flag.
	var buf bytes.Buffer
	scheme := NewColorScheme(&buf, false)

	if !scheme.Disabled {
		t.Error("expected colors disabled for non-TTY writer")
	}
	if got := scheme.Success("ok"); got != "ok" {
		t.Errorf("expected plain text, got %q", got)
	}
}

func TestNewColorScheme_NoColor(t *testing.T) {
	var buf bytes.Buffer
	scheme := NewColorScheme(&buf, true)

	if !scheme.Disabled {
		t.Error("expected colors disabled with noColor flag")
	}
}

func TestColorScheme_StatusColor(t *testing.T) {
	var buf bytes.Buffer
	scheme := NewColorScheme(&buf, true)

	tests := []struct {
		status executor.ExecutionStatus
		text   string
	}{
		{executor.StatusCompleted, "COMPLETED"},
		{executor.StatusCompletedWithRetries, "COMPLETED_WITH_RETRIES"},
		{executor.StatusFailed, "FAILED"},
		{executor.StatusDidNotRun, "DID_NOT_RUN"},
	}

	for _, tt := range tests {
		fn := scheme.StatusColor(tt.status)
		if fn == nil {
			t.Fatalf("expected color function for %s", tt.status)
		}
		// With colors disabled, each function is the identity.
		if got := fn(tt.text); got != tt.text {
			t.Errorf("%s: expected %q, got %q", tt.status, tt.text, got)
		}
	}
}
