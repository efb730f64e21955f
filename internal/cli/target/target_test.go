package target

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Arize-ai/phoenix-sub007/internal/config"
)

// newTestParent builds a minimal parent command carrying the persistent
// flags the subcommands read.
func newTestParent(cfgPath string) *cobra.Command {
	parent := &cobra.Command{Use: "pxbulk"}
	parent.PersistentFlags().String("config", cfgPath, "")
	parent.AddCommand(NewTargetCmd())
	return parent
}

func TestTargetCmd_Subcommands(t *testing.T) {
	cmd := NewTargetCmd()

	expected := []string{"list", "add", "remove", "ping"}
	for _, name := range expected {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}

func TestTargetAddAndRemove(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	parent := newTestParent(cfgPath)
	parent.SetArgs([]string{
		"target", "add", "staging",
		"--url", "https://staging.example.com/v1/ingest",
		"--api-key-env", "PHOENIX_API_KEY",
		"--label", "env=staging",
	})
	if err := parent.Execute(); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// First target becomes the default
	manager := config.NewManager(cfgPath)
	cfg, err := manager.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.DefaultTarget != "staging" {
		t.Errorf("expected staging as default, got %q", cfg.DefaultTarget)
	}

	tc, ok := cfg.Targets["staging"]
	if !ok {
		t.Fatal("expected staging target in config")
	}
	if tc.URL != "https://staging.example.com/v1/ingest" {
		t.Errorf("unexpected URL: %q", tc.URL)
	}
	if tc.APIKeyEnv != "PHOENIX_API_KEY" {
		t.Errorf("unexpected API key env: %q", tc.APIKeyEnv)
	}
	if !tc.Enabled {
		t.Error("expected target enabled by default")
	}
	if tc.Labels["env"] != "staging" {
		t.Errorf("unexpected labels: %v", tc.Labels)
	}

	// Remove it again
	parent = newTestParent(cfgPath)
	parent.SetArgs([]string{"target", "remove", "staging"})
	if err := parent.Execute(); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	cfg, err = config.NewManager(cfgPath).Load()
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if _, ok := cfg.Targets["staging"]; ok {
		t.Error("expected staging target removed")
	}
	if cfg.DefaultTarget != "" {
		t.Errorf("expected default cleared, got %q", cfg.DefaultTarget)
	}
}

func TestTargetAdd_InvalidURL(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	parent := newTestParent(cfgPath)
	parent.SetArgs([]string{"target", "add", "bad", "--url", "not a url"})
	parent.SilenceUsage = true
	parent.SilenceErrors = true

	if err := parent.Execute(); err == nil {
		t.Fatal("expected error for invalid URL")
	}
}

func TestTargetRemove_Unknown(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	parent := newTestParent(cfgPath)
	parent.SetArgs([]string{"target", "remove", "ghost"})
	parent.SilenceUsage = true
	parent.SilenceErrors = true

	if err := parent.Execute(); err == nil {
		t.Fatal("expected error for unknown target")
	}
}

func TestFormatLabels(t *testing.T) {
	tests := []struct {
		name   string
		labels map[string]string
		want   string
	}{
		{
			name:   "empty",
			labels: nil,
			want:   "",
		},
		{
			name:   "single label",
			labels: map[string]string{"env": "prod"},
			want:   "env=prod",
		},
		{
			name:   "sorted pairs",
			labels: map[string]string{"team": "evals", "env": "prod"},
			want:   "env=prod,team=evals",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatLabels(tt.labels); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
