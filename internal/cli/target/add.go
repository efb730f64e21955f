package target

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/Arize-ai/phoenix-sub007/internal/config"
	"github.com/Arize-ai/phoenix-sub007/internal/util"
)

// newAddCmd creates the target add command
func newAddCmd() *cobra.Command {
	var (
		targetURL  string
		apiKeyEnv  string
		headers    map[string]string
		labels     map[string]string
		setDefault bool
		disabled   bool
	)

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a target to the pxbulk configuration",
		Long: `Add an endpoint target to the pxbulk configuration.

The API key is never stored; only the name of the environment variable
holding it is, and the key is read at run time.`,
		Example: `  # Add a target and make it the default
  pxbulk target add staging --url https://staging.example.com/v1/ingest --default

  # Add a target with auth and labels
  pxbulk target add prod --url https://prod.example.com/v1/ingest \
    --api-key-env PHOENIX_API_KEY --label env=prod --label team=evals`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args[0], config.TargetConfig{
				URL:       targetURL,
				APIKeyEnv: apiKeyEnv,
				Headers:   headers,
				Labels:    labels,
				Enabled:   !disabled,
			}, setDefault)
		},
	}

	cmd.Flags().StringVar(&targetURL, "url", "", "endpoint URL payloads are posted to")
	cmd.Flags().StringVar(&apiKeyEnv, "api-key-env", "", "environment variable holding the API key")
	cmd.Flags().StringToStringVar(&headers, "header", nil, "extra request header (key=value, repeatable)")
	cmd.Flags().StringToStringVar(&labels, "label", nil, "target label (key=value, repeatable)")
	cmd.Flags().BoolVar(&setDefault, "default", false, "make this the default target")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "add the target in disabled state")
	cmd.MarkFlagRequired("url")

	return cmd
}

func runAdd(cmd *cobra.Command, name string, tc config.TargetConfig, setDefault bool) error {
	if _, err := url.ParseRequestURI(tc.URL); err != nil {
		return util.NewValidationError("url", tc.URL, "target URL is not valid")
	}

	cfgPath, _ := cmd.Flags().GetString("config")
	manager := config.NewManager(cfgPath)
	cfg, err := manager.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if _, exists := cfg.Targets[name]; exists {
		fmt.Fprintf(os.Stderr, "Updating existing target %q\n", name)
	}

	manager.SetTargetConfig(name, tc)
	if setDefault || cfg.DefaultTarget == "" {
		manager.SetDefaultTarget(name)
	}

	if err := manager.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Added target %q (%s)\n", name, tc.URL)
	if cfg.DefaultTarget == name {
		fmt.Fprintf(os.Stdout, "Target %q is now the default\n", name)
	}

	return nil
}
