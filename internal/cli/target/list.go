package target

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Arize-ai/phoenix-sub007/internal/config"
)

// targetRow is the per-target listing entry across all output formats.
type targetRow struct {
	Name    string            `json:"name" yaml:"name"`
	URL     string            `json:"url" yaml:"url"`
	Default bool              `json:"default" yaml:"default"`
	Enabled bool              `json:"enabled" yaml:"enabled"`
	Labels  map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// newListCmd creates the target list command
func newListCmd() *cobra.Command {
	var (
		showLabels   bool
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configured targets",
		Long: `List all endpoint targets from the pxbulk configuration.

This command displays every configured target, marking the default one
and showing URLs, enabled status, and optionally labels.`,
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, showLabels, outputFormat)
		},
	}

	cmd.Flags().BoolVar(&showLabels, "show-labels", false, "show target labels")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "output format (table, json, yaml)")

	return cmd
}

func runList(cmd *cobra.Command, showLabels bool, outputFormat string) error {
	logger := slog.Default()

	cfgPath, _ := cmd.Flags().GetString("config")
	manager := config.NewManager(cfgPath)
	cfg, err := manager.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Debug("loaded config", "targets", len(cfg.Targets))

	if len(cfg.Targets) == 0 {
		fmt.Fprintf(os.Stderr, "No targets configured. Add one with 'pxbulk target add'.\n")
		return nil
	}

	rows := make([]targetRow, 0, len(cfg.Targets))
	for name, tc := range cfg.Targets {
		rows = append(rows, targetRow{
			Name:    name,
			URL:     tc.URL,
			Default: name == cfg.DefaultTarget,
			Enabled: tc.Enabled,
			Labels:  tc.Labels,
		})
	}

	// Sort targets by name for consistent output, default first
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Default != rows[j].Default {
			return rows[i].Default
		}
		return rows[i].Name < rows[j].Name
	})

	// Determine output format
	if outputFormat == "" {
		outputFormat = viper.GetString("output")
	}
	if outputFormat == "" {
		outputFormat = "table"
	}

	switch outputFormat {
	case "json":
		return listJSON(rows)
	case "yaml":
		return listYAML(rows)
	case "table":
		return listTable(rows, showLabels, viper.GetBool("no-color"))
	default:
		return fmt.Errorf("unsupported output format: %s (supported: table, json, yaml)", outputFormat)
	}
}

func listTable(rows []targetRow, showLabels bool, noColor bool) error {
	table := tablewriter.NewWriter(os.Stdout)

	headers := []string{"Default", "Name", "URL", "Enabled"}
	if showLabels {
		headers = append(headers, "Labels")
	}
	table.SetHeader(headers)

	// Configure table style
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	var (
		defaultMarker = "*"
		greenBold     = color.New(color.FgGreen, color.Bold)
		yellow        = color.New(color.FgYellow)
	)

	if noColor {
		color.NoColor = true
	}

	for _, t := range rows {
		row := make([]string, 0, len(headers))

		marker := ""
		if t.Default {
			marker = defaultMarker
		}
		row = append(row, marker)

		name := t.Name
		if t.Default && !noColor {
			name = greenBold.Sprint(name)
		}
		row = append(row, name)

		url := t.URL
		if len(url) > 60 {
			url = url[:57] + "..."
		}
		row = append(row, url)

		enabled := "yes"
		if !t.Enabled {
			enabled = "no"
		}
		row = append(row, enabled)

		if showLabels {
			labelStr := formatLabels(t.Labels)
			if !noColor && labelStr != "" {
				labelStr = yellow.Sprint(labelStr)
			}
			row = append(row, labelStr)
		}

		table.Append(row)
	}

	table.Render()

	fmt.Fprintf(os.Stdout, "\nTotal targets: %d\n", len(rows))

	return nil
}

func listJSON(rows []targetRow) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}

func listYAML(rows []targetRow) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer encoder.Close()
	return encoder.Encode(rows)
}

func formatLabels(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(labels))
	for k, v := range labels {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}
