package output

import (
	"testing"
)

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		wantType string
	}{
		{
			name:     "table format",
			format:   FormatTable,
			wantType: "*output.TableFormatter",
		},
		{
			name:     "json format",
			format:   FormatJSON,
			wantType: "*output.JSONFormatter",
		},
		{
			name:     "yaml format",
			format:   FormatYAML,
			wantType: "*output.YAMLFormatter",
		},
		{
			name:     "unknown format defaults to table",
			format:   Format("csv"),
			wantType: "*output.TableFormatter",
		},
		{
			name:     "empty format defaults to table",
			format:   Format(""),
			wantType: "*output.TableFormatter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := NewFormatter(tt.format)

			switch tt.wantType {
			case "*output.TableFormatter":
				if _, ok := formatter.(*TableFormatter); !ok {
					t.Errorf("expected TableFormatter, got %T", formatter)
				}
			case "*output.JSONFormatter":
				if _, ok := formatter.(*JSONFormatter); !ok {
					t.Errorf("expected JSONFormatter, got %T", formatter)
				}
			case "*output.YAMLFormatter":
				if _, ok := formatter.(*YAMLFormatter); !ok {
					t.Errorf("expected YAMLFormatter, got %T", formatter)
				}
			}
		})
	}
}

func TestNewFormatter_Options(t *testing.T) {
	formatter := NewFormatter(FormatTable,
		WithNoColor(true),
		WithNoHeaders(true),
		WithWide(true),
	)

	tf, ok := formatter.(*TableFormatter)
	if !ok {
		t.Fatalf("expected TableFormatter, got %T", formatter)
	}

	if !tf.options.NoColor {
		t.Error("expected NoColor to be set")
	}
	if !tf.options.NoHeaders {
		t.Error("expected NoHeaders to be set")
	}
	if !tf.options.Wide {
		t.Error("expected Wide to be set")
	}
}
