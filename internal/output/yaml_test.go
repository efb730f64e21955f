package output

import (
	"bytes"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Arize-ai/phoenix-sub007/internal/target"
)

func TestYAMLFormatter_FormatReport(t *testing.T) {
	report, rows := sampleReport()

	var buf bytes.Buffer
	formatter := NewYAMLFormatter(nil)

	if err := formatter.FormatReport(&buf, report, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc struct {
		RunID   string `yaml:"run_id"`
		Target  string `yaml:"target"`
		Summary struct {
			Total     int `yaml:"total"`
			Completed int `yaml:"completed"`
		} `yaml:"summary"`
		Results []map[string]interface{} `yaml:"results"`
	}

	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}

	if doc.RunID != "run-123" || doc.Target != "staging" {
		t.Errorf("unexpected header fields: %+v", doc)
	}
	if doc.Summary.Total != 4 || doc.Summary.Completed != 1 {
		t.Errorf("unexpected summary: %+v", doc.Summary)
	}
	if len(doc.Results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(doc.Results))
	}
	if doc.Results[1]["status"] != "COMPLETED_WITH_RETRIES" {
		t.Errorf("unexpected retried result: %v", doc.Results[1])
	}
}

func TestYAMLFormatter_FormatHealth(t *testing.T) {
	statuses := []target.HealthStatus{
		{TargetName: "prod", Healthy: true, StatusCode: 200},
		{TargetName: "down", Healthy: false, Error: errors.New("refused")},
	}

	var buf bytes.Buffer
	formatter := NewYAMLFormatter(nil)

	if err := formatter.FormatHealth(&buf, statuses); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out []map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out[0]["target"] != "prod" {
		t.Errorf("unexpected entry: %v", out[0])
	}
	if out[1]["error"] != "refused" {
		t.Errorf("unexpected entry: %v", out[1])
	}
}

func TestYAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewYAMLFormatter(nil)

	if err := formatter.Format(&buf, map[string]string{"key": "value"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out map[string]string
	if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	if out["key"] != "value" {
		t.Errorf("unexpected output: %v", out)
	}
}
