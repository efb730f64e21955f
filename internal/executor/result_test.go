package executor

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func sampleRecords() []ExecutionRecord {
	err := errors.New("attempt failed")
	return []ExecutionRecord{
		{Status: StatusCompleted, Duration: 10 * time.Millisecond},
		{Status: StatusCompletedWithRetries, Errors: []error{err}, Duration: 30 * time.Millisecond},
		{Status: StatusFailed, Errors: []error{err, err}, Duration: 50 * time.Millisecond},
		{Status: StatusDidNotRun},
		{Status: StatusCompleted, Duration: 20 * time.Millisecond},
	}
}

func TestCounts(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name string
		fn   func([]ExecutionRecord) int
		want int
	}{
		{"completed", CountCompleted, 2},
		{"retried", CountRetried, 1},
		{"failed", CountFailed, 1},
		{"did not run", CountDidNotRun, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(records); got != tt.want {
				t.Errorf("count = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus(sampleRecords())

	want := map[ExecutionStatus]int{
		StatusCompleted:            2,
		StatusCompletedWithRetries: 1,
		StatusFailed:               1,
		StatusDidNotRun:            1,
	}

	for status, n := range want {
		if counts[status] != n {
			t.Errorf("counts[%s] = %d, want %d", status, counts[status], n)
		}
	}
}

func TestIndexesByStatus(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		status ExecutionStatus
		want   []int
	}{
		{StatusCompleted, []int{0, 4}},
		{StatusFailed, []int{2}},
		{StatusDidNotRun, []int{3}},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := IndexesByStatus(records, tt.status)
			if len(got) != len(tt.want) {
				t.Fatalf("indexes = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("indexes = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestCollectErrors(t *testing.T) {
	errs := CollectErrors(sampleRecords())
	if len(errs) != 3 {
		t.Errorf("collected %d errors, want 3", len(errs))
	}

	if got := CollectErrors(nil); len(got) != 0 {
		t.Errorf("expected no errors for empty records, got %d", len(got))
	}
}

func TestHasFailuresAndAllSucceeded(t *testing.T) {
	records := sampleRecords()

	if !HasFailures(records) {
		t.Error("expected HasFailures to be true")
	}
	if AllSucceeded(records) {
		t.Error("expected AllSucceeded to be false")
	}

	clean := []ExecutionRecord{
		{Status: StatusCompleted},
		{Status: StatusCompletedWithRetries},
	}
	if HasFailures(clean) {
		t.Error("expected HasFailures to be false for clean records")
	}
	if !AllSucceeded(clean) {
		t.Error("expected AllSucceeded to be true for clean records")
	}
}

func TestSuccessRate(t *testing.T) {
	tests := []struct {
		name    string
		records []ExecutionRecord
		want    float64
	}{
		{
			name:    "empty",
			records: nil,
			want:    0.0,
		},
		{
			name: "all succeeded",
			records: []ExecutionRecord{
				{Status: StatusCompleted},
				{Status: StatusCompletedWithRetries},
			},
			want: 100.0,
		},
		{
			name: "half succeeded",
			records: []ExecutionRecord{
				{Status: StatusCompleted},
				{Status: StatusFailed},
			},
			want: 50.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuccessRate(tt.records); got != tt.want {
				t.Errorf("SuccessRate() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRecords())

	if s.Total != 5 {
		t.Errorf("Total = %d, want 5", s.Total)
	}
	if s.Completed != 2 || s.Retried != 1 || s.Failed != 1 || s.DidNotRun != 1 {
		t.Errorf("status totals = (%d, %d, %d, %d), want (2, 1, 1, 1)",
			s.Completed, s.Retried, s.Failed, s.DidNotRun)
	}

	// Duration statistics only cover the 4 executed tasks.
	if s.MinDuration != 10*time.Millisecond {
		t.Errorf("MinDuration = %s, want 10ms", s.MinDuration)
	}
	if s.MaxDuration != 50*time.Millisecond {
		t.Errorf("MaxDuration = %s, want 50ms", s.MaxDuration)
	}
	wantAvg := (10 + 30 + 50 + 20) * time.Millisecond / 4
	if s.AvgDuration != wantAvg {
		t.Errorf("AvgDuration = %s, want %s", s.AvgDuration, wantAvg)
	}

	// HDR percentiles carry 3-significant-figure resolution; check
	// bounds rather than exact values.
	if s.P50 < 10*time.Millisecond || s.P50 > 50*time.Millisecond {
		t.Errorf("P50 = %s, out of observed range", s.P50)
	}
	if s.P99 < s.P50 {
		t.Errorf("P99 (%s) < P50 (%s)", s.P99, s.P50)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 {
		t.Errorf("Total = %d, want 0", s.Total)
	}
	if s.AvgDuration != 0 || s.P50 != 0 {
		t.Error("expected zero duration statistics for empty records")
	}
}

func TestSummary_String(t *testing.T) {
	s := Summarize(sampleRecords())
	str := s.String()

	for _, want := range []string{"Total: 5", "Completed: 2", "Retried: 1", "Failed: 1", "Did not run: 1", "Avg:"} {
		if !strings.Contains(str, want) {
			t.Errorf("summary string missing %q: %s", want, str)
		}
	}

	empty := Summarize(nil).String()
	if strings.Contains(empty, "Avg:") {
		t.Errorf("empty summary should omit duration stats: %s", empty)
	}
}
