package executor

import (
	"fmt"
	"strings"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Latency histogram bounds: 1µs to 1h, 3 significant figures.
const (
	histogramMin     = int64(1)
	histogramMax     = int64(time.Hour / time.Microsecond)
	histogramSigFigs = 3
)

// CountByStatus tallies records per terminal status.
func CountByStatus(records []ExecutionRecord) map[ExecutionStatus]int {
	counts := make(map[ExecutionStatus]int)
	for _, r := range records {
		counts[r.Status]++
	}
	return counts
}

// CountCompleted returns the number of first-try successes.
func CountCompleted(records []ExecutionRecord) int {
	return countStatus(records, StatusCompleted)
}

// CountRetried returns the number of tasks that succeeded only after retries.
func CountRetried(records []ExecutionRecord) int {
	return countStatus(records, StatusCompletedWithRetries)
}

// CountFailed returns the number of permanently failed tasks.
func CountFailed(records []ExecutionRecord) int {
	return countStatus(records, StatusFailed)
}

// CountDidNotRun returns the number of tasks that were never started.
func CountDidNotRun(records []ExecutionRecord) int {
	return countStatus(records, StatusDidNotRun)
}

func countStatus(records []ExecutionRecord, status ExecutionStatus) int {
	count := 0
	for _, r := range records {
		if r.Status == status {
			count++
		}
	}
	return count
}

// IndexesByStatus returns the input indexes whose record carries the given
// status, in input order.
func IndexesByStatus(records []ExecutionRecord, status ExecutionStatus) []int {
	indexes := make([]int, 0)
	for i, r := range records {
		if r.Status == status {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// CollectErrors flattens every captured attempt error, in input order and
// attempt order within each task.
func CollectErrors(records []ExecutionRecord) []error {
	errs := make([]error, 0)
	for _, r := range records {
		errs = append(errs, r.Errors...)
	}
	return errs
}

// HasFailures reports whether any task permanently failed.
func HasFailures(records []ExecutionRecord) bool {
	for _, r := range records {
		if r.Status == StatusFailed {
			return true
		}
	}
	return false
}

// AllSucceeded reports whether every task completed, with or without retries.
func AllSucceeded(records []ExecutionRecord) bool {
	for _, r := range records {
		if !r.Status.Succeeded() {
			return false
		}
	}
	return true
}

// SuccessRate returns the share of succeeded tasks as a percentage
// (0.0 to 100.0).
func SuccessRate(records []ExecutionRecord) float64 {
	if len(records) == 0 {
		return 0.0
	}
	succeeded := 0
	for _, r := range records {
		if r.Status.Succeeded() {
			succeeded++
		}
	}
	return float64(succeeded) / float64(len(records)) * 100.0
}

// Summary aggregates a record set: per-status totals plus latency statistics
// over the tasks that actually ran.
type Summary struct {
	Total     int
	Completed int
	Retried   int
	Failed    int
	DidNotRun int

	AvgDuration time.Duration
	MinDuration time.Duration
	MaxDuration time.Duration

	// Latency percentiles over executed tasks, from an HDR histogram
	// with microsecond resolution.
	P50 time.Duration
	P95 time.Duration
	P99 time.Duration
}

// Summarize aggregates the records. Tasks that never ran are counted in
// DidNotRun but excluded from every duration statistic.
func Summarize(records []ExecutionRecord) Summary {
	s := Summary{
		Total:     len(records),
		Completed: CountCompleted(records),
		Retried:   CountRetried(records),
		Failed:    CountFailed(records),
		DidNotRun: CountDidNotRun(records),
	}

	hist := hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs)
	var total time.Duration
	executed := 0

	for _, r := range records {
		if r.Status == StatusDidNotRun {
			continue
		}
		executed++
		total += r.Duration
		if executed == 1 || r.Duration < s.MinDuration {
			s.MinDuration = r.Duration
		}
		if r.Duration > s.MaxDuration {
			s.MaxDuration = r.Duration
		}
		// RecordValue only fails outside the histogram bounds; clamp
		// the sample rather than dropping it.
		micros := r.Duration.Microseconds()
		if micros < histogramMin {
			micros = histogramMin
		} else if micros > histogramMax {
			micros = histogramMax
		}
		_ = hist.RecordValue(micros)
	}

	if executed > 0 {
		s.AvgDuration = total / time.Duration(executed)
		s.P50 = time.Duration(hist.ValueAtQuantile(50)) * time.Microsecond
		s.P95 = time.Duration(hist.ValueAtQuantile(95)) * time.Microsecond
		s.P99 = time.Duration(hist.ValueAtQuantile(99)) * time.Microsecond
	}

	return s
}

// String returns a human-readable one-line summary.
func (s Summary) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total: %d, ", s.Total))
	sb.WriteString(fmt.Sprintf("Completed: %d, ", s.Completed))
	sb.WriteString(fmt.Sprintf("Retried: %d, ", s.Retried))
	sb.WriteString(fmt.Sprintf("Failed: %d, ", s.Failed))
	sb.WriteString(fmt.Sprintf("Did not run: %d", s.DidNotRun))

	if s.Total > s.DidNotRun {
		sb.WriteString(fmt.Sprintf(", Avg: %s", s.AvgDuration.Round(time.Millisecond)))
		sb.WriteString(fmt.Sprintf(", P95: %s", s.P95.Round(time.Millisecond)))
		sb.WriteString(fmt.Sprintf(", Max: %s", s.MaxDuration.Round(time.Millisecond)))
	}

	return sb.String()
}
