package util

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestTargetError(t *testing.T) {
	baseErr := errors.New("connection refused")
	err := WrapTargetError("eval-gateway", baseErr)

	if err == nil {
		t.Fatal("expected non-nil error")
	}

	if !strings.Contains(err.Error(), "eval-gateway") {
		t.Errorf("expected error to contain target name, got %q", err.Error())
	}

	if !errors.Is(err, baseErr) {
		t.Error("expected errors.Is to match the wrapped error")
	}

	var targetErr *TargetError
	if !errors.As(err, &targetErr) {
		t.Fatal("expected errors.As to match *TargetError")
	}
	if targetErr.TargetName != "eval-gateway" {
		t.Errorf("expected target name %q, got %q", "eval-gateway", targetErr.TargetName)
	}
}

func TestWrapTargetError_Nil(t *testing.T) {
	if err := WrapTargetError("eval-gateway", nil); err != nil {
		t.Errorf("expected nil for nil error, got %v", err)
	}
}

func TestMultiError(t *testing.T) {
	tests := []struct {
		name     string
		errs     []error
		wantNil  bool
		contains string
	}{
		{
			name:    "no errors",
			errs:    nil,
			wantNil: true,
		},
		{
			name:    "all nil errors filtered",
			errs:    []error{nil, nil},
			wantNil: true,
		},
		{
			name:     "single error",
			errs:     []error{errors.New("boom")},
			contains: "boom",
		},
		{
			name:     "multiple errors",
			errs:     []error{errors.New("first"), errors.New("second")},
			contains: "2 errors occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewMultiError(tt.errs).ErrorOrNil()

			if tt.wantNil {
				if err != nil {
					t.Errorf("expected nil, got %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("expected non-nil error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("expected error to contain %q, got %q", tt.contains, err.Error())
			}
		})
	}
}

func TestMultiError_Truncation(t *testing.T) {
	m := &MultiError{}
	for i := 0; i < 15; i++ {
		m.Add(fmt.Errorf("error %d", i))
	}

	msg := m.Error()
	if !strings.Contains(msg, "15 errors occurred") {
		t.Errorf("expected total count in message, got %q", msg)
	}
	if !strings.Contains(msg, "more errors") {
		t.Errorf("expected truncation marker, got %q", msg)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("concurrency", 0, "must be greater than zero")

	if !strings.Contains(err.Error(), "concurrency") {
		t.Errorf("expected field name in message, got %q", err.Error())
	}

	// Every validation error is a configuration error
	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("expected validation error to unwrap to ErrInvalidConfig")
	}
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		checkFn  func(error) bool
		expected bool
	}{
		{
			name:     "timeout",
			err:      fmt.Errorf("request: %w", ErrTimeout),
			checkFn:  IsTimeout,
			expected: true,
		},
		{
			name:     "cancelled",
			err:      ErrCancelled,
			checkFn:  IsCancelled,
			expected: true,
		},
		{
			name:     "target not found",
			err:      WrapTargetError("prod", ErrTargetNotFound),
			checkFn:  IsNotFound,
			expected: true,
		},
		{
			name:     "connection",
			err:      ErrConnectionFailed,
			checkFn:  IsConnectionError,
			expected: true,
		},
		{
			name:     "unrelated error",
			err:      errors.New("something else"),
			checkFn:  IsTimeout,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.checkFn(tt.err); got != tt.expected {
				t.Errorf("predicate = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "nil error",
			err:      nil,
			contains: "",
		},
		{
			name:     "timeout",
			err:      ErrTimeout,
			contains: "--timeout",
		},
		{
			name:     "target not found",
			err:      ErrTargetNotFound,
			contains: "target add",
		},
		{
			name:     "malformed dataset",
			err:      ErrMalformedDataset,
			contains: "JSONL",
		},
		{
			name:     "run aborted",
			err:      ErrRunAborted,
			contains: "--exit-on-error",
		},
		{
			name:     "unknown error passes through",
			err:      errors.New("weird failure"),
			contains: "weird failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FriendlyError(tt.err)
			if tt.contains == "" {
				if got != "" {
					t.Errorf("expected empty message, got %q", got)
				}
				return
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("expected message to contain %q, got %q", tt.contains, got)
			}
		})
	}
}

func TestCombineErrors(t *testing.T) {
	if err := CombineErrors(nil, nil); err != nil {
		t.Errorf("expected nil for all-nil errors, got %v", err)
	}

	e1 := errors.New("first")
	e2 := errors.New("second")
	err := CombineErrors(e1, nil, e2)
	if err == nil {
		t.Fatal("expected non-nil error")
	}
	if !errors.Is(err, e1) || !errors.Is(err, e2) {
		t.Error("expected combined error to match both originals")
	}
}

func TestWrapErrorf(t *testing.T) {
	base := errors.New("root cause")
	err := WrapErrorf(base, "loading dataset %q", "rows.jsonl")

	if err == nil {
		t.Fatal("expected non-nil error")
	}
	if !errors.Is(err, base) {
		t.Error("expected wrapped error to match original")
	}
	if !strings.Contains(err.Error(), "rows.jsonl") {
		t.Errorf("expected formatted context in message, got %q", err.Error())
	}

	if WrapErrorf(nil, "context") != nil {
		t.Error("expected nil when wrapping nil")
	}
}
