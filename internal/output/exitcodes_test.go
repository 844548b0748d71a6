package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError_Constructors(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name     string
		err      *ExitError
		wantCode int
	}{
		{"user", NewUserError("bad flag"), ExitUserError},
		{"user with cause", NewUserErrorWithCause("template not found", cause), ExitUserError},
		{"system", NewSystemErrorWithCause("write failed", cause), ExitSystemError},
		{"dependency", NewDependencyError("no engine", "reinstall", cause), ExitMissingDependency},
		{"stale", NewStaleError("README.md is out of date"), ExitStale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.err.Message {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.err.Message)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	underlying := errors.New("permission denied")
	err := NewSystemErrorWithCause("writing README.md", underlying)

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find underlying error")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, ExitSuccess},
		{"user", NewUserError("bad input"), ExitUserError},
		{"system", NewSystemErrorWithCause("io", nil), ExitSystemError},
		{"dependency", NewDependencyError("x", "", nil), ExitMissingDependency},
		{"stale", NewStaleError("stale"), ExitStale},
		{"wrapped", fmt.Errorf("outer: %w", NewStaleError("stale")), ExitStale},
		{"plain error defaults to user error", errors.New("some error"), ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}
