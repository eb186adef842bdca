// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/katexprobe/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "library_load_error",
			code:    errors.ErrLibraryLoad,
			message: "cannot require katex",
			wantStr: "[LIBRARY_LOAD] cannot require katex",
		},
		{
			name:    "invalid_config_error",
			code:    errors.ErrConfigValid,
			message: "invalid configuration",
			wantStr: "[CONFIG_INVALID] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrTimeout, "%s did not finish within %s", "node", "5s")
	if err.Message != "node did not finish within 5s" {
		t.Errorf("Newf() message = %q", err.Message)
	}
	if err.Code != errors.ErrTimeout {
		t.Errorf("Newf() code = %v, want %v", err.Code, errors.ErrTimeout)
	}
}

func TestWrap(t *testing.T) {
	base := stderrors.New("exit status 1")

	err := errors.Wrap(base, errors.ErrLibraryLoad, "probe failed")
	if err.Wrapped != base {
		t.Error("Wrap() should keep the wrapped error")
	}
	if got := err.Error(); got != "[LIBRARY_LOAD] probe failed: exit status 1" {
		t.Errorf("Error() = %q", got)
	}
	if !stderrors.Is(err, base) {
		t.Error("errors.Is should find the wrapped error")
	}

	if errors.Wrap(nil, errors.ErrLibraryLoad, "nothing") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if errors.Wrapf(nil, errors.ErrLibraryLoad, "nothing %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNodeNotFound, "node not found").
		WithDetail("binary", "/usr/bin/node").
		WithDetail("timeout", "5s")

	if err.Details["binary"] != "/usr/bin/node" {
		t.Errorf("WithDetail() binary = %v", err.Details["binary"])
	}
	if err.Details["timeout"] != "5s" {
		t.Errorf("WithDetail() timeout = %v", err.Details["timeout"])
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrRenderCheck, "error 1")
	err2 := errors.New(errors.ErrRenderCheck, "error 2")
	err3 := errors.New(errors.ErrRenderFailed, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors with the same code should match")
	}
	if stderrors.Is(err1, err3) {
		t.Error("errors with different codes should not match")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrLibraryLoad, "load"),
			code:     errors.ErrLibraryLoad,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrLibraryLoad, "load"),
			code:     errors.ErrTimeout,
			expected: false,
		},
		{
			name:     "wrapped_probe_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrTimeout, "slow"),
			code:     errors.ErrTimeout,
			expected: true,
		},
		{
			name:     "plain_error",
			err:      stderrors.New("plain"),
			code:     errors.ErrLibraryLoad,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrLibraryLoad,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrRenderFailed, "x")); got != errors.ErrRenderFailed {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("x")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
	if errors.GetErrorDetails(stderrors.New("x")) != nil {
		t.Error("GetErrorDetails() should be nil for plain errors")
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", stderrors.New("Cannot find module 'katex'"), "Cannot find module 'katex'"},
		{"probe", errors.New(errors.ErrNodeNotFound, "node binary not found"), "node binary not found"},
		{
			"nested",
			errors.Wrap(
				errors.Wrap(stderrors.New("exit status 1"), errors.ErrLibraryLoad, "Cannot find module 'katex'"),
				errors.ErrInternal, "probe"),
			"probe: Cannot find module 'katex': exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
