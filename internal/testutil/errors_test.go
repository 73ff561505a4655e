package testutil

import (
	"errors"
	"testing"
)

// errMockWrapped is a static error for testing that non-wrapped errors don't match sentinels.
var errMockWrapped = errors.New("wrapped: lock busy")

func TestMockErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrMockOpenFailed", ErrMockOpenFailed, "open failed"},
		{"ErrMockLockBusy", ErrMockLockBusy, "lock busy"},
		{"ErrMockSpawnFailed", ErrMockSpawnFailed, "spawn failed"},
		{"ErrMockNotFound", ErrMockNotFound, "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.want)
			}
		})
	}
}

func TestMockErrorsAreSentinelErrors(t *testing.T) {
	// Direct comparison should work
	if !errors.Is(ErrMockLockBusy, ErrMockLockBusy) {
		t.Error("ErrMockLockBusy should be equal to itself")
	}

	// Non-wrapped errors should not match (standard Go error behavior)
	if errors.Is(errMockWrapped, ErrMockLockBusy) {
		t.Error("non-wrapped error should not match sentinel")
	}
}
