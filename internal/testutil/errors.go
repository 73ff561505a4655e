// Package testutil provides testing utilities for xapian.
//
// This package contains mock errors and test helpers used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
// These errors are used to simulate various failure scenarios in tests.
var (
	// ErrMockOpenFailed indicates a mock file open failure (used in tests).
	ErrMockOpenFailed = errors.New("open failed")

	// ErrMockLockBusy indicates a mock contended lock (used in tests).
	ErrMockLockBusy = errors.New("lock busy")

	// ErrMockSpawnFailed indicates a mock process spawn failure (used in tests).
	ErrMockSpawnFailed = errors.New("spawn failed")

	// ErrMockNotFound indicates a mock resource was not found (used in tests).
	ErrMockNotFound = errors.New("not found")
)
