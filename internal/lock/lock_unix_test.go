//go:build unix

package lock_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/harsh9t/xapian/internal/lock"
)

// probeEnvVar asks the re-exec'd test binary to act as an independent
// process probing the lock instead of running the test suite.
const probeEnvVar = "XAPIAN_TEST_LOCK_PROBE"

// Probe exit codes, one per Outcome.
const (
	probeExitSuccess     = 0
	probeExitAlreadyHeld = 3
	probeExitUnsupported = 4
	probeExitUnknown     = 5
)

// TestMain lets the test binary play three roles: lock holder child (spawned
// by Acquire), independent probe process, or the test suite itself.
func TestMain(m *testing.M) {
	lock.MaybeRunHolder()
	if path := os.Getenv(probeEnvVar); path != "" {
		os.Exit(runProbe(path))
	}
	os.Exit(m.Run())
}

// runProbe attempts the lock from a fresh process, releases it if acquired,
// and reports the outcome through the exit code.
func runProbe(path string) int {
	h := lock.New(path)
	res := h.Acquire(context.Background())
	h.Release()
	switch res.Outcome {
	case lock.Success:
		return probeExitSuccess
	case lock.AlreadyHeld:
		return probeExitAlreadyHeld
	case lock.Unsupported:
		return probeExitUnsupported
	default:
		return probeExitUnknown
	}
}

// probeLock runs the test binary as a separate probe process against path
// and returns its exit code.
func probeLock(t *testing.T, path string) int {
	t.Helper()

	exe, err := os.Executable()
	require.NoError(t, err)

	cmd := exec.Command(exe) // #nosec G204 -- re-exec of the test binary itself
	cmd.Env = append(os.Environ(), probeEnvVar+"="+path)
	err = cmd.Run()
	if err == nil {
		return probeExitSuccess
	}
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr, "probe process failed to run")
	return exitErr.ExitCode()
}

func lockPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "flintlock")
}

func TestAcquireRelease(t *testing.T) {
	path := lockPath(t)
	h := lock.New(path)
	defer h.Release()

	res := h.Acquire(context.Background())
	require.True(t, res.Ok(), "acquire failed: %s (%s)", res.Outcome, res.Explanation)
	assert.True(t, h.Locked())
	assert.Positive(t, h.HolderPID())

	// A second process must observe contention while we hold the lock.
	assert.Equal(t, probeExitAlreadyHeld, probeLock(t, path))

	h.Release()
	assert.False(t, h.Locked())
	assert.Zero(t, h.HolderPID())

	// After release, the kernel lock must be free for another process.
	assert.Equal(t, probeExitSuccess, probeLock(t, path))
}

func TestAcquire_TwoHandlesScenario(t *testing.T) {
	// Handle A locks, handle B (separate process) sees AlreadyHeld,
	// A releases, B retries and wins.
	path := lockPath(t)
	handleA := lock.New(path)
	defer handleA.Release()

	require.True(t, handleA.Acquire(context.Background()).Ok())
	assert.Equal(t, probeExitAlreadyHeld, probeLock(t, path))

	handleA.Release()
	assert.Equal(t, probeExitSuccess, probeLock(t, path))
}

func TestAcquire_SecondAcquireOnLockedHandle(t *testing.T) {
	path := lockPath(t)
	h := lock.New(path)
	defer h.Release()

	require.True(t, h.Acquire(context.Background()).Ok())

	res := h.Acquire(context.Background())
	assert.Equal(t, lock.Unknown, res.Outcome)
	assert.NotEmpty(t, res.Explanation)
	assert.True(t, h.Locked(), "failed re-acquire must not disturb the held lock")
}

func TestAcquire_OpenFailure(t *testing.T) {
	t.Parallel()
	h := lock.New(filepath.Join(t.TempDir(), "missing-dir", "flintlock"))

	res := h.Acquire(context.Background())
	assert.Equal(t, lock.Unknown, res.Outcome)
	assert.Contains(t, res.Explanation, "couldn't open lockfile")
	assert.False(t, h.Locked())
}

func TestAcquire_SpawnFailure(t *testing.T) {
	t.Parallel()
	path := lockPath(t)
	h := lock.New(path, lock.WithHolderExecutable(filepath.Join(t.TempDir(), "no-such-binary")))

	res := h.Acquire(context.Background())
	assert.Equal(t, lock.Unknown, res.Outcome)
	assert.Contains(t, res.Explanation, "couldn't spawn lock holder")
	assert.False(t, h.Locked())

	// The failed attempt must leave the file lockable.
	assert.Equal(t, probeExitSuccess, probeLock(t, path))
}

func TestAcquire_HolderExitsWithoutHandshake(t *testing.T) {
	t.Parallel()
	// A holder that exits without writing a status byte must surface as an
	// unexpected-EOF failure, never a hang.
	falseBin, err := exec.LookPath("false")
	if err != nil {
		t.Skip("no false binary on this system")
	}

	h := lock.New(lockPath(t), lock.WithHolderExecutable(falseBin))
	res := h.Acquire(context.Background())
	assert.Equal(t, lock.Unknown, res.Outcome)
	assert.Contains(t, res.Explanation, "EOF")
	assert.False(t, h.Locked())
}

func TestRelease_Idempotent(t *testing.T) {
	path := lockPath(t)
	h := lock.New(path)

	// Releasing a handle that never locked is a no-op.
	h.Release()
	assert.False(t, h.Locked())

	require.True(t, h.Acquire(context.Background()).Ok())
	h.Release()
	h.Release()
	assert.False(t, h.Locked())
	assert.Equal(t, probeExitSuccess, probeLock(t, path))
}

func TestHolderKilled_LockFreed(t *testing.T) {
	// Killing the holder abruptly simulates a writer crash: the kernel lock
	// dies with the holder process, without any explicit release call.
	path := lockPath(t)
	h := lock.New(path)
	defer h.Release()

	require.True(t, h.Acquire(context.Background()).Ok())
	pid := h.HolderPID()
	require.Positive(t, pid)

	require.NoError(t, syscall.Kill(pid, syscall.SIGKILL))

	deadline := time.Now().Add(5 * time.Second)
	for {
		if probeLock(t, path) == probeExitSuccess {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("lock still held after holder was killed")
		}
		time.Sleep(50 * time.Millisecond)
	}

	// Release still resets the handle cleanly and reaps the dead child.
	h.Release()
	assert.False(t, h.Locked())
}

func TestConcurrentAcquire_ExactlyOneWinner(t *testing.T) {
	path := lockPath(t)

	const contenders = 4
	var (
		mu      sync.Mutex
		winners []*lock.Handle
		held    int
		other   int
	)

	var g errgroup.Group
	for i := 0; i < contenders; i++ {
		g.Go(func() error {
			h := lock.New(path)
			res := h.Acquire(context.Background())
			mu.Lock()
			defer mu.Unlock()
			switch res.Outcome {
			case lock.Success:
				winners = append(winners, h)
			case lock.AlreadyHeld:
				held++
			default:
				other++
				h.Release()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Len(t, winners, 1, "exactly one contender must win the lock")
	assert.Equal(t, contenders-1, held)
	assert.Zero(t, other, "no contender should see an unexpected failure")

	for _, h := range winners {
		h.Release()
	}
	assert.Equal(t, probeExitSuccess, probeLock(t, path))
}
