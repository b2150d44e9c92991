package builder

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLock_AcquireRelease takes and frees the lock.
func TestLock_AcquireRelease(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "packager.lock")
	lock := NewLock(path)

	require.NoError(t, lock.Acquire())

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, strconv.Itoa(os.Getpid()), string(contents))

	require.NoError(t, lock.Release())
	require.NoFileExists(t, path)

	// Releasing twice is fine.
	require.NoError(t, lock.Release())
}

// TestLock_HeldByLiveProcess refuses to start while the owner is alive.
func TestLock_HeldByLiveProcess(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "packager.lock")
	require.NoError(t, os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), lockPermissions))

	require.ErrorIs(t, NewLock(path).Acquire(), ErrBuilderRunning)
}

// TestLock_Stale replaces locks of dead processes and corrupt locks.
func TestLock_Stale(t *testing.T) {
	t.Parallel()

	for _, contents := range []string{"2147483000", "not-a-pid", ""} {
		path := filepath.Join(t.TempDir(), "packager.lock")
		require.NoError(t, os.WriteFile(path, []byte(contents), lockPermissions))

		lock := NewLock(path)
		require.NoError(t, lock.Acquire(), contents)
		require.NoError(t, lock.Release())
	}
}

// TestIsRunning finds a live child process by name and ignores unknown names.
func TestIsRunning(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("requires sleep")
	}

	running, err := IsRunning("ide-packager-no-such-builder")
	require.NoError(t, err)
	require.False(t, running)

	child := exec.Command("sleep", "30")
	require.NoError(t, child.Start())

	t.Cleanup(func() {
		_ = child.Process.Kill()
		_ = child.Wait()
	})

	running, err = IsRunning("/bin/sleep")
	require.NoError(t, err)
	require.True(t, running)
}

// TestMatchesProcessName covers exact names and Linux name truncation.
func TestMatchesProcessName(t *testing.T) {
	t.Parallel()

	require.True(t, matchesProcessName("node", "node"))
	require.False(t, matchesProcessName("", ""))
	require.False(t, matchesProcessName("node", "electron-builder"))
	require.Equal(t, runtime.GOOS == "linux", matchesProcessName("electron-builde", "electron-builder"))
}
