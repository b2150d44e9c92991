package builder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"
)

// lockPermissions restricts the lock file to the current user.
const lockPermissions = 0o600

// ErrBuilderRunning is returned when another live packaging run holds the lock.
var ErrBuilderRunning = errors.New("another packaging run is in progress")

// Lock is a PID file guarding a packaging run.
type Lock struct {
	path string
}

// NewLock creates a lock backed by the file at path.
func NewLock(path string) *Lock {
	return &Lock{
		path: filepath.Clean(path),
	}
}

// Acquire takes the lock for the current process.
// A lock left by a process that no longer exists is removed first.
func (l *Lock) Acquire() error {
	pid, err := l.owner()

	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return err
	default:
		alive, checkErr := processAlive(pid)
		if checkErr != nil {
			return checkErr
		}

		if alive {
			return fmt.Errorf("%w (pid %d, lock %s)", ErrBuilderRunning, pid, l.path)
		}

		if err = os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove stale lock: %w", err)
		}
	}

	file, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, lockPermissions)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w (lock %s)", ErrBuilderRunning, l.path)
		}

		return fmt.Errorf("create lock: %w", err)
	}

	_, err = file.WriteString(strconv.Itoa(os.Getpid()))
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("write lock: %w", err)
	}

	return nil
}

// Release removes the lock file.
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove lock: %w", err)
	}

	return nil
}

// owner returns the PID recorded in the lock file.
// Unreadable contents are reported as PID 0, which is never alive.
func (l *Lock) owner() (int, error) {
	contents, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, err
		}

		return 0, fmt.Errorf("read lock: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(contents)))
	if err != nil {
		return 0, nil //nolint:nilerr // A corrupt lock is treated as stale.
	}

	return pid, nil
}

func processAlive(pid int) (bool, error) {
	if pid <= 0 {
		return false, nil
	}

	process, err := ps.FindProcess(pid)
	if err != nil {
		return false, fmt.Errorf("find process %d: %w", pid, err)
	}

	return process != nil, nil
}
