package builder

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-ps"
)

// commLength is the length Linux truncates process names to in /proc/<pid>/stat.
const commLength = 15

// IsRunning reports whether a process other than the current one runs executable.
// Only the base name is compared; a Windows extension is ignored.
func IsRunning(executable string) (bool, error) {
	processList, err := ps.Processes()
	if err != nil {
		return false, fmt.Errorf("list processes: %w", err)
	}

	want := processName(executable)
	thisProcessID := os.Getpid()

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if matchesProcessName(processName(process.Executable()), want) {
			return true, nil
		}
	}

	return false, nil
}

// processName strips the directory and, on Windows, the extension.
func processName(executable string) string {
	name := filepath.Base(executable)

	if runtime.GOOS == "windows" {
		name = strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
	}

	return name
}

func matchesProcessName(got, want string) bool {
	if got == "" || want == "" {
		return false
	}

	if got == want {
		return true
	}

	return runtime.GOOS == "linux" && len(got) == commLength && strings.HasPrefix(want, got)
}
