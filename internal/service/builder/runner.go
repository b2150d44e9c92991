package builder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes the packaging tool and waits for it to finish.
type Runner interface {
	Run(ctx context.Context, command string, args []string) error
}

// ExitError reports a packaging tool that exited with a non-zero status.
type ExitError struct {
	// Command is the executable that was run.
	Command string
	// Code is the process exit status.
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
}

// ExecRunner runs commands as child processes. Nil streams default to the
// packager's own stdin, stdout and stderr.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Dir is the working directory of the child; empty means the current one.
	Dir string
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, command string, args []string) error {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = r.Dir
	cmd.Stdin = orReader(r.Stdin, os.Stdin)
	cmd.Stdout = orWriter(r.Stdout, os.Stdout)
	cmd.Stderr = orWriter(r.Stderr, os.Stderr)

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Command: command, Code: exitErr.ExitCode()}
	}

	return fmt.Errorf("run %s: %w", command, err)
}

// FormatCommand renders a command line for logs, quoting arguments with spaces.
func FormatCommand(command string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, command)

	for _, arg := range args {
		if arg == "" || strings.ContainsAny(arg, " \t") {
			arg = fmt.Sprintf("%q", arg)
		}

		parts = append(parts, arg)
	}

	return strings.Join(parts, " ")
}

func orReader(r, fallback io.Reader) io.Reader {
	if r == nil {
		return fallback
	}

	return r
}

func orWriter(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}

	return w
}
