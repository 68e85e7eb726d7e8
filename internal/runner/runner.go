// Package runner invokes the project's Jest suite through npm and
// captures the outcome for the calling tool.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrWatchMode indicates a request for watch mode, which never
// terminates and therefore cannot be served over a request-response
// tool call.
var ErrWatchMode = errors.New("watch mode is not supported over MCP")

// DefaultTimeout bounds a single test run.
const DefaultTimeout = 2 * time.Minute

// Options select what to run.
type Options struct {
	TestPath        string // file or directory, empty for the whole suite
	TestNamePattern string // forwarded to jest -t
	Coverage        bool
	Watch           bool // always rejected, kept for interface parity with the tool schema
}

// Result is the outcome of one test run.
type Result struct {
	Command  []string
	Output   string
	Passed   bool
	Duration time.Duration
}

// CommandRunner abstracts subprocess execution so tests can substitute
// a fake.
type CommandRunner interface {
	// Run executes the command in dir and returns its combined output.
	// A non-nil error means the command failed or could not start.
	Run(ctx context.Context, dir string, command []string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir string, command []string) (string, error) {
	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// Runner executes Jest in a project directory.
type Runner struct {
	dir     string
	cmd     CommandRunner
	timeout time.Duration
}

// New creates a runner for the given project directory using the real
// subprocess executor.
func New(dir string) *Runner {
	return NewWithCommandRunner(dir, ExecRunner{})
}

// NewWithCommandRunner creates a runner with a custom executor.
func NewWithCommandRunner(dir string, cmd CommandRunner) *Runner {
	return &Runner{dir: dir, cmd: cmd, timeout: DefaultTimeout}
}

// buildCommand assembles the npm invocation for the given options.
func buildCommand(opts Options) []string {
	cmd := []string{"npm", "test", "--"}

	if opts.TestPath != "" {
		cmd = append(cmd, opts.TestPath)
	}
	if opts.TestNamePattern != "" {
		cmd = append(cmd, "-t", opts.TestNamePattern)
	}
	if opts.Coverage {
		cmd = append(cmd, "--coverage")
	}

	// Watch mode is refused before we get here; always force a single
	// run and verbose output for useful failure messages.
	cmd = append(cmd, "--watchAll=false", "--verbose")

	return cmd
}

// Run executes Jest with the given options. A failing suite is not an
// error: the Result reports Passed=false and carries the output. The
// returned error covers watch-mode rejection, timeouts, and processes
// that could not run at all while producing no output.
func (r *Runner) Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Watch {
		return Result{}, ErrWatchMode
	}

	command := buildCommand(opts)

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	output, err := r.cmd.Run(runCtx, r.dir, command)
	duration := time.Since(start)

	result := Result{
		Command:  command,
		Output:   strings.TrimSpace(output),
		Passed:   err == nil,
		Duration: duration,
	}

	if runCtx.Err() == context.DeadlineExceeded {
		return result, fmt.Errorf("tests timed out after %v", r.timeout)
	}
	if err != nil && result.Output == "" {
		// Nothing ran; surface the launch failure instead of a bare
		// "tests failed" result.
		return result, fmt.Errorf("running tests: %w", err)
	}

	return result, nil
}
