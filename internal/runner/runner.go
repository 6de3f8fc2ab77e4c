// Package runner executes the external tools the pipeline is built from.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Options controls a single Run.
type Options struct {
	// Stdin is fed to the process when non-empty.
	Stdin string
	// Capture collects stdout and stderr. Without it both go to the null device.
	Capture bool
	// Check turns a non-zero exit status into a *CommandError.
	Check bool
}

// Result is what a finished process left behind.
type Result struct {
	Stdout   string
	ExitCode int
}

// Runner runs commands to completion. The zero value is ready to use.
type Runner struct{}

// New returns a Runner backed by os/exec.
func New() *Runner {
	return &Runner{}
}

// Available reports whether name resolves on the search path.
func (r *Runner) Available(name string) bool {
	return Available(name)
}

// Available reports whether name resolves on the search path.
func Available(name string) bool {
	_, err := lookPath(name)
	return err == nil
}

// LookPath resolves name on the search path.
func LookPath(name string) (string, error) {
	return lookPath(name)
}

// Run executes args[0] with args[1:] and blocks until it exits. Launch
// failures are always returned; exit failures only when opts.Check is set.
func (r *Runner) Run(ctx context.Context, args []string, opts Options) (Result, error) {
	if len(args) == 0 {
		return Result{}, &CommandError{ExitCode: -1, Err: errors.New("empty command")}
	}

	cmd := cmdExecer.CommandContext(ctx, args[0], args[1:]...)
	if opts.Stdin != "" {
		cmd.Stdin = strings.NewReader(opts.Stdin)
	}
	var stdout, stderr bytes.Buffer
	if opts.Capture {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	slog.Debug("running command", "args", args, "check", opts.Check)
	err := cmd.Run()
	res := Result{Stdout: stdout.String()}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if !opts.Check {
			slog.Debug("ignoring command exit status", "args", args, "code", exitErr.ExitCode())
			return res, nil
		}
		return res, &CommandError{
			Args:     args,
			ExitCode: exitErr.ExitCode(),
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
	}
	return res, &CommandError{Args: args, ExitCode: -1, Err: err}
}

// CommandError is returned when a process could not be started or exited
// non-zero while being checked.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("Command `%s` failed: %s", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
