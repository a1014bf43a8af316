// Package run executes external commands quietly, capturing their
// output for parsing. Callers treat missing or failing tools as "no
// data", so Run swallows failures while RunAll reports the exit status
// and both streams.
package run

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Result is the structured outcome of a command.
type Result struct {
	Status int
	Stdout string
	Stderr string
}

// Runner executes external programs.
type Runner interface {
	// Run returns captured stdout with trailing line endings removed.
	// On any failure it returns the empty string.
	Run(ctx context.Context, name string, args ...string) string

	// RunAll runs the command to completion and reports exit status,
	// stdout, and stderr. A non-zero exit is not an error; the error is
	// reserved for commands that could not run at all.
	RunAll(ctx context.Context, name string, args ...string) (Result, error)

	// LookPath resolves a program name to an absolute path.
	LookPath(name string) (string, error)
}

// Default returns the os/exec-backed Runner.
func Default() Runner { return execRunner{} }

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) string {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(out), "\r\n")
}

func (execRunner) RunAll(ctx context.Context, name string, args ...string) (Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.Status = exitErr.ExitCode()
			return res, nil
		}
		res.Status = -1
		return res, err
	}

	return res, nil
}

func (execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
