package drivekind

import (
	"context"

	"github.com/mthorley/drivekind/internal/run"
)

// fakeRunner serves canned command results to the platform branches.
type fakeRunner struct {
	stdout  string
	all     run.Result
	allErr  error
	lookErr error
}

func (f fakeRunner) Run(context.Context, string, ...string) string { return f.stdout }

func (f fakeRunner) RunAll(context.Context, string, ...string) (run.Result, error) {
	return f.all, f.allErr
}

func (f fakeRunner) LookPath(name string) (string, error) {
	if f.lookErr != nil {
		return "", f.lookErr
	}
	return "/usr/bin/" + name, nil
}
