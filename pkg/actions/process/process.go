// Package processaction provides a subprocess execution action.
package processaction

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	barleyerrors "github.com/panthios/barley/pkg/errors"
	"github.com/panthios/barley/pkg/runtime"
)

// Command runs a subprocess. Arguments are inputs, so any of them can be
// the string output of another node.
type Command struct {
	name    string
	args    []runtime.Input[string]
	workDir string
	env     map[string]string
}

// New creates a Command action with literal arguments.
func New(name string, args ...string) *Command {
	inputs := make([]runtime.Input[string], 0, len(args))
	for _, arg := range args {
		inputs = append(inputs, runtime.NewStaticInput(arg))
	}
	return &Command{name: name, args: inputs}
}

// NewWithInputs creates a Command action from pre-built inputs.
func NewWithInputs(name string, args []runtime.Input[string]) *Command {
	return &Command{name: name, args: args}
}

// WithWorkDir sets the subprocess working directory.
func (a *Command) WithWorkDir(dir string) *Command {
	a.workDir = dir
	return a
}

// WithEnv adds an environment variable to the subprocess, on top of the
// parent environment.
func (a *Command) WithEnv(key, value string) *Command {
	if a.env == nil {
		a.env = make(map[string]string)
	}
	a.env[key] = value
	return a
}

var _ runtime.Action = (*Command)(nil)

// Probe implements runtime.Action.
func (a *Command) Probe(ctx context.Context, rt *runtime.Runtime) (runtime.Probe, error) {
	return runtime.Probe{NeedsRun: true, CanRollback: false}, nil
}

// Run implements runtime.Action.
func (a *Command) Run(ctx context.Context, rt *runtime.Runtime, op runtime.Operation) (*runtime.Output, error) {
	if op == runtime.OperationRollback {
		return nil, barleyerrors.ErrOperationNotSupported
	}

	args := make([]string, 0, len(a.args))
	for _, input := range a.args {
		arg, err := runtime.ResolveString(rt, input)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	cmd := exec.CommandContext(ctx, a.name, args...)
	if a.workDir != "" {
		cmd.Dir = a.workDir
	}
	if len(a.env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range a.env {
			cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
		}
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, barleyerrors.NewActionFailed(
			fmt.Sprintf("command %s failed: %v", a.name, err),
			stderr.String(),
		)
	}

	out := runtime.StringOutput(strings.TrimRight(stdout.String(), "\n"))
	return &out, nil
}

// DisplayName implements runtime.Action.
func (a *Command) DisplayName() string {
	return fmt.Sprintf("command: %s", a.name)
}
