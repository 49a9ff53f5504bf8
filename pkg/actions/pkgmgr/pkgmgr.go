// Package pkgaction provides apt package-management actions.
package pkgaction

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	barleyerrors "github.com/panthios/barley/pkg/errors"
	"github.com/panthios/barley/pkg/runtime"
)

// AptUpdate refreshes the apt package index.
type AptUpdate struct{}

// NewAptUpdate creates an AptUpdate action.
func NewAptUpdate() *AptUpdate {
	return &AptUpdate{}
}

var _ runtime.Action = (*AptUpdate)(nil)

// Probe implements runtime.Action. The index is always considered stale.
func (a *AptUpdate) Probe(ctx context.Context, rt *runtime.Runtime) (runtime.Probe, error) {
	return runtime.Probe{NeedsRun: true, CanRollback: false}, nil
}

// Run implements runtime.Action.
func (a *AptUpdate) Run(ctx context.Context, rt *runtime.Runtime, op runtime.Operation) (*runtime.Output, error) {
	if op == runtime.OperationRollback {
		return nil, barleyerrors.ErrOperationNotSupported
	}

	if _, stderr, err := runCommand(ctx, "apt-get", "update"); err != nil {
		return nil, barleyerrors.NewActionFailed("`apt-get update` failed", stderr)
	}

	return nil, nil
}

// DisplayName implements runtime.Action.
func (a *AptUpdate) DisplayName() string {
	return "apt-get update"
}

// AptInstall installs apt packages. Package names are inputs, so they can
// come from other nodes' outputs. The probe consults dpkg, and the whole
// action is skipped only when every package is already installed.
type AptInstall struct {
	packages []runtime.Input[string]
}

// NewAptInstall creates an AptInstall for literal package names.
func NewAptInstall(packages ...string) *AptInstall {
	inputs := make([]runtime.Input[string], 0, len(packages))
	for _, name := range packages {
		inputs = append(inputs, runtime.NewStaticInput(name))
	}
	return &AptInstall{packages: inputs}
}

// NewAptInstallInputs creates an AptInstall from pre-built inputs.
func NewAptInstallInputs(packages []runtime.Input[string]) *AptInstall {
	return &AptInstall{packages: packages}
}

var _ runtime.Action = (*AptInstall)(nil)

func (a *AptInstall) packageNames(rt *runtime.Runtime) ([]string, error) {
	names := make([]string, 0, len(a.packages))
	for _, input := range a.packages {
		name, err := runtime.ResolveString(rt, input)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// Probe implements runtime.Action. It reads dpkg state but changes
// nothing.
func (a *AptInstall) Probe(ctx context.Context, rt *runtime.Runtime) (runtime.Probe, error) {
	names, err := a.packageNames(rt)
	if err != nil {
		return runtime.Probe{}, err
	}

	for _, name := range names {
		stdout, _, err := runCommand(ctx, "dpkg", "-s", name)
		if err != nil {
			return runtime.Probe{NeedsRun: true, CanRollback: false}, nil
		}
		if !strings.Contains(stdout, "Status: install ok installed") {
			return runtime.Probe{NeedsRun: true, CanRollback: false}, nil
		}
	}

	return runtime.Probe{NeedsRun: false, CanRollback: false}, nil
}

// Run implements runtime.Action.
func (a *AptInstall) Run(ctx context.Context, rt *runtime.Runtime, op runtime.Operation) (*runtime.Output, error) {
	if op == runtime.OperationRollback {
		return nil, barleyerrors.ErrOperationNotSupported
	}

	names, err := a.packageNames(rt)
	if err != nil {
		return nil, err
	}

	args := append([]string{"install", "-y"}, names...)
	if _, stderr, err := runCommand(ctx, "apt-get", args...); err != nil {
		return nil, barleyerrors.NewActionFailed(
			fmt.Sprintf("`apt-get install %s` failed", strings.Join(names, " ")),
			stderr,
		)
	}

	return nil, nil
}

// DisplayName implements runtime.Action.
func (a *AptInstall) DisplayName() string {
	return "apt-get install <packages>"
}

func runCommand(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
