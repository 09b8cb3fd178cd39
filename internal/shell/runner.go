package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/vvka-141/winentity/pkg/winentity"
)

// ExecRunner runs the metadata command as a child process.
type ExecRunner struct {
	// Executable is the shell binary. Empty means winentity.DefaultShell.
	Executable string

	// Timeout bounds one invocation. Zero means only ctx applies.
	Timeout time.Duration
}

// NewExecRunner returns a runner for executable with no timeout of its own.
func NewExecRunner(executable string) *ExecRunner {
	return &ExecRunner{Executable: executable}
}

var _ winentity.CommandRunner = (*ExecRunner)(nil)

func (r *ExecRunner) executable() string {
	if r.Executable == "" {
		return winentity.DefaultShell
	}
	return r.Executable
}

// Run executes the query and captures both streams.
// A missing executable is reported as ErrUnsupportedPlatform. A non-zero
// exit status is returned in CommandOutput.ExitCode, not as an error.
func (r *ExecRunner) Run(ctx context.Context, kind winentity.QueryKind, path string) (winentity.CommandOutput, error) {
	exe := r.executable()
	if _, err := exec.LookPath(exe); err != nil {
		return winentity.CommandOutput{}, fmt.Errorf("%w: %s not found: %w", winentity.ErrUnsupportedPlatform, exe, err)
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, exe, Args(kind, path)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return winentity.CommandOutput{}, fmt.Errorf("%s %s %q: %w", exe, kind, path, ctxErr)
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return winentity.CommandOutput{}, fmt.Errorf("start %s: %w", exe, err)
		}
		exitCode = exitErr.ExitCode()
	}

	out, err := DecodeOutput(stdout.Bytes())
	if err != nil {
		return winentity.CommandOutput{}, err
	}
	errOut, err := DecodeOutput(stderr.Bytes())
	if err != nil {
		return winentity.CommandOutput{}, err
	}

	return winentity.CommandOutput{Stdout: out, Stderr: errOut, ExitCode: exitCode}, nil
}
