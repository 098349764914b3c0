package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/gorewood/commitstamp/internal/output"
)

// DefaultBinary is the git executable looked up on PATH.
const DefaultBinary = "git"

// Exec runs git as a subprocess. It implements Service.
type Exec struct {
	// Binary is the git executable. Empty means DefaultBinary.
	Binary string
	// Timeout bounds each git invocation. Zero means no timeout.
	Timeout time.Duration
}

// NewExec creates an Exec for the given binary and per-call timeout.
func NewExec(binary string, timeout time.Duration) *Exec {
	return &Exec{Binary: binary, Timeout: timeout}
}

// Run executes git in dir with the given arguments and returns trimmed stdout.
// An empty dir runs in the process's working directory.
// Returns an *output.ExitError on failure.
func (e *Exec) Run(ctx context.Context, dir string, args ...string) (string, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, e.binary(), args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewSystemErrorWithCause("git not found: ensure "+e.binary()+" is installed and in PATH", err)
		}

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", output.NewSystemError("git "+args[0]+" timed out after "+e.Timeout.String())
		}

		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause("git command failed: "+errMsg, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// RepoRoot returns the top-level directory of the repository containing the
// process's working directory.
func (e *Exec) RepoRoot(ctx context.Context) (string, error) {
	root, err := e.Run(ctx, "", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", output.NewSystemErrorWithCause("not in a git repository", err)
	}
	return root, nil
}

// IsRepoRoot reports whether path is exactly the top-level directory of the
// repository containing the working directory. Any git failure yields false.
func (e *Exec) IsRepoRoot(ctx context.Context, path string) bool {
	root, err := e.RepoRoot(ctx)
	if err != nil {
		return false
	}
	return root == path
}

func (e *Exec) binary() string {
	if e.Binary == "" {
		return DefaultBinary
	}
	return e.Binary
}
