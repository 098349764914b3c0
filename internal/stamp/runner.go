package stamp

import (
	"context"
	"errors"

	"github.com/gorewood/commitstamp/internal/git"
	"github.com/gorewood/commitstamp/internal/output"
)

// ErrNotRepoRoot is the cause of the error Run returns after writing
// fallback values.
var ErrNotRepoRoot = errors.New("not a git repository root")

// Result reports what a run did.
type Result struct {
	Mode     Mode
	Repo     string
	Output   string
	Hash     string
	Date     string
	Fallback bool // NotRepository was written
	Written  bool // false only when Generate found the output up to date
}

// Runner performs stamping runs against a git Service.
type Runner struct {
	Git git.Service
}

// NewRunner creates a Runner backed by svc.
func NewRunner(svc git.Service) *Runner {
	return &Runner{Git: svc}
}

// Run validates the job, resolves the commit, and writes the output.
//
// When job.Repo is not a repository root the fallback values are still
// written, and Run returns the Result together with a user error wrapping
// ErrNotRepoRoot. A git failure after the root check is a system error and
// nothing is written.
func (r *Runner) Run(ctx context.Context, job Job) (Result, error) {
	if err := job.Validate(); err != nil {
		return Result{}, err
	}

	src, err := r.resolve(ctx, job.Repo)
	if err != nil {
		return Result{}, err
	}

	written, err := job.write(src)
	result := Result{
		Mode:     job.Mode,
		Repo:     job.Repo,
		Output:   job.Output,
		Hash:     src.Hash(),
		Date:     src.Date(),
		Fallback: !src.Known(),
		Written:  written,
	}
	if err != nil {
		return result, err
	}

	if !src.Known() {
		return result, &output.ExitError{
			Code:    output.ExitUserError,
			Message: ErrNotRepoRoot.Error() + ": " + job.Repo,
			Cause:   ErrNotRepoRoot,
		}
	}
	return result, nil
}

// resolve returns the commit source for repo, or the fallback source when
// repo is not a repository root.
func (r *Runner) resolve(ctx context.Context, repo string) (Source, error) {
	if !r.Git.IsRepoRoot(ctx, repo) {
		return Source{}, nil
	}

	commit, err := r.Git.LatestCommit(ctx, repo)
	if err != nil {
		return Source{}, err
	}
	return FromCommit(commit), nil
}
