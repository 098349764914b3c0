package git

import (
	"context"

	"github.com/gorewood/commitstamp/internal/output"
)

// Commit identifies the most recent commit of a repository.
type Commit struct {
	Hash string // Full 40-character SHA (%H)
	Date string // Committer date, strict ISO-8601 with offset (%cI)
}

// Service is the narrow view of version control the stamping programs need.
type Service interface {
	// IsRepoRoot reports whether path is the repository's top-level directory.
	IsRepoRoot(ctx context.Context, path string) bool
	// LatestCommit returns the hash and committer date of HEAD in dir.
	LatestCommit(ctx context.Context, dir string) (Commit, error)
}

var _ Service = (*Exec)(nil)

const (
	hashFormat = "--pretty=format:%H"
	dateFormat = "--pretty=format:%cI"
)

// LatestCommit queries the hash and committer date of the latest commit,
// using dir as the working directory. The two values come from two separate
// git invocations.
func (e *Exec) LatestCommit(ctx context.Context, dir string) (Commit, error) {
	hash, err := e.Run(ctx, dir, "log", "-1", hashFormat)
	if err != nil {
		return Commit{}, output.NewSystemErrorWithCause("failed to read commit hash in "+dir+": "+err.Error(), err)
	}

	date, err := e.Run(ctx, dir, "log", "-1", dateFormat)
	if err != nil {
		return Commit{}, output.NewSystemErrorWithCause("failed to read commit date in "+dir+": "+err.Error(), err)
	}

	return Commit{Hash: hash, Date: date}, nil
}
