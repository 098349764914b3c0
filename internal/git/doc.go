// Package git reads repository state for commitstamp by shelling out to the
// git executable.
//
// Callers depend on the Service interface, which exposes exactly the two
// questions the stamping programs ask:
//
//	svc := git.NewExec("git", 30*time.Second)
//	if svc.IsRepoRoot(ctx, repoPath) {
//	    commit, err := svc.LatestCommit(ctx, repoPath)
//	}
//
// IsRepoRoot never fails: any git failure means "no". LatestCommit returns
// an *output.ExitError with ExitSystemError, carrying git's stderr, when a
// query fails, when the binary is missing, or when the timeout expires.
//
// Output of every git invocation is trimmed of surrounding whitespace, so a
// stamped hash or date never carries a trailing newline.
package git
