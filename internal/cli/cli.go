// Package cli builds the cobra commands shared by the gen-version-header and
// modify-commit-info programs. The programs differ only in their positional
// arguments and in the stamp.Mode they run.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/commitstamp/internal/output"
	"github.com/gorewood/commitstamp/internal/stamp"
)

// Program names, as installed.
const (
	GenerateProgram = "gen-version-header"
	ModifyProgram   = "modify-commit-info"
)

// BuildInfo is set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// String returns the full version string including commit and date.
func (b BuildInfo) String() string {
	if b.Commit == "none" && b.Date == "unknown" {
		return b.Version
	}
	shortCommit := b.Commit
	if len(shortCommit) > 7 {
		shortCommit = shortCommit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", b.Version, shortCommit, b.Date)
}

// Execute runs cmd through fang and returns the process exit code.
func Execute(ctx context.Context, cmd *cobra.Command, info BuildInfo) int {
	err := fang.Execute(ctx, cmd, fang.WithVersion(info.String()))
	return output.GetExitCode(err)
}

// NewGenerateCmd creates the root command of the gen-version-header program.
func NewGenerateCmd(info BuildInfo) *cobra.Command {
	cmd := newStampCmd(stamp.ModeGenerate, info)
	cmd.Use = GenerateProgram + " <repo_path> <base> <output>"
	cmd.Short = "Render a template with the latest commit hash and date"
	cmd.Long = `Render a template with the latest Git commit hash and commit date.

Every occurrence of !!!COMMIT_HASH!!! and !!!COMMIT_DATE!!! in <base> is
replaced and the result is written to <output>. When <output> already holds
exactly that content it is left untouched, so build systems do not rebuild.

<repo_path> must be the top-level directory of the repository containing the
current directory. If it is not, "Not Git repository" is written for both
values and the program exits with code 1.

Examples:
  gen-version-header "$PWD" include/version.h.in build/version.h
  gen-version-header --json "$PWD" version.h.in version.h`
	cmd.Args = cobra.ExactArgs(3)
	return cmd
}

// NewModifyCmd creates the root command of the modify-commit-info program.
func NewModifyCmd(info BuildInfo) *cobra.Command {
	cmd := newStampCmd(stamp.ModeModify, info)
	cmd.Use = ModifyProgram + " <repo_path> <output>"
	cmd.Short = "Write the latest commit hash and date into a file in place"
	cmd.Long = `Write the latest Git commit hash and commit date into a file in place.

Every occurrence of !!!COMMIT_HASH!!! and !!!COMMIT_DATE!!! in <output> is
replaced and the file is rewritten, even when nothing changed.

<repo_path> must be the top-level directory of the repository containing the
current directory. If it is not, "Not Git repository" is written for both
values and the program exits with code 1.

Examples:
  modify-commit-info "$PWD" dist/version.h
  modify-commit-info --git-timeout 5s "$PWD" dist/version.h`
	cmd.Args = cobra.ExactArgs(2)
	return cmd
}

// newStampCmd creates the command skeleton shared by both programs.
func newStampCmd(mode stamp.Mode, info BuildInfo) *cobra.Command {
	flags := &stampFlags{}
	cmd := &cobra.Command{
		Version:       info.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStamp(cmd, jobFromArgs(mode, args), flags)
		},
	}
	flags.register(cmd)

	lipgloss.SetHasDarkBackground(true)

	return cmd
}

// jobFromArgs maps positional arguments onto a stamp.Job.
// Argument counts are enforced by cobra before this runs.
func jobFromArgs(mode stamp.Mode, args []string) stamp.Job {
	if mode == stamp.ModeModify {
		return stamp.Job{Mode: mode, Repo: args[0], Output: args[1]}
	}
	return stamp.Job{Mode: mode, Repo: args[0], Base: args[1], Output: args[2]}
}
