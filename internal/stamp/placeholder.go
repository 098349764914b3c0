package stamp

import (
	"strings"

	"github.com/gorewood/commitstamp/internal/git"
)

// Placeholder tokens replaced in stamped files.
const (
	HashPlaceholder = "!!!COMMIT_HASH!!!"
	DatePlaceholder = "!!!COMMIT_DATE!!!"
)

// NotRepository is written for both hash and date when the repository root
// cannot be confirmed.
const NotRepository = "Not Git repository"

// Source supplies the placeholder values. A nil Commit means the repository
// root was not confirmed; Hash and Date then return NotRepository.
type Source struct {
	Commit *git.Commit
}

// FromCommit returns a Source backed by commit.
func FromCommit(commit git.Commit) Source {
	return Source{Commit: &commit}
}

// Known reports whether the source carries real commit information.
func (s Source) Known() bool {
	return s.Commit != nil
}

// Hash returns the value substituted for HashPlaceholder.
func (s Source) Hash() string {
	if s.Commit == nil {
		return NotRepository
	}
	return s.Commit.Hash
}

// Date returns the value substituted for DatePlaceholder.
func (s Source) Date() string {
	if s.Commit == nil {
		return NotRepository
	}
	return s.Commit.Date
}

// SplitLines splits content into lines that keep their "\n" terminator.
// A final line without a terminator is kept as is; empty content has no lines.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "")
}

// Substitute returns a copy of lines with every occurrence of both
// placeholders replaced by the source's hash and date.
func Substitute(lines []string, src Source) []string {
	replacer := strings.NewReplacer(
		HashPlaceholder, src.Hash(),
		DatePlaceholder, src.Date(),
	)

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = replacer.Replace(line)
	}
	return out
}

// Render substitutes placeholders across a whole document.
func Render(content string, src Source) string {
	return JoinLines(Substitute(SplitLines(content), src))
}
