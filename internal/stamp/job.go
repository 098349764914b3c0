package stamp

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gorewood/commitstamp/internal/output"
)

// Mode selects the write strategy.
type Mode int

const (
	// ModeGenerate renders a base template into a separate output file,
	// skipping the write when the output is already up to date.
	ModeGenerate Mode = iota
	// ModeModify rewrites the output file in place on every run.
	ModeModify
)

// String returns the mode name used in JSON output.
func (m Mode) String() string {
	switch m {
	case ModeGenerate:
		return "generate"
	case ModeModify:
		return "modify"
	default:
		return "unknown"
	}
}

// Job describes one stamping run.
type Job struct {
	Mode   Mode
	Repo   string // expected repository root
	Base   string // template, ModeGenerate only
	Output string // file written (ModeGenerate) or rewritten (ModeModify)
}

// requiredPaths lists the paths that must exist before anything runs, in
// the order they are reported.
func (j Job) requiredPaths() []string {
	if j.Mode == ModeModify {
		return []string{j.Repo, j.Output}
	}
	return []string{j.Repo, j.Base, filepath.Dir(j.Output)}
}

// Validate checks that every required path exists. The output of
// ModeGenerate need not exist, only its parent directory.
// The first missing path is returned as a user error naming it.
func (j Job) Validate() error {
	if j.Mode != ModeGenerate && j.Mode != ModeModify {
		return output.NewUserError("unknown stamp mode: " + j.Mode.String())
	}

	for _, path := range j.requiredPaths() {
		if path == "" {
			return output.NewUserError("path not found: (empty)")
		}
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return output.NewUserError("path not found: " + path)
			}
			return output.NewSystemErrorWithCause("cannot access path: "+err.Error(), err)
		}
	}
	return nil
}

// write applies the mode's write strategy.
func (j Job) write(src Source) (bool, error) {
	if j.Mode == ModeModify {
		if err := Modify(j.Output, src); err != nil {
			return false, err
		}
		return true, nil
	}
	return Generate(j.Base, j.Output, src)
}
