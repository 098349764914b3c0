package stamp

import (
	"errors"
	"os"
	"slices"

	"github.com/gorewood/commitstamp/internal/output"
)

// newFilePerm is used when Generate creates its output.
const newFilePerm = 0o644

// Generate renders base into outputPath. When outputPath already holds
// exactly the rendered lines the write is skipped and written is false.
func Generate(base, outputPath string, src Source) (written bool, err error) {
	data, err := os.ReadFile(base)
	if err != nil {
		return false, output.NewSystemErrorWithCause("failed to read base file: "+err.Error(), err)
	}
	lines := Substitute(SplitLines(string(data)), src)

	current, err := os.ReadFile(outputPath)
	switch {
	case err == nil:
		if slices.Equal(SplitLines(string(current)), lines) {
			return false, nil
		}
	case errors.Is(err, os.ErrNotExist):
		// created below
	default:
		return false, output.NewSystemErrorWithCause("failed to read output file: "+err.Error(), err)
	}

	if err := writeFile(outputPath, JoinLines(lines)); err != nil {
		return false, err
	}
	return true, nil
}

// Modify substitutes placeholders in path and overwrites it unconditionally.
func Modify(path string, src Source) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to read file: "+err.Error(), err)
	}
	return writeFile(path, Render(string(data), src))
}

// writeFile replaces path's content, keeping the permission bits of an
// existing file.
func writeFile(path, content string) error {
	perm := os.FileMode(newFilePerm)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return output.NewSystemErrorWithCause("failed to write file: "+err.Error(), err)
	}
	return nil
}
