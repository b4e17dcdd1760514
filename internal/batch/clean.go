// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pdiddy/bionic-md/pkg/types"
)

// CleanSummary holds the outcome of a clean run.
type CleanSummary struct {
	// Removed counts derivative files deleted.
	Removed int
}

// Clean walks cfg.Root and deletes every file carrying the derivative
// suffix. Originals are never touched. Finding nothing to delete is not
// an error; callers distinguish it by a zero count.
func Clean(cfg types.CleanConfig, w io.Writer) (CleanSummary, error) {
	var summary CleanSummary

	err := filepath.WalkDir(cfg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isDerivative(d.Name(), cfg.Suffix, cfg.Extension) {
			return nil
		}

		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing %s: %w", path, err)
		}

		fmt.Fprintf(w, "removed: %s\n", path)
		summary.Removed++
		return nil
	})
	return summary, err
}
