// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pdiddy/bionic-md/internal/bionic"
	"github.com/pdiddy/bionic-md/pkg/types"
)

// ProcessSummary holds the outcome of a process run.
type ProcessSummary struct {
	// Processed counts files transformed and written.
	Processed int

	// Skipped counts files excluded for already carrying the derivative
	// suffix.
	Skipped int
}

// Total returns the number of matching Markdown files visited.
func (s ProcessSummary) Total() int {
	return s.Processed + s.Skipped
}

// Process walks cfg.Root and transforms every Markdown file, writing each
// result according to cfg.Strategy: a suffixed derivative next to the
// original, or an in-place overwrite with an optional backup copy first.
// Files already carrying the derivative suffix are skipped so earlier
// output is never fed back through the transform. Per-file progress lines
// go to w.
func Process(cfg types.ProcessConfig, w io.Writer) (ProcessSummary, error) {
	var summary ProcessSummary

	err := filepath.WalkDir(cfg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), cfg.Extension) {
			return nil
		}
		if isDerivative(d.Name(), cfg.Suffix, cfg.Extension) {
			summary.Skipped++
			return nil
		}

		fmt.Fprintf(w, "processing: %s\n", path)

		original, err := readDocument(path)
		if err != nil {
			return err
		}
		transformed := bionic.Document(original)

		if cfg.Strategy == types.OutputInPlace {
			if cfg.Backup {
				bak := path + cfg.BackupExt
				if err := writeDocument(bak, original); err != nil {
					return fmt.Errorf("writing backup %s: %w", bak, err)
				}
			}
			if err := writeDocument(path, transformed); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Fprintf(w, "updated: %s\n", path)
		} else {
			out := derivativePath(path, cfg.Suffix, cfg.Extension)
			if err := writeDocument(out, transformed); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(w, "created: %s\n", out)
		}

		summary.Processed++
		return nil
	})
	return summary, err
}
