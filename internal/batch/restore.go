// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/bionic-md/pkg/types"
)

// RestoreSummary holds the outcome of a restore run.
type RestoreSummary struct {
	// Restored counts originals written back from their backups.
	Restored int
}

// Restore walks cfg.Root for backup files (extension plus backup marker,
// e.g. ".md.bak"), writes each one's content back to the path without the
// marker, and deletes the backup. Finding nothing to restore is not an
// error; callers distinguish it by a zero count.
func Restore(cfg types.RestoreConfig, w io.Writer) (RestoreSummary, error) {
	marker := cfg.Extension + cfg.BackupExt
	var summary RestoreSummary

	err := filepath.WalkDir(cfg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), marker) {
			return nil
		}

		content, err := readDocument(path)
		if err != nil {
			return err
		}

		original := strings.TrimSuffix(path, cfg.BackupExt)
		if err := writeDocument(original, content); err != nil {
			return fmt.Errorf("restoring %s: %w", original, err)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing backup %s: %w", path, err)
		}

		fmt.Fprintf(w, "restored: %s\n", original)
		summary.Restored++
		return nil
	})
	return summary, err
}
