// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pdiddy/bionic-md/internal/batch"
	"github.com/pdiddy/bionic-md/pkg/types"
)

var (
	// successStyle marks summary lines for completed work.
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E"))

	// noticeStyle marks zero-result summaries; informational, not an error.
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EAB308"))
)

// runRoot dispatches the positional directory to one of the three modes.
// Cobra rejects --restore together with --clean before this runs.
func runRoot(cmd *cobra.Command, args []string) error {
	root := args[0]

	restore, _ := cmd.Flags().GetBool("restore")
	clean, _ := cmd.Flags().GetBool("clean")
	inPlace, _ := cmd.Flags().GetBool("in-place")
	backup, _ := cmd.Flags().GetBool("backup")

	naming := namingConfig()
	if naming.Suffix == "" && !restore {
		return fmt.Errorf("suffix must not be empty")
	}

	switch {
	case restore:
		return runRestore(types.RestoreConfig{NamingConfig: naming, Root: root})
	case clean:
		return runClean(types.CleanConfig{NamingConfig: naming, Root: root})
	default:
		strategy := types.OutputSuffixed
		if inPlace || backup {
			strategy = types.OutputInPlace
		}
		return runProcess(types.ProcessConfig{
			NamingConfig: naming,
			Root:         root,
			Strategy:     strategy,
			Backup:       backup,
		})
	}
}

func runProcess(cfg types.ProcessConfig) error {
	summary, err := batch.Process(cfg, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Println()
	if cfg.Strategy == types.OutputInPlace {
		fmt.Println(successStyle.Render(fmt.Sprintf(
			"Done: %d file(s) rewritten in place, %d skipped", summary.Processed, summary.Skipped)))
		return nil
	}
	fmt.Println(successStyle.Render(fmt.Sprintf(
		"Done: %d bionic file(s) created with suffix %q, %d skipped", summary.Processed, cfg.Suffix, summary.Skipped)))
	fmt.Println("Originals remain unchanged; open the suffixed copies for reading.")
	return nil
}

func runRestore(cfg types.RestoreConfig) error {
	summary, err := batch.Restore(cfg, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Println()
	if summary.Restored == 0 {
		fmt.Println(noticeStyle.Render("No backup files found to restore"))
		return nil
	}
	fmt.Println(successStyle.Render(fmt.Sprintf(
		"Restored %d original file(s) from backups", summary.Restored)))
	return nil
}

func runClean(cfg types.CleanConfig) error {
	summary, err := batch.Clean(cfg, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Println()
	if summary.Removed == 0 {
		fmt.Println(noticeStyle.Render(fmt.Sprintf(
			"No files with suffix %q found", cfg.Suffix)))
		return nil
	}
	fmt.Println(successStyle.Render(fmt.Sprintf(
		"Removed %d bionic file(s)", summary.Removed)))
	return nil
}
