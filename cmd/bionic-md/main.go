// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bionic-md CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bionic-md/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command: it walks a directory tree and runs one of
// the three modes over the Markdown files inside.
var rootCmd = &cobra.Command{
	Use:   "bionic-md <directory>",
	Short: "Convert Markdown files to bionic reading style",
	Long: `bionic-md rewrites Markdown files into a bionic reading variant: the
leading characters of each word are bolded to give the eye a fixation
anchor. It walks the given directory recursively and, by default, writes
a suffixed copy of every Markdown file next to its original.

Earlier runs are undone with --restore, which brings originals back from
their backup copies, and --clean, which deletes the generated suffixed
files. Processing with --in-place overwrites originals instead of writing
copies; add --backup to keep a restorable .bak of each one.`,
	Args: cobra.ExactArgs(1),
	RunE: runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bionic-md.yaml or ~/.config/bionic-md/bionic-md.yaml)")

	rootCmd.Flags().String("suffix", "-bionic", "suffix for derivative files")
	rootCmd.Flags().Bool("restore", false, "restore originals from backup files")
	rootCmd.Flags().Bool("clean", false, "remove generated files carrying the suffix")
	rootCmd.Flags().Bool("in-place", false, "overwrite originals instead of writing suffixed copies")
	rootCmd.Flags().Bool("backup", false, "keep a backup of each original when overwriting (implies --in-place)")
	rootCmd.MarkFlagsMutuallyExclusive("restore", "clean")

	// Suffix resolves flag > environment > config file > default.
	_ = viper.BindPFlag("suffix", rootCmd.Flags().Lookup("suffix"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bionic-md")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bionic-md"))
		}
	}

	viper.SetEnvPrefix("BIONIC_MD")
	viper.AutomaticEnv()

	viper.SetDefault("extension", ".md")
	viper.SetDefault("backup_ext", ".bak")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// namingConfig assembles the effective file naming from viper, which has
// already layered flags, environment, and any config file.
func namingConfig() types.NamingConfig {
	return types.NamingConfig{
		Extension: viper.GetString("extension"),
		Suffix:    viper.GetString("suffix"),
		BackupExt: viper.GetString("backup_ext"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
