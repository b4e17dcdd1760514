package types

// NamingConfig holds the file naming conventions shared by every mode.
type NamingConfig struct {
	// Extension is the Markdown file extension to match (default ".md").
	// Matching is case-sensitive.
	Extension string `json:"extension" yaml:"extension"`

	// Suffix is inserted before the extension when naming derivative files
	// (default "-bionic", so "notes.md" produces "notes-bionic.md").
	Suffix string `json:"suffix" yaml:"suffix"`

	// BackupExt is appended to the full filename when backing up an
	// original before an in-place overwrite (default ".bak", so "notes.md"
	// is preserved as "notes.md.bak").
	BackupExt string `json:"backup_ext" yaml:"backup_ext"`
}

// OutputStrategy selects where process mode writes transformed content.
type OutputStrategy string

const (
	// OutputSuffixed writes each result to a new suffixed file next to the
	// original, leaving the original untouched.
	OutputSuffixed OutputStrategy = "suffixed"

	// OutputInPlace overwrites the original file with the result.
	OutputInPlace OutputStrategy = "in-place"
)

// ProcessConfig holds settings for the process mode.
type ProcessConfig struct {
	NamingConfig `yaml:",inline"`

	// Root is the directory tree to walk.
	Root string `json:"root" yaml:"root"`

	// Strategy selects suffixed-derivative or in-place output.
	Strategy OutputStrategy `json:"strategy" yaml:"strategy"`

	// Backup controls whether in-place processing preserves each original
	// as a BackupExt copy before overwriting. Ignored for suffixed output.
	Backup bool `json:"backup" yaml:"backup"`
}

// RestoreConfig holds settings for the restore mode.
type RestoreConfig struct {
	NamingConfig `yaml:",inline"`

	// Root is the directory tree to walk.
	Root string `json:"root" yaml:"root"`
}

// CleanConfig holds settings for the clean mode.
type CleanConfig struct {
	NamingConfig `yaml:",inline"`

	// Root is the directory tree to walk.
	Root string `json:"root" yaml:"root"`
}
