package id3edit

// SaveOption configures Save and SaveAs.
//
// Example:
//
//	err := file.Save(
//	    id3edit.WithBackup(".bak"),
//	    id3edit.WithValidation(),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for saving files.
type saveOptions struct {
	backupSuffix    string // Suffix for backup file (e.g., ".bak")
	validate        bool   // Re-read after write to verify
	preserveModTime bool   // Keep original modification time
}

func defaultSaveOptions() *saveOptions {
	return &saveOptions{}
}

// WithBackup renames the existing output file to its name plus suffix
// before the new contents replace it. WithBackup(".bak") turns
// "song.mp3" into "song.mp3.bak". An existing backup is overwritten.
// Nothing is backed up when the output file does not exist yet.
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the written file and checks that every field,
// the artwork and the tag version came back unchanged.
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime restores the output file's previous modification
// time after writing.
//
// Example:
//
//	err := file.Save(id3edit.WithPreserveModTime())
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}
