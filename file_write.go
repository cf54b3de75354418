package id3edit

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/simonhull/id3edit/internal/mp3"
)

// SetPath sets the path Save writes to.
func (f *File) SetPath(path string) {
	f.Path = path
}

// Bytes returns the complete file contents with the current tag: a freshly
// built tag followed by the original audio.
//
// If every field is empty no tag is built and the original contents are
// returned unchanged, including any tag they started with.
//
// Bytes fails with a *TagSizeOverflowError if the tag is too large to encode.
func (f *File) Bytes() ([]byte, error) {
	tag, err := mp3.Build(f.tag)
	if err != nil {
		return nil, fmt.Errorf("build tag: %w", err)
	}
	out, err := mp3.Splice(f.data, tag, f.header)
	if err != nil {
		return nil, fmt.Errorf("splice tag: %w", err)
	}
	return out, nil
}

// Save writes the file back to its Path.
//
// This is an atomic operation: writes to a temporary file first, then renames
// to the original path. If any step fails, the original file remains unchanged.
//
// Options can be provided to customize save behavior:
//
//	err := file.Save(
//	    id3edit.WithBackup(".bak"),
//	    id3edit.WithValidation(),
//	)
//
// Returns ErrNoPath if the file has no path.
func (f *File) Save(opts ...SaveOption) error {
	return f.SaveAs(f.Path, opts...)
}

// SaveAs writes the file to a new location.
//
// This is an atomic operation: writes to a temporary file first, then renames
// to the output path. If any step fails, any partially written data is cleaned up.
// The File's Path is not changed.
func (f *File) SaveAs(outputPath string, opts ...SaveOption) error { //nolint:gocyclo // Atomic file operations require sequential steps
	if outputPath == "" {
		return ErrNoPath
	}

	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	out, err := f.Bytes()
	if err != nil {
		return err
	}

	// Existing output keeps its permissions and, optionally, its mod time
	existing, statErr := os.Stat(outputPath)
	mode := os.FileMode(0o644)
	if statErr == nil {
		mode = existing.Mode().Perm()
	}

	// Create temp file in same directory as output (for atomic rename)
	tempFile, err := os.CreateTemp(filepath.Dir(outputPath), ".id3edit-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	if _, err := tempFile.Write(out); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	if err := tempFile.Chmod(mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	// Sync temp file (fsync) to ensure data is on disk
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// Handle backup option (rename original to .bak before replace)
	if options.backupSuffix != "" && statErr == nil {
		if err := os.Rename(outputPath, outputPath+options.backupSuffix); err != nil {
			return fmt.Errorf("create backup: %w", err)
		}
	}

	// Atomic rename temp -> output
	if err := os.Rename(tempPath, outputPath); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}

	success = true

	if options.preserveModTime && statErr == nil {
		_ = os.Chtimes(outputPath, existing.ModTime(), existing.ModTime()) //nolint:errcheck // Non-fatal: file was written successfully
	}

	// The written contents are now the baseline for later saves
	header, err := mp3.ParseHeader(out)
	if err != nil {
		return fmt.Errorf("reparse header: %w", err)
	}
	f.data = out
	f.header = header

	if options.validate {
		if err := f.validateWrittenFile(outputPath); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	return nil
}

// validateWrittenFile re-reads the file and compares every field.
func (f *File) validateWrittenFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("re-read: %w", err)
	}

	written, err := openBytes(data, path, defaultOptions())
	if err != nil {
		return fmt.Errorf("re-parse: %w", err)
	}

	if f.tag.IsEmpty() {
		// Nothing was built; the original bytes were written back.
		return nil
	}

	if written.TagVersion() != f.TagVersion() {
		return fmt.Errorf("version mismatch: got %s, want %s", written.TagVersion(), f.TagVersion())
	}

	for _, field := range fields {
		if got, want := written.tag.Get(field), f.tag.Get(field); got != want {
			return fmt.Errorf("%s mismatch: got %q, want %q", field, got, want)
		}
	}

	want, wantOK := f.tag.Artwork()
	got, gotOK := written.tag.Artwork()
	if wantOK != gotOK || !bytes.Equal(want.Data, got.Data) {
		return fmt.Errorf("artwork mismatch: got %v, want %v", got, want)
	}

	return nil
}
