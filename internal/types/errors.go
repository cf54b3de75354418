package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrNotMP3 is returned when the input is not an MP3 container.
	ErrNotMP3 = errors.New("not an MP3 file")

	// ErrNoData is returned when the input buffer is nil or empty.
	ErrNoData = errors.New("no data present")

	// ErrTagSizeOverflow is returned when serialized tag content exceeds
	// what the ID3v2 size fields can represent.
	ErrTagSizeOverflow = errors.New("tag size overflow")

	// ErrMalformedFrame is returned when a frame's declared size runs past
	// the end of the tag or a required sub-field is missing.
	ErrMalformedFrame = errors.New("malformed frame")

	// ErrNoPath is returned when saving a file that has no destination path.
	ErrNoPath = errors.New("no path set")
)

// UnsupportedFormatError is returned when the file is not an MP3.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// Is reports whether target is ErrNotMP3.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrNotMP3
}

// MalformedFrameError is returned when tag structure is invalid.
type MalformedFrameError struct {
	Frame  string // Frame identifier, empty for the tag header
	Reason string
	Offset int // Offset from the start of the input
}

func (e *MalformedFrameError) Error() string {
	if e.Frame == "" {
		return fmt.Sprintf("malformed tag at offset %d: %s", e.Offset, e.Reason)
	}
	return fmt.Sprintf("malformed frame %s at offset %d: %s", e.Frame, e.Offset, e.Reason)
}

// Is reports whether target is ErrMalformedFrame.
func (e *MalformedFrameError) Is(target error) bool {
	return target == ErrMalformedFrame
}

// TagSizeOverflowError is returned when a frame or the whole tag is too
// large for its size field.
type TagSizeOverflowError struct {
	Frame string // Frame identifier, empty for the tag header
	Size  int
	Limit int
}

func (e *TagSizeOverflowError) Error() string {
	if e.Frame == "" {
		return fmt.Sprintf("tag content of %d bytes exceeds limit of %d bytes", e.Size, e.Limit)
	}
	return fmt.Sprintf("frame %s content of %d bytes exceeds limit of %d bytes", e.Frame, e.Size, e.Limit)
}

// Is reports whether target is ErrTagSizeOverflow.
func (e *TagSizeOverflowError) Is(target error) bool {
	return target == ErrTagSizeOverflow
}

// Warning represents a non-fatal issue encountered during parsing.
//
// Warnings indicate problems that don't prevent field extraction but
// may indicate corrupted or unusual data. Examples include:
//   - An unknown text encoding byte
//   - An artwork frame without a PNG or JPEG image
//   - Artwork skipped because of a size limit
//   - A malformed frame tolerated in lenient mode
type Warning struct {
	// Stage where the warning occurred
	Stage string // "header", "frame", "artwork"

	// Warning message
	Message string

	// Offset where the issue occurred (0 if not applicable)
	Offset int
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
