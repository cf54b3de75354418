package id3edit

import (
	"github.com/simonhull/id3edit/internal/types"
)

// Sentinel errors for use with errors.Is.
var (
	ErrNotMP3          = types.ErrNotMP3
	ErrNoData          = types.ErrNoData
	ErrTagSizeOverflow = types.ErrTagSizeOverflow
	ErrMalformedFrame  = types.ErrMalformedFrame
	ErrNoPath          = types.ErrNoPath
)

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
// Re-exporting from internal/types to maintain public API.
type UnsupportedFormatError = types.UnsupportedFormatError

// MalformedFrameError is an alias to types.MalformedFrameError.
// Re-exporting from internal/types to maintain public API.
type MalformedFrameError = types.MalformedFrameError

// TagSizeOverflowError is an alias to types.TagSizeOverflowError.
// Re-exporting from internal/types to maintain public API.
type TagSizeOverflowError = types.TagSizeOverflowError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to maintain public API.
type Warning = types.Warning
