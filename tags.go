package id3edit

import (
	"github.com/simonhull/id3edit/internal/types"
)

// Tag is an alias to types.Tag.
// Re-exporting from internal/types to maintain public API.
type Tag = types.Tag

// TagVersion is an alias to types.TagVersion.
type TagVersion = types.TagVersion

// Supported tag versions.
const (
	TagV22 = types.TagV22
	TagV23 = types.TagV23
)

// Field is an alias to types.Field.
type Field = types.Field

// Text fields, in the order they are written.
const (
	FieldArtist = types.FieldArtist
	FieldTitle  = types.FieldTitle
	FieldAlbum  = types.FieldAlbum
	FieldLyrics = types.FieldLyrics
)

var fields = [...]Field{FieldArtist, FieldTitle, FieldAlbum, FieldLyrics}

// NewTag returns an empty tag for the given version.
func NewTag(version TagVersion) *Tag {
	return types.NewTag(version)
}
