package types

import (
	"iter"
	"slices"
	"strings"
)

// Field identifies one of the text fields a Tag carries.
// The constant order is the order frames are written in.
type Field int

const (
	FieldArtist Field = iota
	FieldTitle
	FieldAlbum
	FieldLyrics
	numFields
)

// String returns the lower-case field name.
func (f Field) String() string {
	switch f {
	case FieldArtist:
		return "artist"
	case FieldTitle:
		return "title"
	case FieldAlbum:
		return "album"
	case FieldLyrics:
		return "lyrics"
	default:
		return "unknown"
	}
}

// Tag is the in-memory representation of the fields read from or written to
// an ID3v2 tag.
//
// A Tag is fixed to the ID3 version it was parsed as (or will be written as).
// Text fields are empty when absent. All setters strip leading and trailing
// NUL bytes, so stored values never carry wire padding.
//
// A Tag is not safe for concurrent mutation.
type Tag struct {
	version TagVersion
	text    [numFields]string
	artwork *Artwork
}

// NewTag returns an empty Tag for the given version.
// An unknown version falls back to ID3v2.3.
func NewTag(version TagVersion) *Tag {
	if !version.Valid() {
		version = TagV23
	}
	return &Tag{version: version}
}

// Version returns the ID3 version of the tag.
func (t *Tag) Version() TagVersion {
	return t.version
}

func (t *Tag) Artist() string { return t.text[FieldArtist] }
func (t *Tag) Title() string  { return t.text[FieldTitle] }
func (t *Tag) Album() string  { return t.text[FieldAlbum] }
func (t *Tag) Lyrics() string { return t.text[FieldLyrics] }

func (t *Tag) SetArtist(s string) { t.Set(FieldArtist, s) }
func (t *Tag) SetTitle(s string)  { t.Set(FieldTitle, s) }
func (t *Tag) SetAlbum(s string)  { t.Set(FieldAlbum, s) }
func (t *Tag) SetLyrics(s string) { t.Set(FieldLyrics, s) }

// Get returns the value of a text field.
func (t *Tag) Get(f Field) string {
	if f < 0 || f >= numFields {
		return ""
	}
	return t.text[f]
}

// Set stores a text field after stripping boundary NUL padding.
// Setting an empty string removes the field.
func (t *Tag) Set(f Field, s string) {
	if f < 0 || f >= numFields {
		return
	}
	t.text[f] = TrimPadding(s)
}

// Text returns an iterator over the populated text fields in frame order:
// artist, title, album, lyrics.
//
// Example:
//
//	for field, value := range tag.Text() {
//		fmt.Printf("%s: %s\n", field, value)
//	}
func (t *Tag) Text() iter.Seq2[Field, string] {
	return func(yield func(Field, string) bool) {
		for f := FieldArtist; f < numFields; f++ {
			if t.text[f] == "" {
				continue
			}
			if !yield(f, t.text[f]) {
				return
			}
		}
	}
}

// Artwork returns the embedded artwork, if any.
func (t *Tag) Artwork() (Artwork, bool) {
	if t.artwork == nil {
		return Artwork{}, false
	}
	return *t.artwork, true
}

// SetArtwork stores already-encoded image bytes with their format.
// Passing empty data removes the artwork.
func (t *Tag) SetArtwork(data []byte, format ArtworkFormat) {
	if len(data) == 0 {
		t.artwork = nil
		return
	}
	t.artwork = &Artwork{
		Data:   slices.Clone(data),
		Format: format,
	}
}

// ClearArtwork removes the embedded artwork.
func (t *Tag) ClearArtwork() {
	t.artwork = nil
}

// IsEmpty reports whether no field is populated.
func (t *Tag) IsEmpty() bool {
	if t.artwork != nil {
		return false
	}
	for range t.Text() {
		return false
	}
	return true
}

// TrimPadding strips leading and trailing NUL bytes. It is idempotent.
func TrimPadding(s string) string {
	return strings.Trim(s, "\x00")
}
