package mp3

import (
	"fmt"

	binutil "github.com/simonhull/id3edit/internal/binary"
	"github.com/simonhull/id3edit/internal/types"
)

// pictureFrontCover is the APIC picture type written for ID3v2.3 artwork.
const pictureFrontCover = 0x03

// lyricsPrefix is the USLT/ULT content header written before the lyrics:
// ISO-8859-1 encoding, language "eng", empty content descriptor.
var lyricsPrefix = []byte{0x00, 'e', 'n', 'g', 0x00}

// frameLayout describes the version-dependent shape of frames.
// One layout is selected per tag and used for both reading and writing.
type frameLayout struct {
	version    types.TagVersion
	idLen      int // Frame identifier length
	sizeWidth  int // Width of the plain big-endian frame size
	headerSize int // Identifier + size + flags

	text    [4]string // Indexed by types.Field
	artwork string

	// artworkHeader returns the sub-fields written between the frame
	// header and the image bytes.
	artworkHeader func(types.ArtworkFormat) ([]byte, error)
}

var layoutV22 = &frameLayout{
	version:    types.TagV22,
	idLen:      3,
	sizeWidth:  3,
	headerSize: 6,
	text: [4]string{
		types.FieldArtist: "TP1",
		types.FieldTitle:  "TT2",
		types.FieldAlbum:  "TAL",
		types.FieldLyrics: "ULT",
	},
	artwork: "PIC",
	// [encoding][3-byte image format][picture type][description terminator]
	artworkHeader: func(f types.ArtworkFormat) ([]byte, error) {
		switch f {
		case types.ArtworkPNG:
			return []byte{0x00, 'P', 'N', 'G', 0x00, 0x00}, nil
		case types.ArtworkJPEG:
			return []byte{0x00, 'J', 'P', 'G', 0x00, 0x00}, nil
		default:
			return nil, fmt.Errorf("unsupported artwork format %v", f)
		}
	},
}

var layoutV23 = &frameLayout{
	version:    types.TagV23,
	idLen:      4,
	sizeWidth:  4,
	headerSize: 10,
	text: [4]string{
		types.FieldArtist: "TPE1",
		types.FieldTitle:  "TIT2",
		types.FieldAlbum:  "TALB",
		types.FieldLyrics: "USLT",
	},
	artwork: "APIC",
	// [encoding][MIME type\0][picture type][description terminator]
	artworkHeader: func(f types.ArtworkFormat) ([]byte, error) {
		mime := f.MIMEType()
		if mime == "" {
			return nil, fmt.Errorf("unsupported artwork format %v", f)
		}
		b := make([]byte, 0, len(mime)+4)
		b = append(b, 0x00)
		b = append(b, mime...)
		return append(b, 0x00, pictureFrontCover, 0x00), nil
	},
}

// layoutFor returns the frame layout for a version. Unknown versions use ID3v2.3.
func layoutFor(v types.TagVersion) *frameLayout {
	if v == types.TagV22 {
		return layoutV22
	}
	return layoutV23
}

// maxFrameSize is the largest content size the frame size field can hold.
func (l *frameLayout) maxFrameSize() int {
	return binutil.MaxUint(l.sizeWidth)
}

// frameKind classifies a frame identifier.
type frameKind int

const (
	kindUnknown frameKind = iota
	kindText
	kindLyrics
	kindArtwork
)

// classify maps a frame identifier to its kind and, for text frames, the field.
func (l *frameLayout) classify(id string) (frameKind, types.Field) {
	if id == l.artwork {
		return kindArtwork, 0
	}
	for f, fid := range l.text {
		if id != fid {
			continue
		}
		if types.Field(f) == types.FieldLyrics {
			return kindLyrics, types.FieldLyrics
		}
		return kindText, types.Field(f)
	}
	return kindUnknown, 0
}
