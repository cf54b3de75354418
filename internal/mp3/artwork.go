package mp3

import (
	"bytes"
	"fmt"

	binutil "github.com/simonhull/id3edit/internal/binary"
	"github.com/simonhull/id3edit/internal/types"
)

var (
	jpegMarker = []byte{0xFF, 0xD8, 0xFF, 0xE0}
	pngMarker  = []byte{0x89, 0x50, 0x4E, 0x47}
)

// DetectImageFormat detects PNG or JPEG from the leading magic bytes.
func DetectImageFormat(data []byte) types.ArtworkFormat {
	switch {
	case bytes.HasPrefix(data, pngMarker):
		return types.ArtworkPNG
	case bytes.HasPrefix(data, jpegMarker[:3]):
		return types.ArtworkJPEG
	default:
		return types.ArtworkUnknown
	}
}

// parseArtwork extracts the image from PIC (ID3v2.2) or APIC (ID3v2.3)
// frame content.
//
// The declared sub-fields are walked first:
//
//	v2.2: [encoding][3-byte format][picture type][description\0][image]
//	v2.3: [encoding][MIME type\0][picture type][description\0][image]
//
// If they are inconsistent, or the bytes after them are not a PNG or JPEG
// image, the content is scanned from its start for the first JPEG
// (FF D8 FF E0) or PNG (89 50 4E 47) marker instead. The image always runs
// to the end of the frame.
//
// ok is false when no image can be located; note explains why.
func parseArtwork(content []byte, l *frameLayout) (art types.Artwork, note string, ok bool) {
	declared, data, err := artworkSubfields(content, l)
	if err == nil {
		if format := DetectImageFormat(data); format != types.ArtworkUnknown {
			if declared != types.ArtworkUnknown && declared != format {
				note = fmt.Sprintf("declared %v artwork contains %v data", declared, format)
			}
			return types.Artwork{Data: data, Format: format}, note, true
		}
	}

	if i, format := sniffImage(content); format != types.ArtworkUnknown {
		return types.Artwork{Data: content[i:], Format: format}, "", true
	}

	if err != nil {
		return types.Artwork{}, fmt.Sprintf("no PNG or JPEG image found (%v)", err), false
	}
	return types.Artwork{}, "no PNG or JPEG image found", false
}

// artworkSubfields walks the declared sub-fields and returns the format
// they name and the bytes that follow them.
func artworkSubfields(content []byte, l *frameLayout) (types.ArtworkFormat, []byte, error) {
	r := binutil.NewReader(binutil.NewSafeReader(content, l.artwork), 0)

	enc, err := r.Byte("text encoding")
	if err != nil {
		return types.ArtworkUnknown, nil, err
	}

	var declared types.ArtworkFormat
	if l.version == types.TagV22 {
		code, err := r.Next(3, "image format")
		if err != nil {
			return types.ArtworkUnknown, nil, err
		}
		declared = formatFromCode(string(code))
	} else {
		rest := content[r.Offset():]
		end := bytes.IndexByte(rest, 0)
		if end < 0 {
			return types.ArtworkUnknown, nil, fmt.Errorf("MIME type not null-terminated")
		}
		declared = formatFromCode(string(rest[:end]))
		r.Skip(end + 1)
	}

	if _, err := r.Byte("picture type"); err != nil {
		return declared, nil, err
	}

	rest := content[r.Offset():]
	end := findNullTerminator(rest, enc)
	if end < 0 {
		return declared, nil, fmt.Errorf("description not null-terminated")
	}
	r.Skip(end + terminatorSize(enc))

	if r.Remaining() == 0 {
		return declared, nil, fmt.Errorf("no image data")
	}
	return declared, r.Rest(), nil
}

// sniffImage returns the position of the first JPEG or PNG marker in data.
func sniffImage(data []byte) (int, types.ArtworkFormat) {
	for i := 0; i+4 <= len(data); i++ {
		switch {
		case bytes.Equal(data[i:i+4], jpegMarker):
			return i, types.ArtworkJPEG
		case bytes.Equal(data[i:i+4], pngMarker):
			return i, types.ArtworkPNG
		}
	}
	return -1, types.ArtworkUnknown
}

// formatFromCode maps a v2.2 image format code or a v2.3 MIME type.
func formatFromCode(code string) types.ArtworkFormat {
	switch code {
	case "PNG", "png", "image/png":
		return types.ArtworkPNG
	case "JPG", "jpg", "image/jpeg", "image/jpg":
		return types.ArtworkJPEG
	default:
		return types.ArtworkUnknown
	}
}
