package id3edit

import (
	"github.com/gabriel-vasile/mimetype"

	"github.com/simonhull/id3edit/internal/types"
)

// Artwork is an alias to types.Artwork.
// Re-exporting from internal/types to maintain public API.
type Artwork = types.Artwork

// ArtworkFormat is an alias to types.ArtworkFormat.
type ArtworkFormat = types.ArtworkFormat

// Artwork formats that can be embedded.
const (
	ArtworkUnknown = types.ArtworkUnknown
	ArtworkPNG     = types.ArtworkPNG
	ArtworkJPEG    = types.ArtworkJPEG
)

// DetectArtworkFormat identifies PNG or JPEG image data by content.
// Any other content, including other image types, is ArtworkUnknown.
//
// Example:
//
//	data, _ := os.ReadFile("cover.jpg")
//	if err := file.SetArtwork(data, id3edit.DetectArtworkFormat(data)); err != nil {
//		return err
//	}
func DetectArtworkFormat(data []byte) ArtworkFormat {
	mt := mimetype.Detect(data)
	switch {
	case mt.Is("image/png"):
		return ArtworkPNG
	case mt.Is("image/jpeg"):
		return ArtworkJPEG
	default:
		return ArtworkUnknown
	}
}
