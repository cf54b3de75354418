package types

import "fmt"

// ArtworkFormat is the encoding of embedded artwork.
type ArtworkFormat int

const (
	ArtworkUnknown ArtworkFormat = iota
	ArtworkPNG
	ArtworkJPEG
)

// MIMEType returns the MIME type written in ID3v2.3 APIC frames.
func (f ArtworkFormat) MIMEType() string {
	switch f {
	case ArtworkPNG:
		return "image/png"
	case ArtworkJPEG:
		return "image/jpeg"
	default:
		return ""
	}
}

// String returns a short format name.
func (f ArtworkFormat) String() string {
	switch f {
	case ArtworkPNG:
		return "PNG"
	case ArtworkJPEG:
		return "JPEG"
	default:
		return "Unknown"
	}
}

// Artwork is embedded cover art: already-encoded image bytes plus their format.
type Artwork struct {
	// Image binary data
	Data []byte

	// PNG or JPEG
	Format ArtworkFormat
}

// String returns a human-readable description of the artwork.
//
// Example output: "JPEG 1200x1200, 245KB"
func (a Artwork) String() string {
	width, height := a.Dimensions()
	if width > 0 && height > 0 {
		return fmt.Sprintf("%s %dx%d, %s", a.Format, width, height, formatSize(len(a.Data)))
	}
	return fmt.Sprintf("%s, %s", a.Format, formatSize(len(a.Data)))
}

// Dimensions returns the pixel size read from the image header, or 0, 0
// if it cannot be determined.
func (a Artwork) Dimensions() (width, height int) {
	switch a.Format {
	case ArtworkJPEG:
		return jpegDimensions(a.Data)
	case ArtworkPNG:
		return pngDimensions(a.Data)
	default:
		return 0, 0
	}
}

// formatSize formats byte size in human-readable form.
func formatSize(bytes int) string {
	const (
		KB = 1024
		MB = 1024 * KB
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%dKB", bytes/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// jpegDimensions scans for a baseline, extended or progressive SOF marker.
// SOF layout: FF Cn [2 length] [1 precision] [2 height] [2 width]
func jpegDimensions(data []byte) (int, int) {
	for i := 0; i+9 <= len(data); i++ {
		if data[i] != 0xFF {
			continue
		}

		marker := data[i+1]
		if marker == 0xC0 || marker == 0xC1 || marker == 0xC2 {
			height := int(data[i+5])<<8 | int(data[i+6])
			width := int(data[i+7])<<8 | int(data[i+8])
			return width, height
		}
	}
	return 0, 0
}

// pngDimensions reads the IHDR chunk that follows the 8-byte signature:
// [4 len] [4 "IHDR"] [4 width] [4 height]
func pngDimensions(data []byte) (int, int) {
	if len(data) < 24 {
		return 0, 0
	}

	pngSig := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	for i := range 8 {
		if data[i] != pngSig[i] {
			return 0, 0
		}
	}

	width := int(data[16])<<24 | int(data[17])<<16 | int(data[18])<<8 | int(data[19])
	height := int(data[20])<<24 | int(data[21])<<16 | int(data[22])<<8 | int(data[23])

	return width, height
}
