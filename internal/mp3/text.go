package mp3

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ID3v2 text encoding bytes.
const (
	encodingLatin1  = 0x00 // ISO-8859-1
	encodingUTF16   = 0x01 // UTF-16 with BOM
	encodingUTF16BE = 0x02 // ID3v2.4
	encodingUTF8    = 0x03 // ID3v2.4
)

// decodeText decodes frame text according to its encoding byte.
// ok is false for an unknown encoding, which is decoded as ISO-8859-1.
func decodeText(data []byte, enc byte) (s string, ok bool) {
	if len(data) == 0 {
		return "", true
	}

	ok = true
	var dec *encoding.Decoder
	switch enc {
	case encodingLatin1:
		dec = charmap.ISO8859_1.NewDecoder()
	case encodingUTF16:
		// BOM selects byte order; without one, assume big-endian
		dec = unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	case encodingUTF16BE:
		dec = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	case encodingUTF8:
		return string(data), true
	default:
		dec = charmap.ISO8859_1.NewDecoder()
		ok = false
	}

	out, err := dec.Bytes(data)
	if err != nil {
		return string(data), ok
	}
	return string(out), ok
}

// Latin1Encodable reports whether s can be written as ISO-8859-1 without
// substitution.
func Latin1Encodable(s string) bool {
	for _, r := range s {
		if _, ok := charmap.ISO8859_1.EncodeRune(r); !ok {
			return false
		}
	}
	return true
}

// encodeLatin1 encodes s as ISO-8859-1. Characters outside Latin-1 are
// replaced with the charmap substitution byte.
func encodeLatin1(s string) []byte {
	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return out
}

// findNullTerminator finds the null terminator based on encoding.
func findNullTerminator(data []byte, enc byte) int {
	switch enc {
	case encodingUTF16, encodingUTF16BE: // double-byte null
		for i := 0; i < len(data)-1; i += 2 {
			if data[i] == 0 && data[i+1] == 0 {
				return i
			}
		}
		return -1

	default:
		return bytes.IndexByte(data, 0)
	}
}

// terminatorSize returns the size of the null terminator for the encoding.
func terminatorSize(enc byte) int {
	switch enc {
	case encodingUTF16, encodingUTF16BE:
		return 2
	default:
		return 1
	}
}
