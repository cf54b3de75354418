package mp3

import (
	"fmt"

	binutil "github.com/simonhull/id3edit/internal/binary"
	"github.com/simonhull/id3edit/internal/types"
)

// tagHeaderSize is the size of the ID3v2 tag header.
const tagHeaderSize = 10

// Header is the ID3v2 tag header found at the start of a file.
type Header struct {
	Version  types.TagVersion
	Revision byte
	Flags    byte
	Size     int  // Tag content size (excluding header), decoded from synchsafe
	Present  bool // False when the data does not start with "ID3"
}

// End returns the offset of the first byte after the tag, which is where
// the audio payload begins. It is 0 when no tag is present.
func (h Header) End() int {
	if !h.Present {
		return 0
	}
	return tagHeaderSize + h.Size
}

// HasTag reports whether data starts with an ID3v2 tag identifier.
func HasTag(data []byte) bool {
	return len(data) >= 3 && string(data[0:3]) == "ID3"
}

// ParseHeader parses the ID3v2 header at the start of data.
//
// When data does not start with "ID3" the returned header has Present set to
// false and Version set to ID3v2.3, the version new tags are written as.
// The major version byte selects ID3v2.2 or ID3v2.3; any other value is read
// as ID3v2.3.
func ParseHeader(data []byte) (Header, error) {
	if !HasTag(data) {
		return Header{Version: types.TagV23}, nil
	}

	sr := binutil.NewSafeReader(data, "ID3v2 tag")
	buf, err := sr.Slice(0, tagHeaderSize, "ID3v2 header")
	if err != nil {
		return Header{Version: types.TagV23, Present: true}, &types.MalformedFrameError{
			Offset: 0,
			Reason: fmt.Sprintf("truncated tag header: %d of %d bytes", len(data), tagHeaderSize),
		}
	}

	size, err := sr.Synchsafe(6, "tag size")
	if err != nil {
		return Header{Version: types.TagV23, Present: true}, err
	}

	version := types.TagVersion(buf[3])
	if !version.Valid() {
		version = types.TagV23
	}

	return Header{
		Version:  version,
		Revision: buf[4],
		Flags:    buf[5],
		Size:     size,
		Present:  true,
	}, nil
}

// writeHeader writes the 10-byte tag header for content of the given size:
// "ID3", major version, revision 0, flags 0, synchsafe size.
func writeHeader(w *binutil.SafeWriter, version types.TagVersion, contentSize int) error {
	if contentSize > binutil.MaxSynchsafe {
		return &types.TagSizeOverflowError{Size: contentSize, Limit: binutil.MaxSynchsafe}
	}
	if err := w.WriteString("ID3"); err != nil {
		return err
	}
	if err := binutil.Write(w, uint8(version)); err != nil {
		return err
	}
	if err := binutil.Write(w, uint16(0)); err != nil {
		return err
	}
	return w.WriteSynchsafe(contentSize)
}

// LooksLikeMP3 reports whether data starts with an ID3v2 tag or an MPEG
// audio frame sync (11 set bits).
func LooksLikeMP3(data []byte) bool {
	if HasTag(data) {
		return true
	}
	return len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0
}
