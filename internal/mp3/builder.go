package mp3

import (
	"bytes"
	"fmt"

	binutil "github.com/simonhull/id3edit/internal/binary"
	"github.com/simonhull/id3edit/internal/types"
)

// frame is a frame ready to be written. Its content is
// prefix + payload + suffix; the parts are kept apart so sizes can be
// validated before anything is copied.
type frame struct {
	id      string
	prefix  []byte
	payload []byte
	suffix  []byte
}

func (f frame) size() int {
	return len(f.prefix) + len(f.payload) + len(f.suffix)
}

// Build serializes tag into a complete ID3v2 tag (header and frames) for
// the tag's version.
//
// Frames are written in a fixed order: artist, title, album, lyrics,
// artwork. Empty fields are omitted. Text is written as ISO-8859-1.
// An empty tag yields nil, meaning there is nothing to write.
//
// Build fails with a *types.TagSizeOverflowError if a frame does not fit
// its version's size field or the total content exceeds 2^28-1 bytes.
func Build(tag *types.Tag) ([]byte, error) {
	l := layoutFor(tag.Version())

	frames, err := collectFrames(tag, l)
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, nil
	}

	contentSize, err := tagContentSize(l, frames)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(tagHeaderSize + contentSize)
	w := binutil.NewSafeWriter(&buf)

	if err := writeHeader(w, l.version, contentSize); err != nil {
		return nil, err
	}
	for _, f := range frames {
		if err := writeFrame(w, l, f); err != nil {
			return nil, err
		}
	}

	if w.Offset() != tagHeaderSize+contentSize {
		return nil, fmt.Errorf("wrote %d tag bytes, expected %d", w.Offset(), tagHeaderSize+contentSize)
	}

	return buf.Bytes(), nil
}

// collectFrames returns the frames for every populated field, in write order.
func collectFrames(tag *types.Tag, l *frameLayout) ([]frame, error) {
	var frames []frame

	for field, value := range tag.Text() {
		if field == types.FieldLyrics {
			frames = append(frames, frame{
				id:      l.text[field],
				prefix:  lyricsPrefix,
				payload: encodeLatin1(value),
			})
			continue
		}
		frames = append(frames, textFrame(l.text[field], encodeLatin1(value)))
	}

	if art, ok := tag.Artwork(); ok {
		format := art.Format
		if format == types.ArtworkUnknown {
			format = DetectImageFormat(art.Data)
		}
		prefix, err := l.artworkHeader(format)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame{
			id:      l.artwork,
			prefix:  prefix,
			payload: art.Data,
		})
	}

	return frames, nil
}

// textFrame builds [encoding][text][terminator] content. The encoding byte
// and terminator are only added when text does not already carry them.
func textFrame(id string, text []byte) frame {
	f := frame{id: id, payload: text}
	if len(text) == 0 || text[0] != encodingLatin1 {
		f.prefix = []byte{encodingLatin1}
	}
	if len(text) == 0 || text[len(text)-1] != 0x00 {
		f.suffix = []byte{0x00}
	}
	return f
}

// tagContentSize returns the size of all frames including their headers.
func tagContentSize(l *frameLayout, frames []frame) (int, error) {
	limit := l.maxFrameSize()
	total := 0
	for _, f := range frames {
		size := f.size()
		if size > limit {
			return 0, &types.TagSizeOverflowError{Frame: f.id, Size: size, Limit: limit}
		}
		total += l.headerSize + size
		if total > binutil.MaxSynchsafe {
			return 0, &types.TagSizeOverflowError{Size: total, Limit: binutil.MaxSynchsafe}
		}
	}
	return total, nil
}

func writeFrame(w *binutil.SafeWriter, l *frameLayout, f frame) error {
	if err := w.WriteString(f.id); err != nil {
		return err
	}
	if err := w.WriteUint(f.size(), l.sizeWidth); err != nil {
		return err
	}
	if l.version == types.TagV23 {
		// Frame flags
		if err := binutil.Write(w, uint16(0)); err != nil {
			return err
		}
	}
	for _, part := range [][]byte{f.prefix, f.payload, f.suffix} {
		if err := w.WriteBytes(part); err != nil {
			return err
		}
	}
	return nil
}
