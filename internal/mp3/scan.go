package mp3

import (
	"fmt"

	binutil "github.com/simonhull/id3edit/internal/binary"
	"github.com/simonhull/id3edit/internal/types"
)

// Frame is a single frame located while walking a tag.
type Frame struct {
	ID     string
	Offset int    // Offset of the frame header from the start of the walked data
	Size   int    // Declared content size (excluding the frame header)
	Data   []byte // Frame content; must not be modified
}

// Result holds everything Scan learns about a buffer.
type Result struct {
	Tag      *types.Tag
	Header   Header
	Warnings []types.Warning
}

// Scan parses the ID3v2 tag at the start of data.
//
// Data without a tag yields an empty Tag for ID3v2.3. Unknown frames are
// skipped. A frame whose declared size runs past the end of the tag (or of
// data) stops the scan with a *types.MalformedFrameError; the returned
// Result still carries the header and the fields decoded before that frame.
func Scan(data []byte) (*Result, error) {
	header, err := ParseHeader(data)
	res := &Result{
		Tag:    types.NewTag(header.Version),
		Header: header,
	}
	if err != nil || !header.Present {
		return res, err
	}

	if header.Flags != 0 {
		res.Warnings = append(res.Warnings, types.Warning{
			Stage:   "header",
			Message: fmt.Sprintf("tag header flags 0x%02x ignored", header.Flags),
			Offset:  5,
		})
	}

	end := min(header.End(), len(data))
	s := &scanner{
		layout: layoutFor(header.Version),
		tag:    res.Tag,
	}
	err = walkFrames(data[tagHeaderSize:end], header.Size, tagHeaderSize, s.layout, s.frame)
	res.Warnings = append(res.Warnings, s.warnings...)
	return res, err
}

// ScanContent extracts fields from tag content (the bytes that follow the
// 10-byte tag header) laid out for the given version.
func ScanContent(content []byte, version types.TagVersion) (*types.Tag, []types.Warning, error) {
	s := &scanner{
		layout: layoutFor(version),
		tag:    types.NewTag(version),
	}
	err := walkFrames(content, len(content), 0, s.layout, s.frame)
	return s.tag, s.warnings, err
}

// Walk calls fn for every frame of the tag at the start of data, stopping
// at padding. Frame offsets are relative to the start of data.
// If fn returns an error, Walk stops and returns it.
func Walk(data []byte, fn func(Frame) error) (Header, error) {
	header, err := ParseHeader(data)
	if err != nil || !header.Present {
		return header, err
	}

	end := min(header.End(), len(data))
	return header, walkFrames(data[tagHeaderSize:end], header.Size, tagHeaderSize, layoutFor(header.Version), fn)
}

// walkFrames iterates over the frames in content. declared is the tag size
// from the header; content may be shorter if the input was truncated.
// base is added to offsets reported in frames and errors.
func walkFrames(content []byte, declared, base int, l *frameLayout, fn func(Frame) error) error {
	sr := binutil.NewSafeReader(content, "tag content")

	for pos := 0; pos < declared; {
		if isPadding(content[min(pos, len(content)):]) {
			if len(content) < declared {
				return &types.MalformedFrameError{
					Offset: base + pos,
					Reason: fmt.Sprintf("tag declares %d bytes but only %d are present", declared, len(content)),
				}
			}
			return nil
		}

		hdr, err := sr.Slice(pos, l.headerSize, "frame header")
		if err != nil {
			return &types.MalformedFrameError{
				Offset: base + pos,
				Reason: "frame header runs past end of tag",
			}
		}

		id := string(hdr[:l.idLen])
		size, err := sr.Uint(pos+l.idLen, l.sizeWidth, "frame size")
		if err != nil {
			return err
		}

		data, err := sr.Slice(pos+l.headerSize, size, "frame "+id)
		if err != nil {
			return &types.MalformedFrameError{
				Frame:  id,
				Offset: base + pos,
				Reason: fmt.Sprintf("declared size %d runs past end of tag", size),
			}
		}

		if err := fn(Frame{ID: id, Offset: base + pos, Size: size, Data: data}); err != nil {
			return err
		}

		pos += l.headerSize + size
	}

	return nil
}

// isPadding reports whether b starts with three zero bytes (or is shorter
// than three bytes and entirely zero), the marker for tag padding.
func isPadding(b []byte) bool {
	for i := 0; i < 3 && i < len(b); i++ {
		if b[i] != 0 {
			return false
		}
	}
	return true
}

// scanner extracts recognized frames into a Tag.
type scanner struct {
	layout   *frameLayout
	tag      *types.Tag
	warnings []types.Warning
}

func (s *scanner) warn(stage string, offset int, format string, args ...any) {
	s.warnings = append(s.warnings, types.Warning{
		Stage:   stage,
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
	})
}

func (s *scanner) frame(f Frame) error {
	kind, field := s.layout.classify(f.ID)
	switch kind {
	case kindText:
		s.text(f, field)
	case kindLyrics:
		s.lyrics(f)
	case kindArtwork:
		s.artwork(f)
	}
	return nil
}

// text handles [encoding][text] frames.
func (s *scanner) text(f Frame, field types.Field) {
	if len(f.Data) == 0 {
		return
	}

	enc := f.Data[0]
	text, ok := decodeText(f.Data[1:], enc)
	if !ok {
		s.warn("frame", f.Offset, "%s: unknown text encoding 0x%02x, read as ISO-8859-1", f.ID, enc)
	}
	s.tag.Set(field, text)
}

// lyrics handles [encoding][language(3)][content descriptor\0][lyrics] frames.
func (s *scanner) lyrics(f Frame) {
	if len(f.Data) < 4 {
		s.warn("frame", f.Offset, "%s: %d bytes is too short for encoding and language, lyrics left empty", f.ID, len(f.Data))
		return
	}

	enc := f.Data[0]
	var body []byte
	if end := findNullTerminator(f.Data[4:], enc); end >= 0 {
		body = f.Data[4+end+terminatorSize(enc):]
	} else {
		// no descriptor terminator: lyrics follow a one-byte descriptor
		s.warn("frame", f.Offset, "%s: content descriptor not null-terminated, lyrics read from byte 5", f.ID)
		if len(f.Data) >= 5 {
			body = f.Data[5:]
		}
	}

	text, ok := decodeText(body, enc)
	if !ok {
		s.warn("frame", f.Offset, "%s: unknown text encoding 0x%02x, read as ISO-8859-1", f.ID, enc)
	}
	s.tag.SetLyrics(text)
}

func (s *scanner) artwork(f Frame) {
	art, note, ok := parseArtwork(f.Data, s.layout)
	if note != "" {
		s.warn("artwork", f.Offset, "%s: %s", f.ID, note)
	}
	if ok {
		s.tag.SetArtwork(art.Data, art.Format)
	}
}
