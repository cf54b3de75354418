package binary

import (
	"encoding/binary"
	"io"
)

// SafeWriter writes tag bytes to an io.Writer and tracks how many bytes
// have been written.
type SafeWriter struct {
	w      io.Writer
	offset int
}

// NewSafeWriter creates a new SafeWriter.
func NewSafeWriter(w io.Writer) *SafeWriter {
	return &SafeWriter{w: w}
}

// Offset returns the number of bytes written so far.
func (sw *SafeWriter) Offset() int {
	return sw.offset
}

// WriteBytes writes b unchanged.
func (sw *SafeWriter) WriteBytes(b []byte) error {
	n, err := sw.w.Write(b)
	sw.offset += n
	return err
}

// WriteString writes the bytes of s, e.g. a frame identifier.
func (sw *SafeWriter) WriteString(s string) error {
	return sw.WriteBytes([]byte(s))
}

// WriteUint writes n as a plain big-endian integer of width bytes (3 or 4),
// the encoding of ID3v2.2 and ID3v2.3 frame sizes.
func (sw *SafeWriter) WriteUint(n, width int) error {
	b, err := EncodeUint(n, width)
	if err != nil {
		return err
	}
	return sw.WriteBytes(b)
}

// WriteSynchsafe writes n as a 4-byte synchsafe integer, the encoding of
// the tag size in the tag header.
func (sw *SafeWriter) WriteSynchsafe(n int) error {
	b, err := EncodeSynchsafe(n)
	if err != nil {
		return err
	}
	return sw.WriteBytes(b[:])
}

// Write writes a fixed-width field in big-endian byte order, such as the
// version byte or the two flag bytes of a header.
func Write[T uint8 | uint16 | uint32](sw *SafeWriter, val T) error {
	var buf [4]byte
	var b []byte
	switch v := any(val).(type) {
	case uint8:
		b = append(buf[:0], v)
	case uint16:
		b = binary.BigEndian.AppendUint16(buf[:0], v)
	case uint32:
		b = binary.BigEndian.AppendUint32(buf[:0], v)
	}
	return sw.WriteBytes(b)
}
