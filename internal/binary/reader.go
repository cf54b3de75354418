// Package binary provides bounds-checked reading and position-tracking writing
// primitives for ID3 tag data, plus the integer encodings ID3v2 uses.
package binary

import "fmt"

// BoundsError is returned when a read would leave the underlying buffer.
type BoundsError struct {
	Name   string
	What   string
	Offset int
	Length int
	Size   int
}

func (e *BoundsError) Error() string {
	if e.Offset < 0 || e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (size: %d) while reading %s",
			e.Name, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed size %d while reading %s",
		e.Name, e.Length, e.Offset, e.Size, e.What)
}

// SafeReader wraps a byte slice with bounds checking and helpful error messages.
type SafeReader struct {
	buf  []byte
	name string
}

// NewSafeReader creates a new SafeReader over buf. name is used in error messages.
func NewSafeReader(buf []byte, name string) *SafeReader {
	return &SafeReader{
		buf:  buf,
		name: name,
	}
}

// Len returns the size of the underlying buffer.
func (sr *SafeReader) Len() int {
	return len(sr.buf)
}

// Slice returns the n bytes starting at off without copying.
// The returned slice must not be modified.
func (sr *SafeReader) Slice(off, n int, what string) ([]byte, error) {
	if off < 0 || n < 0 || off > len(sr.buf) || n > len(sr.buf)-off {
		return nil, &BoundsError{
			Name:   sr.name,
			What:   what,
			Offset: off,
			Length: n,
			Size:   len(sr.buf),
		}
	}
	return sr.buf[off : off+n : off+n], nil
}

// Uint reads a plain big-endian integer of width bytes at off.
func (sr *SafeReader) Uint(off, width int, what string) (int, error) {
	b, err := sr.Slice(off, width, what)
	if err != nil {
		return 0, err
	}
	return DecodeUint(b, width), nil
}

// Synchsafe reads a 4-byte synchsafe integer at off.
func (sr *SafeReader) Synchsafe(off int, what string) (int, error) {
	b, err := sr.Slice(off, 4, what)
	if err != nil {
		return 0, err
	}
	return DecodeSynchsafe(b), nil
}

// Reader provides sequential reading with automatic offset tracking.
type Reader struct {
	*SafeReader
	offset int
}

// NewReader creates a new Reader starting at the given offset.
func NewReader(sr *SafeReader, offset int) *Reader {
	return &Reader{
		SafeReader: sr,
		offset:     offset,
	}
}

// Next returns the next n bytes and advances the offset.
func (r *Reader) Next(n int, what string) ([]byte, error) {
	b, err := r.Slice(r.offset, n, what)
	if err != nil {
		return nil, err
	}
	r.offset += n
	return b, nil
}

// Byte reads a single byte and advances the offset.
func (r *Reader) Byte(what string) (byte, error) {
	b, err := r.Next(1, what)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Skip advances the offset by n bytes.
func (r *Reader) Skip(n int) {
	r.offset += n
}

// Offset returns the current offset.
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	if r.offset >= r.Len() {
		return 0
	}
	return r.Len() - r.offset
}

// Rest returns all unread bytes and moves the offset to the end.
func (r *Reader) Rest() []byte {
	if r.offset >= r.Len() {
		r.offset = r.Len()
		return nil
	}
	b := r.buf[r.offset:]
	r.offset = r.Len()
	return b
}
