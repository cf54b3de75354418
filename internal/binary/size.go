package binary

import "fmt"

// MaxSynchsafe is the largest value a 4-byte synchsafe integer can hold (2^28 - 1).
const MaxSynchsafe = 1<<28 - 1

// OverflowError is returned when a value does not fit the requested encoding.
type OverflowError struct {
	Value    int
	Limit    int
	Encoding string // "synchsafe", "uint24", "uint32"
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%d does not fit %s encoding (max %d)", e.Value, e.Encoding, e.Limit)
}

// EncodeSynchsafe encodes n as a 4-byte synchsafe integer.
// Each byte carries 7 bits of the value with bit 7 cleared, most significant group first.
func EncodeSynchsafe(n int) ([4]byte, error) {
	if n < 0 || n > MaxSynchsafe {
		return [4]byte{}, &OverflowError{Value: n, Limit: MaxSynchsafe, Encoding: "synchsafe"}
	}
	return [4]byte{
		byte(n>>21) & 0x7F,
		byte(n>>14) & 0x7F,
		byte(n>>7) & 0x7F,
		byte(n) & 0x7F,
	}, nil
}

// DecodeSynchsafe decodes a synchsafe integer (7 bits per byte).
// Returns 0 if b is not exactly 4 bytes long.
func DecodeSynchsafe(b []byte) int {
	if len(b) != 4 {
		return 0
	}
	return int(b[0]&0x7F)<<21 |
		int(b[1]&0x7F)<<14 |
		int(b[2]&0x7F)<<7 |
		int(b[3]&0x7F)
}

// MaxUint returns the largest value representable in width big-endian bytes.
func MaxUint(width int) int {
	return 1<<(8*width) - 1
}

// EncodeUint encodes n as a plain big-endian integer of width bytes (3 or 4).
func EncodeUint(n, width int) ([]byte, error) {
	if width != 3 && width != 4 {
		return nil, fmt.Errorf("unsupported integer width %d", width)
	}
	if n < 0 || n > MaxUint(width) {
		return nil, &OverflowError{Value: n, Limit: MaxUint(width), Encoding: fmt.Sprintf("uint%d", 8*width)}
	}

	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte(n)
		n >>= 8
	}
	return buf, nil
}

// DecodeUint decodes a plain big-endian integer from the first width bytes of b.
// A 3-byte value is masked to 24 bits. Returns 0 if b is shorter than width.
func DecodeUint(b []byte, width int) int {
	if len(b) < width {
		return 0
	}

	var n uint32
	for _, c := range b[:width] {
		n = n<<8 | uint32(c)
	}
	if width == 3 {
		n &= 0x00FFFFFF
	}
	return int(n)
}
