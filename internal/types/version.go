package types

import "fmt"

// TagVersion is the ID3v2 major version of a tag.
type TagVersion byte

const (
	// TagV22 is ID3v2.2: 3-byte frame identifiers and 3-byte frame sizes.
	TagV22 TagVersion = 2
	// TagV23 is ID3v2.3: 4-byte frame identifiers, 4-byte frame sizes and 2 flag bytes.
	TagV23 TagVersion = 3
)

// Valid reports whether v is a version this package can read and write.
func (v TagVersion) Valid() bool {
	return v == TagV22 || v == TagV23
}

// String returns the version in "ID3v2.x" form.
func (v TagVersion) String() string {
	return fmt.Sprintf("ID3v2.%d", byte(v))
}
