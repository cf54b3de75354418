package id3edit

import (
	"os"
	"path/filepath"
	"testing"
)

// Frame sync followed by filler; stands in for MPEG audio.
var testAudio = []byte{0xFF, 0xFB, 0x90, 0x64, 0x00, 0x0F, 0xF0, 0x00, 0x00, 0x69, 0x00, 0x00}

var (
	testJPEG = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01, 0xFF, 0xD9}
	testPNG  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 'I', 'H', 'D', 'R'}
)

// v22Tag is an ID3v2.2 tag holding TAL "Cloud Factory", followed by audio.
func v22Tag() []byte {
	content := []byte{'T', 'A', 'L', 0x00, 0x00, 0x0F, 0x00}
	content = append(content, "Cloud Factory"...)
	content = append(content, 0x00)

	data := []byte{'I', 'D', '3', 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, byte(len(content))}
	data = append(data, content...)
	return append(data, testAudio...)
}

// writeTemp writes data to name inside a fresh temp dir and returns the path.
func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
