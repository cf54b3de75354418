package id3edit

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOpen_V22(t *testing.T) {
	path := writeTemp(t, "song.mp3", v22Tag())

	file, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if file.Path != path {
		t.Errorf("Path = %q, want %q", file.Path, path)
	}
	if file.TagVersion() != TagV22 {
		t.Errorf("TagVersion = %v, want ID3v2.2", file.TagVersion())
	}
	if !file.HasTag() {
		t.Error("expected HasTag")
	}
	if file.Album() != "Cloud Factory" {
		t.Errorf("Album = %q", file.Album())
	}
	if file.Artist() != "" || file.Title() != "" || file.Lyrics() != "" {
		t.Error("expected other fields empty")
	}
	if len(file.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", file.Warnings)
	}
}

func TestOpen_Extension(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr error
	}{
		{"lowercase", "a.mp3", nil},
		{"uppercase", "A.MP3", nil},
		{"mixed case", "a.Mp3", nil},
		{"flac", "a.flac", ErrNotMP3},
		{"no extension", "mp3", ErrNotMP3},
		{"mp3 in name", "a.mp3.txt", ErrNotMP3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, tt.file, testAudio)

			_, err := Open(path)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Open failed: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}

			var ufe *UnsupportedFormatError
			if !errors.As(err, &ufe) || ufe.Path != path {
				t.Errorf("expected *UnsupportedFormatError for %s, got %v", path, err)
			}
		})
	}
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.mp3"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestOpen_Empty(t *testing.T) {
	path := writeTemp(t, "empty.mp3", nil)

	_, err := Open(path)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestOpenBytes_NoData(t *testing.T) {
	for _, data := range [][]byte{nil, {}} {
		if _, err := OpenBytes(data); !errors.Is(err, ErrNoData) {
			t.Errorf("OpenBytes(%v) error = %v, want ErrNoData", data, err)
		}
	}
}

func TestOpenBytes_NoTag(t *testing.T) {
	file, err := OpenBytes(testAudio)
	if err != nil {
		t.Fatalf("OpenBytes failed: %v", err)
	}
	if file.HasTag() {
		t.Error("expected no tag")
	}
	if file.TagVersion() != TagV23 {
		t.Errorf("TagVersion = %v, want ID3v2.3", file.TagVersion())
	}
	if !file.Tag().IsEmpty() {
		t.Error("expected empty tag")
	}
	if file.Path != "" {
		t.Errorf("Path = %q, want empty", file.Path)
	}
}

func TestOpenBytes_TruncatedHeader(t *testing.T) {
	_, err := OpenBytes([]byte("ID3\x03\x00"), WithLenientParsing())
	if !errors.Is(err, ErrMalformedFrame) {
		t.Fatalf("expected ErrMalformedFrame, got %v", err)
	}
}

// malformedTag has a good TPE1 frame followed by a TIT2 frame whose size
// runs past the end of the tag.
func malformedTag() []byte {
	content := []byte{'T', 'P', 'E', '1', 0, 0, 0, 8, 0, 0, 0x00, 'J', 'i', 'n', 'j', 'e', 'r', 0x00}
	content = append(content, 'T', 'I', 'T', '2', 0, 0, 0x40, 0, 0, 0, 0x00, 'x')

	data := []byte{'I', 'D', '3', 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, byte(len(content))}
	data = append(data, content...)
	return append(data, testAudio...)
}

func TestOpenBytes_MalformedFrame(t *testing.T) {
	_, err := OpenBytes(malformedTag())
	if !errors.Is(err, ErrMalformedFrame) {
		t.Fatalf("expected ErrMalformedFrame, got %v", err)
	}

	var mf *MalformedFrameError
	if !errors.As(err, &mf) || mf.Frame != "TIT2" {
		t.Errorf("expected *MalformedFrameError for TIT2, got %v", err)
	}
}

func TestOpenBytes_LenientParsing(t *testing.T) {
	file, err := OpenBytes(malformedTag(), WithLenientParsing())
	if err != nil {
		t.Fatalf("OpenBytes failed: %v", err)
	}
	if file.Artist() != "Jinjer" {
		t.Errorf("Artist = %q, want fields before the bad frame kept", file.Artist())
	}
	if len(file.Warnings) != 1 || file.Warnings[0].Stage != "frame" {
		t.Errorf("expected one frame warning, got %v", file.Warnings)
	}

	// The audio boundary is still known, so the file can be rewritten.
	file.SetTitle("Fixed")
	out, err := file.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if !bytes.HasSuffix(out, testAudio) {
		t.Error("expected audio preserved")
	}
}

func TestOpenBytes_Overwrite(t *testing.T) {
	file, err := OpenBytes(v22Tag(), WithOverwrite())
	if err != nil {
		t.Fatalf("OpenBytes failed: %v", err)
	}
	if !file.Tag().IsEmpty() {
		t.Errorf("expected empty tag, got album %q", file.Album())
	}
	if file.TagVersion() != TagV23 {
		t.Errorf("TagVersion = %v, want ID3v2.3", file.TagVersion())
	}

	file.SetTitle("Only")
	out, err := file.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	again, err := OpenBytes(out)
	if err != nil {
		t.Fatalf("OpenBytes failed: %v", err)
	}
	if again.Album() != "" || again.Title() != "Only" {
		t.Errorf("got album %q title %q", again.Album(), again.Title())
	}
	if !bytes.HasSuffix(out, testAudio) || bytes.Contains(out, []byte("Cloud Factory")) {
		t.Error("expected old tag replaced and audio preserved")
	}
}

func TestOpenBytes_StrictParsing(t *testing.T) {
	// Neither a tag nor a frame sync: a warning, fatal in strict mode.
	data := []byte("not audio at all")

	file, err := OpenBytes(data)
	if err != nil {
		t.Fatalf("OpenBytes failed: %v", err)
	}
	if len(file.Warnings) != 1 {
		t.Errorf("expected one warning, got %v", file.Warnings)
	}

	if _, err := OpenBytes(data, WithStrictParsing()); err == nil {
		t.Error("expected strict parsing to fail")
	}

	file, err = OpenBytes(data, WithStrictParsing(), WithIgnoreWarnings())
	if err != nil {
		t.Fatalf("expected ignored warnings to pass strict parsing, got %v", err)
	}
	if len(file.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", file.Warnings)
	}
}

func TestOpenBytes_MaxArtworkSize(t *testing.T) {
	src, err := OpenBytes(testAudio)
	if err != nil {
		t.Fatal(err)
	}
	if err := src.SetArtwork(testPNG, ArtworkPNG); err != nil {
		t.Fatal(err)
	}
	data, err := src.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	file, err := OpenBytes(data, WithMaxArtworkSize(len(testPNG)-1))
	if err != nil {
		t.Fatalf("OpenBytes failed: %v", err)
	}
	if _, ok := file.Artwork(); ok {
		t.Error("expected artwork to be skipped")
	}
	if len(file.Warnings) != 1 || file.Warnings[0].Stage != "artwork" {
		t.Errorf("expected an artwork warning, got %v", file.Warnings)
	}

	file, err = OpenBytes(data, WithMaxArtworkSize(len(testPNG)))
	if err != nil {
		t.Fatalf("OpenBytes failed: %v", err)
	}
	if _, ok := file.Artwork(); !ok {
		t.Error("expected artwork within the limit")
	}
}

func TestFile_Setters(t *testing.T) {
	file, err := OpenBytes(testAudio)
	if err != nil {
		t.Fatal(err)
	}

	file.SetArtist("\x00Jinjer\x00")
	file.SetTitle("Pisces")
	file.SetAlbum("King of Everything")
	file.SetLyrics("\x00\x00la la")

	got := map[Field]string{}
	for field, value := range file.Tag().Text() {
		got[field] = value
	}
	want := map[Field]string{
		FieldArtist: "Jinjer",
		FieldTitle:  "Pisces",
		FieldAlbum:  "King of Everything",
		FieldLyrics: "la la",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}

	file.SetTitle("")
	if file.Title() != "" {
		t.Error("expected title removed")
	}
}

func TestFile_LossyFields(t *testing.T) {
	file, err := OpenBytes(testAudio)
	if err != nil {
		t.Fatal(err)
	}

	if lossy := file.LossyFields(); len(lossy) != 0 {
		t.Errorf("empty tag: LossyFields = %v", lossy)
	}

	file.SetArtist("日本")
	file.SetTitle("Björk")
	file.SetLyrics("ω")

	want := []Field{FieldArtist, FieldLyrics}
	if diff := cmp.Diff(want, file.LossyFields()); diff != "" {
		t.Errorf("LossyFields mismatch (-want +got):\n%s", diff)
	}
}

func TestFile_SetArtwork(t *testing.T) {
	file, err := OpenBytes(testAudio)
	if err != nil {
		t.Fatal(err)
	}

	if err := file.SetArtwork(testJPEG, ArtworkUnknown); err != nil {
		t.Fatalf("SetArtwork failed: %v", err)
	}
	art, ok := file.Artwork()
	if !ok || art.Format != ArtworkJPEG || !bytes.Equal(art.Data, testJPEG) {
		t.Errorf("Artwork() = %v, %v", art, ok)
	}

	if err := file.SetArtwork([]byte("GIF89a......"), ArtworkUnknown); err == nil {
		t.Error("expected error for GIF data")
	}

	file.ClearArtwork()
	if _, ok := file.Artwork(); ok {
		t.Error("expected artwork cleared")
	}
}

func TestFile_Bytes_NoExistingTag(t *testing.T) {
	file, err := OpenBytes(testAudio)
	if err != nil {
		t.Fatal(err)
	}

	file.SetArtist("Jinjer")
	file.SetAlbum("Cloud Factory")

	out, err := file.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	if !bytes.HasPrefix(out, []byte("ID3\x03")) {
		t.Errorf("expected ID3v2.3 tag, got % x", out[:4])
	}
	if !bytes.HasSuffix(out, testAudio) {
		t.Error("expected original bytes after the tag")
	}

	again, err := OpenBytes(out)
	if err != nil {
		t.Fatalf("OpenBytes failed: %v", err)
	}
	if len(out) != len(testAudio)+10+again.header.Size {
		t.Errorf("output is %d bytes, want tag + %d audio bytes", len(out), len(testAudio))
	}
	if again.Artist() != "Jinjer" || again.Album() != "Cloud Factory" {
		t.Errorf("got artist %q album %q", again.Artist(), again.Album())
	}
}

func TestFile_Bytes_EmptyTagIsNoOp(t *testing.T) {
	data := v22Tag()
	file, err := OpenBytes(data)
	if err != nil {
		t.Fatal(err)
	}

	file.SetAlbum("")
	out, err := file.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Error("expected original bytes unchanged")
	}
}

func TestFile_Bytes_KeepsVersion(t *testing.T) {
	file, err := OpenBytes(v22Tag())
	if err != nil {
		t.Fatal(err)
	}
	file.SetArtist("Jinjer")

	out, err := file.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	again, err := OpenBytes(out)
	if err != nil {
		t.Fatal(err)
	}
	if again.TagVersion() != TagV22 {
		t.Errorf("TagVersion = %v, want ID3v2.2", again.TagVersion())
	}
	if again.Artist() != "Jinjer" || again.Album() != "Cloud Factory" {
		t.Errorf("got artist %q album %q", again.Artist(), again.Album())
	}
}

func TestFile_Bytes_Overflow(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates a 16MB artwork")
	}

	file, err := OpenBytes(v22Tag())
	if err != nil {
		t.Fatal(err)
	}
	art := make([]byte, 1<<24)
	copy(art, testJPEG)
	if err := file.SetArtwork(art, ArtworkJPEG); err != nil {
		t.Fatal(err)
	}

	if _, err := file.Bytes(); !errors.Is(err, ErrTagSizeOverflow) {
		t.Fatalf("expected ErrTagSizeOverflow, got %v", err)
	}
}
