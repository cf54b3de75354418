package id3edit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/id3edit/internal/mp3"
	"github.com/simonhull/id3edit/internal/types"
)

// File is an MP3 held in memory together with its ID3v2 tag.
//
// Opening a file reads the whole file and parses the existing tag, if any.
// Field changes are made on the in-memory tag; nothing is written until
// Save, SaveAs or Bytes is called. The audio that follows the tag is never
// decoded or modified.
//
//	file, err := id3edit.Open("song.mp3")
//	if err != nil {
//		return err
//	}
//	file.SetArtist("Jinjer")
//	if err := file.Save(); err != nil {
//		return err
//	}
type File struct {
	// Path the file was opened from and is saved to. Empty for files
	// opened with OpenBytes until SetPath is called.
	Path string

	// Warnings encountered during parsing (non-fatal issues)
	Warnings []Warning

	tag    *types.Tag
	data   []byte     // Original file contents
	header mp3.Header // Tag found at the start of data
}

// Open reads an MP3 file and parses its ID3v2 tag.
//
// The path must have an .mp3 extension (case-insensitive); anything else
// fails with an *UnsupportedFormatError matching ErrNotMP3. An empty file
// fails with ErrNoData.
//
// A frame whose size runs past the end of the tag is a *MalformedFrameError
// unless WithLenientParsing is given.
//
// Example:
//
//	file, err := id3edit.Open("song.mp3", id3edit.WithLenientParsing())
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s - %s\n", file.Artist(), file.Title())
func Open(path string, opts ...Option) (*File, error) {
	if !strings.EqualFold(filepath.Ext(path), ".mp3") {
		return nil, &UnsupportedFormatError{
			Path:   path,
			Reason: fmt.Sprintf("extension %q is not .mp3", filepath.Ext(path)),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	f, err := openBytes(data, path, applyOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// OpenBytes parses the ID3v2 tag at the start of data.
//
// The returned File has no path; call SetPath before Save. data is
// retained and must not be modified while the File is in use.
func OpenBytes(data []byte, opts ...Option) (*File, error) {
	return openBytes(data, "", applyOptions(opts))
}

// OpenContext opens a file with context support for cancellation.
//
// The context is checked before the file is read; parsing itself is an
// in-memory transform with no blocking points.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

func openBytes(data []byte, path string, options *openOptions) (*File, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}

	// A truncated tag header is fatal even in lenient mode: the audio
	// boundary is unknown.
	header, err := mp3.ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("parse tag: %w", err)
	}

	f := &File{Path: path, data: data, header: header}

	if options.overwrite {
		// The old tag is still located so Save can drop it.
		f.tag = types.NewTag(types.TagV23)
	} else {
		res, err := mp3.Scan(data)
		if err != nil {
			if !options.lenientParsing || !errors.Is(err, ErrMalformedFrame) {
				return nil, fmt.Errorf("parse tag: %w", err)
			}
			var mf *MalformedFrameError
			offset := 0
			if errors.As(err, &mf) {
				offset = mf.Offset
			}
			res.Warnings = append(res.Warnings, Warning{
				Stage:   "frame",
				Message: err.Error(),
				Offset:  offset,
			})
		}
		f.tag = res.Tag
		f.Warnings = res.Warnings
	}

	if !mp3.LooksLikeMP3(data) {
		f.Warnings = append(f.Warnings, Warning{
			Stage:   "header",
			Message: "no ID3v2 tag or MPEG frame sync at start of data",
		})
	}

	if art, ok := f.tag.Artwork(); ok && options.maxArtworkSize > 0 && len(art.Data) > options.maxArtworkSize {
		f.tag.ClearArtwork()
		f.Warnings = append(f.Warnings, Warning{
			Stage:   "artwork",
			Message: fmt.Sprintf("artwork of %d bytes exceeds limit of %d bytes, skipped", len(art.Data), options.maxArtworkSize),
		})
	}

	if options.ignoreWarnings {
		f.Warnings = nil
	}

	if options.strictParsing && len(f.Warnings) > 0 {
		return nil, fmt.Errorf("strict parsing failed: %s", f.Warnings[0])
	}

	return f, nil
}

// OpenMany opens multiple MP3 files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails to open, the first error is returned and no files are returned.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	files, err := id3edit.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range files {
//		fmt.Printf("%s: %s - %s\n", f.Path, f.Artist(), f.Title())
//	}
func OpenMany(ctx context.Context, paths ...string) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			file, err := Open(path)
			if err != nil {
				return err
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Tag returns the in-memory tag. Changes made through it are saved.
func (f *File) Tag() *Tag {
	return f.tag
}

// TagVersion returns the version the tag was parsed as and will be written as.
func (f *File) TagVersion() TagVersion {
	return f.tag.Version()
}

// HasTag reports whether the original data started with an ID3v2 tag.
func (f *File) HasTag() bool {
	return f.header.Present
}

// Artist returns the artist, or "" if not set.
func (f *File) Artist() string { return f.tag.Artist() }

// Title returns the title, or "" if not set.
func (f *File) Title() string { return f.tag.Title() }

// Album returns the album, or "" if not set.
func (f *File) Album() string { return f.tag.Album() }

// Lyrics returns the lyrics, or "" if not set.
func (f *File) Lyrics() string { return f.tag.Lyrics() }

// SetArtist sets the artist. An empty string removes it.
func (f *File) SetArtist(s string) { f.tag.SetArtist(s) }

// SetTitle sets the title. An empty string removes it.
func (f *File) SetTitle(s string) { f.tag.SetTitle(s) }

// SetAlbum sets the album. An empty string removes it.
func (f *File) SetAlbum(s string) { f.tag.SetAlbum(s) }

// SetLyrics sets the lyrics. An empty string removes them.
func (f *File) SetLyrics(s string) { f.tag.SetLyrics(s) }

// Artwork returns the embedded cover art, if any.
func (f *File) Artwork() (Artwork, bool) {
	return f.tag.Artwork()
}

// SetArtwork sets the cover art from encoded PNG or JPEG bytes.
// ArtworkUnknown detects the format from data.
func (f *File) SetArtwork(data []byte, format ArtworkFormat) error {
	if format == ArtworkUnknown {
		format = DetectArtworkFormat(data)
	}
	if format != ArtworkPNG && format != ArtworkJPEG {
		return fmt.Errorf("unsupported artwork format: %s", format)
	}
	f.tag.SetArtwork(data, format)
	return nil
}

// ClearArtwork removes the cover art.
func (f *File) ClearArtwork() {
	f.tag.ClearArtwork()
}

// LossyFields returns the text fields that cannot be saved as ISO-8859-1.
// Their unsupported characters would be written as 0x1A.
func (f *File) LossyFields() []Field {
	var lossy []Field
	for _, field := range fields {
		if !mp3.Latin1Encodable(f.tag.Get(field)) {
			lossy = append(lossy, field)
		}
	}
	return lossy
}
