package id3edit

// Option configures behavior when opening MP3 files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	file, err := id3edit.Open("song.mp3",
//	    id3edit.WithLenientParsing(),
//	    id3edit.WithMaxArtworkSize(10*1024*1024),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	overwrite      bool // Skip parsing; start from an empty tag
	strictParsing  bool // Fail on any warning
	lenientParsing bool // Malformed frames become warnings
	ignoreWarnings bool // Suppress all warnings
	maxArtworkSize int  // Maximum artwork size in bytes (0 = no limit)
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		overwrite:      false,
		strictParsing:  false,
		lenientParsing: false,
		ignoreWarnings: false,
		maxArtworkSize: 0, // No limit
	}
}

func applyOptions(opts []Option) *openOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithOverwrite skips parsing the existing tag.
//
// The file starts with an empty ID3v2.3 tag. The old tag is still located,
// and replaced on save, so none of its fields survive.
//
// Example:
//
//	file, err := id3edit.Open("song.mp3", id3edit.WithOverwrite())
//	file.SetTitle("Only this")
//	err = file.Save()
func WithOverwrite() Option {
	return func(o *openOptions) {
		o.overwrite = true
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, parsing continues past issues like unknown text encodings or
// artwork frames without a recognizable image, returning warnings alongside
// the parsed fields.
//
// Example:
//
//	file, err := id3edit.Open("song.mp3", id3edit.WithStrictParsing())
//	// err != nil if ANY issue is encountered
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithLenientParsing tolerates malformed frames.
//
// By default a frame whose declared size runs past the end of the tag is a
// fatal *MalformedFrameError. With lenient parsing it is recorded as a
// warning and the fields decoded before it are kept.
func WithLenientParsing() Option {
	return func(o *openOptions) {
		o.lenientParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// File.Warnings will always be empty.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithMaxArtworkSize sets a maximum size limit for embedded artwork.
//
// If artwork exceeds this size (in bytes), it is dropped with a warning
// and will not be written back on save.
//
// Default is 0 (no limit).
func WithMaxArtworkSize(bytes int) Option {
	return func(o *openOptions) {
		o.maxArtworkSize = bytes
	}
}
