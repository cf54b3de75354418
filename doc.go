// Package id3edit reads and writes ID3v2.2 and ID3v2.3 tags at the start
// of MP3 files.
//
// It handles the fields most players display: artist, title, album,
// lyrics, and a PNG or JPEG cover image. A new tag is written in front of
// the untouched audio, replacing any tag that was there.
//
// # Quick Start
//
// Reading and updating a file:
//
//	file, err := id3edit.Open("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("%s - %s (%s)\n", file.Artist(), file.Title(), file.TagVersion())
//
//	file.SetAlbum("Cloud Factory")
//	if err := file.Save(); err != nil {
//		log.Fatal(err)
//	}
//
// Working on bytes already in memory:
//
//	file, err := id3edit.OpenBytes(data)
//	if err != nil {
//		return err
//	}
//	file.SetArtist("Jinjer")
//	out, err := file.Bytes()
//
// # Tag Versions
//
// A tag is written in the version it was read as. Files without a tag get
// an ID3v2.3 tag. Text is written as ISO-8859-1; UTF-16 text is decoded
// on read.
//
// # Error Handling
//
// id3edit distinguishes between fatal errors and warnings:
//
//   - Fatal errors stop parsing (not an MP3, empty data, a frame that runs
//     past the end of the tag, a tag too large to encode)
//   - Warnings indicate non-fatal issues (unknown text encoding, an artwork
//     frame without a usable image)
//
// Errors can be matched with errors.Is against ErrNotMP3, ErrNoData,
// ErrMalformedFrame, ErrTagSizeOverflow and ErrNoPath.
//
//	if len(file.Warnings) > 0 {
//		for _, w := range file.Warnings {
//			log.Printf("Warning: %s", w)
//		}
//	}
//
// Parse multiple files concurrently:
//
//	files, err := id3edit.OpenMany(ctx, paths...)
package id3edit
