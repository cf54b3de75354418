package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/simonhull/id3edit"
	"github.com/simonhull/id3edit/internal/mp3"
)

// Inspect and edit the ID3v2 tag of an MP3 file.
func main() {
	app := cli.NewApp()
	app.Name = "id3-tool"
	app.Usage = "inspect and edit ID3v2.2/2.3 tags"
	app.Version = id3edit.GetVersionInfo().String()

	app.Commands = []cli.Command{
		{
			Name:      "dump",
			Usage:     "list the raw frames of the tag",
			ArgsUsage: "<file.mp3>",
			Action:    dump,
		},
		{
			Name:      "show",
			Usage:     "print the recognized fields",
			ArgsUsage: "<file.mp3>",
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "lenient", Usage: "tolerate malformed frames"},
			},
			Action: show,
		},
		{
			Name:      "set",
			Usage:     "write fields to the file",
			ArgsUsage: "<file.mp3>",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "artist", Usage: "artist (empty removes)"},
				cli.StringFlag{Name: "title", Usage: "title (empty removes)"},
				cli.StringFlag{Name: "album", Usage: "album (empty removes)"},
				cli.StringFlag{Name: "lyrics", Usage: "lyrics (empty removes)"},
				cli.StringFlag{Name: "art", Usage: "PNG or JPEG `FILE` to embed as cover"},
				cli.BoolFlag{Name: "overwrite", Usage: "discard the existing tag"},
				cli.StringFlag{Name: "backup", Usage: "keep the previous file with this `SUFFIX`"},
				cli.StringFlag{Name: "out", Usage: "write to `PATH` instead of the input"},
			},
			Action: set,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func fileArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", errors.New("expected exactly one file argument")
	}
	return c.Args().First(), nil
}

func dump(c *cli.Context) error {
	path, err := fileArg(c)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	header, err := mp3.Walk(data, func(f mp3.Frame) error {
		fmt.Printf("  %-4s (size: %d, offset: %d)\n", f.ID, f.Size, f.Offset)
		return nil
	})
	if !header.Present {
		fmt.Println("no ID3v2 tag")
		return err
	}
	fmt.Printf("%s rev %d, flags 0x%02x, %d bytes, audio at offset %d\n",
		header.Version, header.Revision, header.Flags, header.Size, header.End())
	return err
}

func show(c *cli.Context) error {
	path, err := fileArg(c)
	if err != nil {
		return err
	}

	var opts []id3edit.Option
	if c.Bool("lenient") {
		opts = append(opts, id3edit.WithLenientParsing())
	}

	file, err := id3edit.Open(path, opts...)
	if err != nil {
		return err
	}

	if !file.HasTag() {
		fmt.Println("no ID3v2 tag")
	} else {
		fmt.Println(file.TagVersion())
	}

	for field, value := range file.Tag().Text() {
		fmt.Printf("%-7s %s\n", field.String()+":", strings.ReplaceAll(value, "\n", "\n        "))
	}

	if art, ok := file.Artwork(); ok {
		fmt.Printf("%-7s %s\n", "artwork:", art)
	}

	for _, w := range file.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	return nil
}

func set(c *cli.Context) error {
	path, err := fileArg(c)
	if err != nil {
		return err
	}

	var opts []id3edit.Option
	if c.Bool("overwrite") {
		opts = append(opts, id3edit.WithOverwrite())
	}

	file, err := id3edit.Open(path, opts...)
	if err != nil {
		return err
	}

	setters := map[string]func(string){
		"artist": file.SetArtist,
		"title":  file.SetTitle,
		"album":  file.SetAlbum,
		"lyrics": file.SetLyrics,
	}
	for name, setter := range setters {
		if c.IsSet(name) {
			setter(c.String(name))
		}
	}
	if lossy := file.LossyFields(); len(lossy) > 0 {
		names := make([]string, len(lossy))
		for i, field := range lossy {
			names[i] = field.String()
		}
		return fmt.Errorf("%s: %s cannot be written as ISO-8859-1, file not changed",
			path, strings.Join(names, ", "))
	}

	if art := c.String("art"); art != "" {
		img, err := os.ReadFile(art)
		if err != nil {
			return err
		}
		format := id3edit.DetectArtworkFormat(img)
		if err := file.SetArtwork(img, format); err != nil {
			return fmt.Errorf("%s: %w", art, err)
		}
	}

	var saveOpts []id3edit.SaveOption
	if suffix := c.String("backup"); suffix != "" {
		saveOpts = append(saveOpts, id3edit.WithBackup(suffix))
	}
	saveOpts = append(saveOpts, id3edit.WithValidation())

	out := path
	if c.IsSet("out") {
		out = c.String("out")
	}
	return file.SaveAs(out, saveOpts...)
}
