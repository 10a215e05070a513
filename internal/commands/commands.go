// Package commands implements the pngme operations on PNG files: each
// command reads a file, works on the parsed chunk stream and writes the
// result back or prints it.
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/logicossoftware/go-pngme"
	"github.com/logicossoftware/go-pngme/internal/logging"
)

// Function variables for testing injection.
var (
	readFile  = os.ReadFile
	writeFile = os.WriteFile
)

const filePerm = 0o644

func load(path string) (*pngme.Png, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	p, err := pngme.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	logging.FileOp("read", path, "bytes", len(b), "chunks", len(p.Chunks()))
	return p, nil
}

func store(path string, p *pngme.Png) error {
	b := p.Bytes()
	if err := writeFile(path, b, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logging.FileOp("write", path, "bytes", len(b), "chunks", len(p.Chunks()))
	return nil
}

// Encode hides message in a new chunk of type chunkType. The result is
// written to outPath; with an empty outPath nothing is written.
func Encode(path, chunkType, message, outPath string) error {
	p, err := load(path)
	if err != nil {
		return err
	}
	t, err := pngme.ParseChunkType(chunkType)
	if err != nil {
		return err
	}
	if !t.IsValid() {
		logging.Warn("chunk type has the reserved bit set", "type", chunkType)
	}
	p.AppendChunk(pngme.NewChunk(t, []byte(message)))
	if outPath == "" {
		logging.Debug("no output path, result discarded", "path", path)
		return nil
	}
	return store(outPath, p)
}

// Decode prints the text of the first chunk of type chunkType.
func Decode(w io.Writer, path, chunkType string) error {
	p, err := load(path)
	if err != nil {
		return err
	}
	c := p.ChunkByType(chunkType)
	if c == nil {
		return fmt.Errorf("%w: %q in %s", pngme.ErrChunkNotFound, chunkType, path)
	}
	msg, err := c.DataString()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, msg)
	return err
}

// Remove deletes the first chunk of type chunkType and rewrites path.
func Remove(path, chunkType string) error {
	p, err := load(path)
	if err != nil {
		return err
	}
	removed, err := p.RemoveChunk(chunkType)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logging.Debug("removed chunk", "type", chunkType, "bytes", removed.Length())
	return store(path, p)
}

// Print lists the types of the ancillary chunks, the ones that can hold a
// message.
func Print(w io.Writer, path string) error {
	p, err := load(path)
	if err != nil {
		return err
	}
	chunks := p.AncillaryChunks()
	if len(chunks) == 0 {
		_, err = fmt.Fprintln(w, "No searchable PNG chunks available!")
		return err
	}
	names := make([]string, len(chunks))
	for i, c := range chunks {
		names[i] = c.Type().String()
	}
	_, err = fmt.Fprintf(w, "Searchable PNG chunks (by chunk type): %s\n", strings.Join(names, ", "))
	return err
}

// Check reports whether path is a structurally valid PNG chunk stream.
func Check(w io.Writer, path string) error {
	p, err := load(path)
	if err != nil {
		return err
	}
	if err := pngme.Validate(p); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	_, err = fmt.Fprintf(w, "%s: ok (%d chunks)\n", path, len(p.Chunks()))
	return err
}
