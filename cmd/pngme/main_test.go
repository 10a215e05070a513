package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/logicossoftware/go-pngme"
)

func newParser(t *testing.T) *kong.Kong {
	t.Helper()
	parser, err := kong.New(&CLI, kong.Name("pngme"), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	if err != nil {
		t.Fatal(err)
	}
	return parser
}

func writeSample(t *testing.T) string {
	t.Helper()
	p := pngme.NewPng(
		pngme.NewChunk(pngme.TypeIHDR, make([]byte, 13)),
		pngme.NewChunk(pngme.TypeIEND, nil),
	)
	path := filepath.Join(t.TempDir(), "in.png")
	if err := os.WriteFile(path, p.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEncodeCommandInPlace(t *testing.T) {
	in := writeSample(t)
	parser := newParser(t)

	ctx, err := parser.Parse([]string{"encode", in, "ruSt", "hi there", in})
	if err != nil {
		t.Fatal(err)
	}
	if err := initLogging(); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Run(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(in)
	if err != nil {
		t.Fatal(err)
	}
	p, err := pngme.Parse(b)
	if err != nil {
		t.Fatal(err)
	}
	c := p.ChunkByType("ruSt")
	if c == nil || string(c.Data()) != "hi there" {
		t.Fatal("expected hidden message")
	}
}

func TestRemoveCommandMissingChunk(t *testing.T) {
	in := writeSample(t)
	parser := newParser(t)
	ctx, err := parser.Parse([]string{"remove", in, "ruSt"})
	if err != nil {
		t.Fatal(err)
	}
	if err := ctx.Run(); err == nil {
		t.Fatal("expected error")
	}
}

func TestLogFlags(t *testing.T) {
	in := writeSample(t)
	parser := newParser(t)
	if _, err := parser.Parse([]string{"--log-level", "debug", "--log-format", "json", "print", in}); err != nil {
		t.Fatal(err)
	}
	if CLI.LogLevel != "debug" || CLI.LogFormat != "json" {
		t.Fatalf("flags = %q %q", CLI.LogLevel, CLI.LogFormat)
	}
	if err := initLogging(); err != nil {
		t.Fatal(err)
	}
	if _, err := parser.Parse([]string{"--log-level", "loud", "print", in}); err == nil {
		t.Fatal("expected enum error")
	}
}

func TestMissingFileRejected(t *testing.T) {
	parser := newParser(t)
	missing := filepath.Join(t.TempDir(), "nope.png")
	if _, err := parser.Parse([]string{"decode", missing, "ruSt"}); err == nil {
		t.Fatal("expected existingfile error")
	}
}
