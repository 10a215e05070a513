// Command pngme hides text messages in PNG files and reads them back.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/logicossoftware/go-pngme/internal/commands"
	"github.com/logicossoftware/go-pngme/internal/logging"
)

const version = "1.0.0"

// CLI defines the command-line interface for pngme.
var CLI struct {
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"warn" enum:"debug,info,warn,error"`
	LogFormat string `name:"log-format" help:"Log format (text, json)" default:"text" enum:"text,json"`

	Encode  EncodeCmd  `cmd:"" help:"Hide a message in a new chunk of the given type"`
	Decode  DecodeCmd  `cmd:"" help:"Print the message stored in a chunk of the given type"`
	Remove  RemoveCmd  `cmd:"" help:"Remove the first chunk of the given type (rewrites the file)"`
	Print   PrintCmd   `cmd:"" help:"List the chunk types that can be searched for messages"`
	List    ListCmd    `cmd:"" help:"List every chunk with its size and flags"`
	Check   CheckCmd   `cmd:"" help:"Check the PNG chunk structure"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// EncodeCmd hides a message.
type EncodeCmd struct {
	File      string `arg:"" help:"Path to the PNG file" type:"existingfile"`
	ChunkType string `arg:"" help:"Chunk type, four ASCII letters (e.g. ruSt)"`
	Message   string `arg:"" help:"Message to hide"`
	Output    string `arg:"" optional:"" help:"Output file for the modified PNG" type:"path"`
}

func (c *EncodeCmd) Run() error {
	return commands.Encode(c.File, c.ChunkType, c.Message, c.Output)
}

// DecodeCmd prints a hidden message.
type DecodeCmd struct {
	File      string `arg:"" help:"Path to the PNG file" type:"existingfile"`
	ChunkType string `arg:"" help:"Chunk type to search for"`
}

func (c *DecodeCmd) Run() error {
	return commands.Decode(os.Stdout, c.File, c.ChunkType)
}

// RemoveCmd deletes a hidden message.
type RemoveCmd struct {
	File      string `arg:"" help:"Path to the PNG file" type:"existingfile"`
	ChunkType string `arg:"" help:"Chunk type to remove"`
}

func (c *RemoveCmd) Run() error {
	return commands.Remove(c.File, c.ChunkType)
}

// PrintCmd lists ancillary chunk types.
type PrintCmd struct {
	File string `arg:"" help:"Path to the PNG file" type:"existingfile"`
}

func (c *PrintCmd) Run() error {
	return commands.Print(os.Stdout, c.File)
}

// ListCmd dumps the chunk table.
type ListCmd struct {
	File string `arg:"" help:"Path to the PNG file" type:"existingfile"`
	JSON bool   `name:"json" help:"Output as JSON"`
}

func (c *ListCmd) Run() error {
	return commands.List(os.Stdout, c.File, c.JSON)
}

// CheckCmd validates the chunk structure.
type CheckCmd struct {
	File string `arg:"" help:"Path to the PNG file" type:"existingfile"`
}

func (c *CheckCmd) Run() error {
	return commands.Check(os.Stdout, c.File)
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("pngme version %s\n", version)
	return nil
}

func initLogging() error {
	level, err := logging.ParseLevel(CLI.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(CLI.LogFormat)
	if err != nil {
		return err
	}
	logging.InitLogger(level, format)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("pngme"),
		kong.Description("Encode and decode secret messages in PNG files"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	ctx.FatalIfErrorf(initLogging())
	err := ctx.Run()
	if err != nil {
		logging.CommandError(ctx.Command(), err)
	}
	ctx.FatalIfErrorf(err)
}
