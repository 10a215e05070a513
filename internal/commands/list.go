package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/logicossoftware/go-pngme"
)

type chunkInfo struct {
	Index      int             `json:"index"`
	Type       pngme.ChunkType `json:"type"`
	Length     uint32          `json:"length"`
	CRC        uint32          `json:"crc"`
	Critical   bool            `json:"critical"`
	Public     bool            `json:"public"`
	SafeToCopy bool            `json:"safe_to_copy"`
	Valid      bool            `json:"valid"`
}

func describe(i int, c pngme.Chunk) chunkInfo {
	t := c.Type()
	return chunkInfo{
		Index:      i,
		Type:       t,
		Length:     c.Length(),
		CRC:        c.CRC(),
		Critical:   t.IsCritical(),
		Public:     t.IsPublic(),
		SafeToCopy: t.IsSafeToCopy(),
		Valid:      t.IsValid(),
	}
}

// List prints every chunk of path with its size and property flags, as a
// table or as JSON.
func List(w io.Writer, path string, asJSON bool) error {
	p, err := load(path)
	if err != nil {
		return err
	}
	infos := make([]chunkInfo, 0, len(p.Chunks()))
	for i, c := range p.Chunks() {
		infos = append(infos, describe(i, c))
	}
	if asJSON {
		b, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTYPE\tSIZE\tCRC\tFLAGS")
	for _, in := range infos {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%08x\t%s\n", in.Index, in.Type, humanize.IBytes(uint64(in.Length)), in.CRC, flags(in))
	}
	return tw.Flush()
}

func flags(in chunkInfo) string {
	out := []byte("----")
	if in.Critical {
		out[0] = 'C'
	} else {
		out[0] = 'a'
	}
	if in.Public {
		out[1] = 'P'
	} else {
		out[1] = 'p'
	}
	if !in.Valid {
		out[2] = 'R'
	}
	if in.SafeToCopy {
		out[3] = 's'
	}
	return string(out)
}
