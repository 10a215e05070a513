package pngme

import (
	"bytes"
	"fmt"
	"slices"
)

// Png is the ordered chunk stream of a PNG file. The last chunk is expected
// to be IEND; AppendChunk keeps it last.
type Png struct {
	chunks []Chunk
}

// NewPng returns a Png holding chunks in the given order.
func NewPng(chunks ...Chunk) *Png {
	return &Png{chunks: append([]Chunk(nil), chunks...)}
}

// Parse decodes a complete PNG file held in memory.
//
// Parse returns ErrInvalidSignature if b does not start with the PNG
// signature and otherwise any error from decoding the chunks. A stream that
// does not end with IEND is accepted.
func Parse(b []byte, opts ...ReadOption) (*Png, error) {
	return Decode(bytes.NewReader(b), opts...)
}

// Header returns the PNG signature.
func (p *Png) Header() [8]byte { return Signature }

// Chunks returns a copy of the chunk list in stream order. Later changes to
// p do not affect it.
func (p *Png) Chunks() []Chunk { return slices.Clone(p.chunks) }

// AppendChunk inserts c immediately before the last chunk, which is
// normally IEND. On an empty Png it becomes the only chunk.
func (p *Png) AppendChunk(c Chunk) {
	n := len(p.chunks)
	if n == 0 {
		p.chunks = append(p.chunks, c)
		return
	}
	p.chunks = slices.Insert(p.chunks, n-1, c)
}

// ChunkByType returns the first chunk whose type is chunkType, or nil.
func (p *Png) ChunkByType(chunkType string) *Chunk {
	if i := p.index(chunkType); i >= 0 {
		return &p.chunks[i]
	}
	return nil
}

// RemoveChunk removes and returns the first chunk whose type is chunkType.
// It fails with ErrChunkNotFound if there is none.
func (p *Png) RemoveChunk(chunkType string) (Chunk, error) {
	i := p.index(chunkType)
	if i < 0 {
		return Chunk{}, fmt.Errorf("%w: %q", ErrChunkNotFound, chunkType)
	}
	c := p.chunks[i]
	p.chunks = slices.Delete(p.chunks, i, i+1)
	return c, nil
}

// AncillaryChunks returns the non-critical chunks in stream order. These are
// the chunks a message can be hidden in.
func (p *Png) AncillaryChunks() []Chunk {
	var out []Chunk
	for _, c := range p.chunks {
		if !c.typ.IsCritical() {
			out = append(out, c)
		}
	}
	return out
}

// Bytes returns the signature followed by every chunk in order.
func (p *Png) Bytes() []byte {
	size := len(Signature)
	for _, c := range p.chunks {
		size += chunkOverhead + len(c.data)
	}
	out := make([]byte, 0, size)
	out = append(out, Signature[:]...)
	for _, c := range p.chunks {
		out = appendChunk(out, c)
	}
	return out
}

func (p *Png) index(chunkType string) int {
	for i := range p.chunks {
		if p.chunks[i].typ.String() == chunkType {
			return i
		}
	}
	return -1
}
