package pngme

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"io"
	"unicode/utf8"
)

// Chunk is a single length-prefixed, type-tagged and checksummed record of a
// PNG stream. The zero value is not meaningful; use NewChunk or ParseChunk.
type Chunk struct {
	typ  ChunkType
	data []byte
	crc  uint32
}

// NewChunk builds a chunk of type t carrying data and computes its CRC.
// The chunk keeps a reference to data.
func NewChunk(t ChunkType, data []byte) Chunk {
	return Chunk{typ: t, data: data, crc: checksum(t, data)}
}

// ParseChunk decodes the chunk at the start of b. Bytes following the
// chunk's CRC field are ignored rather than rejected, so b may be the rest
// of a whole PNG stream.
//
// ParseChunk returns ErrTruncatedInput if b is shorter than the declared
// length requires, ErrInvalidChunkType if the type bytes are not letters and
// ErrInvalidCRC if the stored checksum does not match.
func ParseChunk(b []byte) (Chunk, error) {
	c, err := readChunk(bytes.NewReader(b), defaultLimits())
	if err == io.EOF {
		return Chunk{}, fmt.Errorf("%w: empty chunk buffer", ErrTruncatedInput)
	}
	return c, err
}

// readChunk reads one chunk from r. It returns io.EOF, unwrapped, only when
// r is exhausted before the first byte of the chunk.
func readChunk(r io.Reader, limits Limits) (Chunk, error) {
	h, err := readChunkHeader(r)
	if err != nil {
		return Chunk{}, err
	}
	if h.Length > limits.MaxChunkLen {
		// Running out of input takes precedence over the limit.
		n, err := io.Copy(io.Discard, io.LimitReader(r, int64(h.Length)))
		if err != nil {
			return Chunk{}, err
		}
		if n < int64(h.Length) {
			return Chunk{}, fmt.Errorf("%w: chunk %q declares %d data bytes, %d available",
				ErrTruncatedInput, h.Type, h.Length, n)
		}
		return Chunk{}, fmt.Errorf("%w: chunk %q length %d", ErrLimitExceeded, h.Type, h.Length)
	}
	data, err := readAll(io.LimitReader(r, int64(h.Length)))
	if err != nil {
		return Chunk{}, err
	}
	if uint32(len(data)) != h.Length {
		return Chunk{}, fmt.Errorf("%w: chunk %q declares %d data bytes, %d available",
			ErrTruncatedInput, h.Type, h.Length, len(data))
	}
	crc, err := readCRC(r)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return Chunk{}, fmt.Errorf("%w: chunk %q CRC: %v", ErrTruncatedInput, h.Type, err)
	}
	if err != nil {
		return Chunk{}, err
	}
	return verifyChunk(h.Type, data, crc)
}

// verifyChunk returns a chunk for the given fields if crc matches.
func verifyChunk(t ChunkType, data []byte, crc uint32) (Chunk, error) {
	if computed := checksum(t, data); computed != crc {
		return Chunk{}, fmt.Errorf("%w: chunk %q stored 0x%08x computed 0x%08x", ErrInvalidCRC, t, crc, computed)
	}
	return Chunk{typ: t, data: data, crc: crc}, nil
}

// Length is the number of data bytes.
func (c Chunk) Length() uint32 { return uint32(len(c.data)) }

func (c Chunk) Type() ChunkType { return c.typ }

func (c Chunk) Data() []byte { return c.data }

func (c Chunk) CRC() uint32 { return c.crc }

// DataString returns the chunk data as text. It fails with ErrInvalidUTF8 if
// the data is not valid UTF-8.
func (c Chunk) DataString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("%w: chunk %q", ErrInvalidUTF8, c.typ)
	}
	return string(c.data), nil
}

// Bytes returns the wire form of the chunk: length, type, data and CRC.
func (c Chunk) Bytes() []byte {
	out := make([]byte, 0, chunkOverhead+len(c.data))
	return appendChunk(out, c)
}

func (c Chunk) String() string {
	return fmt.Sprintf("%s (%d bytes)", c.typ, len(c.data))
}

// checksum is the CRC-32 (ISO-HDLC, as used by zlib) of the type followed
// by data.
func checksum(t ChunkType, data []byte) uint32 {
	crc := crc32.Update(0, crc32.IEEETable, t[:])
	return crc32.Update(crc, crc32.IEEETable, data)
}
