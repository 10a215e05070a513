package pngme

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Function variables for testing injection.
var (
	readAll = io.ReadAll
)

type chunkHeader struct {
	Length uint32
	Type   ChunkType
}

// readChunkHeader reads the length and type fields of a chunk. It returns
// io.EOF if r has no bytes left and ErrTruncatedInput if it runs out part
// way through the header.
func readChunkHeader(r io.Reader) (chunkHeader, error) {
	var buf [lengthFieldSize + typeFieldSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return chunkHeader{}, fmt.Errorf("%w: incomplete chunk header", ErrTruncatedInput)
		}
		return chunkHeader{}, err
	}
	var raw [4]byte
	copy(raw[:], buf[4:8])
	t, err := ChunkTypeFromBytes(raw)
	if err != nil {
		return chunkHeader{}, err
	}
	return chunkHeader{Length: binary.BigEndian.Uint32(buf[0:4]), Type: t}, nil
}

func readCRC(r io.Reader) (uint32, error) {
	var buf [crcFieldSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// appendChunk appends the wire form of c to dst.
func appendChunk(dst []byte, c Chunk) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(c.data)))
	dst = append(dst, c.typ[:]...)
	dst = append(dst, c.data...)
	return binary.BigEndian.AppendUint32(dst, c.crc)
}

func writeChunk(w io.Writer, c Chunk) error {
	var hdr [lengthFieldSize + typeFieldSize]byte
	binary.BigEndian.PutUint32(hdr[0:4], uint32(len(c.data)))
	copy(hdr[4:8], c.typ[:])
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if len(c.data) > 0 {
		if _, err := w.Write(c.data); err != nil {
			return err
		}
	}
	var crc [crcFieldSize]byte
	binary.BigEndian.PutUint32(crc[:], c.crc)
	_, err := w.Write(crc[:])
	return err
}
