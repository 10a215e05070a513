package pngme

import (
	"fmt"
	"io"
)

// Decode reads a PNG chunk stream from r until r is exhausted.
//
// The decoding process:
//  1. Reads and checks the 8-byte signature
//  2. Reads chunks (length, type, data, CRC) until end of input
//
// Every chunk's CRC is verified. Decode returns ErrInvalidSignature if the
// signature does not match, ErrTruncatedInput if the input ends inside a
// chunk, ErrInvalidChunkType or ErrInvalidCRC for a malformed chunk and
// ErrLimitExceeded if a limit set with WithReadLimits is exceeded.
func Decode(r io.Reader, opts ...ReadOption) (*Png, error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	var sig [8]byte
	if _, err := io.ReadFull(r, sig[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: input shorter than signature", ErrInvalidSignature)
		}
		return nil, err
	}
	if sig != Signature {
		return nil, ErrInvalidSignature
	}

	p := &Png{}
	for {
		c, err := readChunk(r, cfg.limits)
		if err == io.EOF {
			return p, nil
		}
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", len(p.chunks), err)
		}
		if cfg.limits.MaxChunks > 0 && len(p.chunks) >= cfg.limits.MaxChunks {
			return nil, fmt.Errorf("%w: more than %d chunks", ErrLimitExceeded, cfg.limits.MaxChunks)
		}
		p.chunks = append(p.chunks, c)
	}
}
