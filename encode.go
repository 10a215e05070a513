package pngme

import (
	"fmt"
	"io"
)

// Encode writes p to w: the PNG signature followed by every chunk in order.
// The output is byte-identical to Bytes.
func Encode(w io.Writer, p *Png) error {
	if p == nil {
		return fmt.Errorf("%w: png is nil", ErrValidation)
	}
	if _, err := w.Write(Signature[:]); err != nil {
		return err
	}
	for _, c := range p.chunks {
		if err := writeChunk(w, c); err != nil {
			return err
		}
	}
	return nil
}
