package pngme

import "fmt"

// Validate checks the structure a conforming PNG stream must have: IHDR
// first, IEND last and no chunk type with the reserved bit set. Parse and
// Decode do not call it.
func Validate(p *Png) error {
	if p == nil {
		return fmt.Errorf("%w: png is nil", ErrValidation)
	}
	if len(p.chunks) == 0 {
		return fmt.Errorf("%w: no chunks", ErrValidation)
	}
	if first := p.chunks[0].typ; first != TypeIHDR {
		return fmt.Errorf("%w: first chunk is %q, want IHDR", ErrValidation, first)
	}
	if last := p.chunks[len(p.chunks)-1].typ; last != TypeIEND {
		return fmt.Errorf("%w: last chunk is %q, want IEND", ErrValidation, last)
	}
	for i, c := range p.chunks {
		if !c.typ.IsValid() {
			return fmt.Errorf("%w: chunk %d type %q has the reserved bit set", ErrValidation, i, c.typ)
		}
		if c.typ == TypeIEND && i != len(p.chunks)-1 {
			return fmt.Errorf("%w: IEND at position %d is not last", ErrValidation, i)
		}
	}
	return nil
}
