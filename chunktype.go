package pngme

import "fmt"

// ChunkType is a 4-byte PNG chunk type code. Every byte is an ASCII letter;
// bit 5 of each byte carries a property flag.
//
// ChunkType is comparable, so two codes can be tested with ==.
type ChunkType [4]byte

// ChunkTypeFromBytes returns the chunk type for b.
//
// It fails with ErrInvalidChunkType if any byte is not an ASCII letter.
// The reserved bit is not checked; use IsValid for full conformance.
func ChunkTypeFromBytes(b [4]byte) (ChunkType, error) {
	for i, c := range b {
		if !isLetter(c) {
			return ChunkType{}, fmt.Errorf("%w: byte %d is 0x%02x", ErrInvalidChunkType, i, c)
		}
	}
	return ChunkType(b), nil
}

// ParseChunkType returns the chunk type spelled by s, which must be exactly
// four ASCII letters.
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, fmt.Errorf("%w: %q is %d bytes, want 4", ErrInvalidChunkType, s, len(s))
	}
	var b [4]byte
	copy(b[:], s)
	return ChunkTypeFromBytes(b)
}

func (t ChunkType) Bytes() [4]byte { return t }

func (t ChunkType) String() string { return string(t[:]) }

// IsCritical reports whether the chunk is required for decoding the image.
func (t ChunkType) IsCritical() bool { return t[0]&propertyBit == 0 }

// IsPublic reports whether the type is registered by the PNG specification.
func (t ChunkType) IsPublic() bool { return t[1]&propertyBit == 0 }

// IsReservedBitValid reports whether the reserved bit (third byte) is clear.
func (t ChunkType) IsReservedBitValid() bool { return t[2]&propertyBit == 0 }

// IsSafeToCopy reports whether editors may copy the chunk without
// understanding it.
func (t ChunkType) IsSafeToCopy() bool { return t[3]&propertyBit != 0 }

// IsValid reports whether t is a fully conforming chunk type: all letters
// and the reserved bit clear.
func (t ChunkType) IsValid() bool {
	for _, c := range t {
		if !isLetter(c) {
			return false
		}
	}
	return t.IsReservedBitValid()
}

func (t ChunkType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ChunkType) UnmarshalText(text []byte) error {
	ct, err := ParseChunkType(string(text))
	if err != nil {
		return err
	}
	*t = ct
	return nil
}

func isLetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}
