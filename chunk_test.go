package pngme

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

const testMessage = "This is where your secret message will be!"

// rawChunk builds a chunk's wire form with an explicit CRC.
func rawChunk(length uint32, typ string, data []byte, crc uint32) []byte {
	var b []byte
	b = binary.BigEndian.AppendUint32(b, length)
	b = append(b, typ...)
	b = append(b, data...)
	return binary.BigEndian.AppendUint32(b, crc)
}

func TestNewChunk(t *testing.T) {
	c := NewChunk(mustType(t, "RuSt"), []byte(testMessage))
	if c.Length() != 42 {
		t.Fatalf("length = %d", c.Length())
	}
	if c.CRC() != 2882656334 {
		t.Fatalf("crc = %d", c.CRC())
	}
	if c.Type().String() != "RuSt" {
		t.Fatalf("type = %s", c.Type())
	}
}

func TestParseChunk_Valid(t *testing.T) {
	c, err := ParseChunk(rawChunk(42, "RuSt", []byte(testMessage), 2882656334))
	if err != nil {
		t.Fatal(err)
	}
	if c.Length() != 42 || c.CRC() != 2882656334 || c.Type().String() != "RuSt" {
		t.Fatalf("unexpected chunk %v crc=%d", c, c.CRC())
	}
	s, err := c.DataString()
	if err != nil {
		t.Fatal(err)
	}
	if s != testMessage {
		t.Fatalf("got %q", s)
	}
}

func TestParseChunk_BadCRC(t *testing.T) {
	_, err := ParseChunk(rawChunk(42, "RuSt", []byte(testMessage), 2882656333))
	if !errors.Is(err, ErrInvalidCRC) {
		t.Fatalf("expected ErrInvalidCRC, got %v", err)
	}
}

func TestParseChunk_BitFlipDetected(t *testing.T) {
	wire := NewChunk(mustType(t, "RuSt"), []byte(testMessage)).Bytes()
	for i := 8; i < len(wire)-4; i++ {
		for bit := 0; bit < 8; bit++ {
			b := append([]byte(nil), wire...)
			b[i] ^= 1 << bit
			if _, err := ParseChunk(b); !errors.Is(err, ErrInvalidCRC) {
				t.Fatalf("byte %d bit %d: expected ErrInvalidCRC, got %v", i, bit, err)
			}
		}
	}
}

func TestParseChunk_InvalidType(t *testing.T) {
	_, err := ParseChunk(rawChunk(3, "Ru1t", []byte("abc"), 0))
	if !errors.Is(err, ErrInvalidChunkType) {
		t.Fatalf("expected ErrInvalidChunkType, got %v", err)
	}
}

func TestParseChunk_Truncated(t *testing.T) {
	wire := NewChunk(mustType(t, "RuSt"), []byte(testMessage)).Bytes()
	for _, n := range []int{0, 3, 7, 8, 20, len(wire) - 5, len(wire) - 1} {
		if _, err := ParseChunk(wire[:n]); !errors.Is(err, ErrTruncatedInput) {
			t.Fatalf("cut at %d: expected ErrTruncatedInput, got %v", n, err)
		}
	}
}

func TestParseChunk_DeclaredLengthBeyondInput(t *testing.T) {
	b := rawChunk(1000, "RuSt", []byte("short"), 0)
	if _, err := ParseChunk(b); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("expected ErrTruncatedInput, got %v", err)
	}
}

func TestParseChunk_LengthAboveLimitOnShortInput(t *testing.T) {
	b := rawChunk(0xFFFFFFFF, "RuSt", []byte("short"), 0)
	if _, err := ParseChunk(b); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("ParseChunk: expected ErrTruncatedInput, got %v", err)
	}
	if _, err := Parse(append(Signature[:], b...)); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("Parse: expected ErrTruncatedInput, got %v", err)
	}
}

func TestParseChunk_IgnoresTrailingBytes(t *testing.T) {
	wire := NewChunk(mustType(t, "RuSt"), []byte("x")).Bytes()
	c, err := ParseChunk(append(wire, 0xde, 0xad))
	if err != nil {
		t.Fatal(err)
	}
	if string(c.Data()) != "x" {
		t.Fatalf("got %q", c.Data())
	}
}

func TestChunkRoundTrip(t *testing.T) {
	datas := [][]byte{nil, {}, []byte("a"), []byte(testMessage), bytes.Repeat([]byte{0x00, 0xff}, 4096)}
	for _, typ := range []string{"RuSt", "ruSt", "IEND", "tEXt", "zzzz"} {
		for _, d := range datas {
			in := NewChunk(mustType(t, typ), d)
			out, err := ParseChunk(in.Bytes())
			if err != nil {
				t.Fatalf("%s/%d: %v", typ, len(d), err)
			}
			if out.Type() != in.Type() || out.CRC() != in.CRC() || out.Length() != in.Length() || !bytes.Equal(out.Data(), in.Data()) {
				t.Fatalf("%s/%d: round trip mismatch", typ, len(d))
			}
			if !bytes.Equal(out.Bytes(), in.Bytes()) {
				t.Fatalf("%s/%d: serialized form differs", typ, len(d))
			}
		}
	}
}

func TestChunkBytesLayout(t *testing.T) {
	c := NewChunk(TypeIEND, nil)
	want := []byte{0, 0, 0, 0, 'I', 'E', 'N', 'D', 0xAE, 0x42, 0x60, 0x82}
	if !bytes.Equal(c.Bytes(), want) {
		t.Fatalf("got % x", c.Bytes())
	}
}

func TestDataString_InvalidUTF8(t *testing.T) {
	c := NewChunk(mustType(t, "ruSt"), []byte{0xff, 0xfe, 0xfd})
	if _, err := c.DataString(); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestChunkString(t *testing.T) {
	c := NewChunk(mustType(t, "RuSt"), []byte(testMessage))
	if s := c.String(); s != "RuSt (42 bytes)" {
		t.Fatalf("got %q", s)
	}
}
