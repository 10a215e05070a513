// Package pngme hides text messages in PNG files by adding chunks to the
// PNG chunk stream. Pixel data is never decoded or changed.
//
// # File Format Overview
//
// A PNG file is an 8-byte signature followed by chunks. Each chunk is:
//   - a 4-byte big-endian data length
//   - a 4-byte type code of ASCII letters
//   - the data bytes
//   - a 4-byte big-endian CRC-32 over the type code and data
//
// Bit 5 of each type byte is a property flag: ancillary, private, reserved
// and safe-to-copy, in byte order. Messages are usually stored in ancillary,
// private chunks such as "ruSt" so that decoders skip them.
//
// # Basic Usage
//
// To hide a message:
//
//	b, _ := os.ReadFile("in.png")
//	p, err := pngme.Parse(b)
//	if err != nil {
//		return err
//	}
//	t, err := pngme.ParseChunkType("ruSt")
//	if err != nil {
//		return err
//	}
//	p.AppendChunk(pngme.NewChunk(t, []byte("secret")))
//	err = os.WriteFile("out.png", p.Bytes(), 0o644)
//
// To read it back:
//
//	if c := p.ChunkByType("ruSt"); c != nil {
//		msg, err := c.DataString()
//	}
//
// Messages are stored in clear text.
package pngme
