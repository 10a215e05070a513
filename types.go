package pngme

// Signature is the 8-byte PNG file signature.
var Signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

const (
	lengthFieldSize = 4
	typeFieldSize   = 4
	crcFieldSize    = 4

	// chunkOverhead is the number of framing bytes around a chunk's data.
	chunkOverhead = lengthFieldSize + typeFieldSize + crcFieldSize

	// maxChunkLen is the largest length PNG allows in a chunk header.
	maxChunkLen uint32 = 1<<31 - 1
)

// propertyBit is bit 5 of a chunk type byte. Its meaning depends on the
// byte position (ancillary, private, reserved, safe-to-copy).
const propertyBit byte = 0x20

// Well-known chunk types.
var (
	TypeIHDR = ChunkType{'I', 'H', 'D', 'R'}
	TypeIDAT = ChunkType{'I', 'D', 'A', 'T'}
	TypeIEND = ChunkType{'I', 'E', 'N', 'D'}
	TypeTEXT = ChunkType{'t', 'E', 'X', 't'}
)
