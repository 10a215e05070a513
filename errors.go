package pngme

import "errors"

var (
	ErrInvalidSignature = errors.New("pngme: invalid PNG signature")
	ErrInvalidChunkType = errors.New("pngme: invalid chunk type")
	ErrInvalidCRC       = errors.New("pngme: invalid chunk CRC")
	ErrTruncatedInput   = errors.New("pngme: truncated input")
	ErrChunkNotFound    = errors.New("pngme: chunk not found")
	ErrInvalidUTF8      = errors.New("pngme: chunk data is not valid UTF-8")
	ErrLimitExceeded    = errors.New("pngme: limit exceeded")
	ErrValidation       = errors.New("pngme: validation failed")
)
