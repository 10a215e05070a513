// Package main provides C-compatible exports for the pngme library.
// Build with: go build -buildmode=c-shared -o pngme.dll
package main

/*
#include <stdlib.h>
#include <stdint.h>

// Result structure for operations that return data
typedef struct {
    char* data;
    int   data_len;
    char* error;
} PngmeResult;
*/
import "C"

import (
	"encoding/json"
	"unsafe"

	"github.com/logicossoftware/go-pngme"
)

func main() {}

// PngmeFreeResult frees memory allocated by other Pngme functions.
// Must be called to avoid memory leaks.
//
//export PngmeFreeResult
func PngmeFreeResult(result C.PngmeResult) {
	if result.data != nil {
		C.free(unsafe.Pointer(result.data))
	}
	if result.error != nil {
		C.free(unsafe.Pointer(result.error))
	}
}

// PngmeFreeString frees a C string allocated by Go.
//
//export PngmeFreeString
func PngmeFreeString(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

// makeResult creates a result with data.
func makeResult(data []byte) C.PngmeResult {
	var result C.PngmeResult
	if len(data) > 0 {
		result.data = (*C.char)(C.CBytes(data))
		result.data_len = C.int(len(data))
	}
	return result
}

// makeError creates a result with an error message.
func makeError(err error) C.PngmeResult {
	var result C.PngmeResult
	result.error = C.CString(err.Error())
	return result
}

func parse(data *C.char, dataLen C.int) (*pngme.Png, error) {
	return pngme.Parse(C.GoBytes(unsafe.Pointer(data), dataLen))
}

// PngmeEncode appends a chunk of type chunkType holding message before IEND.
// Parameters:
//   - data: pointer to PNG file bytes
//   - dataLen: length of the data
//   - chunkType: four-letter chunk type
//   - message: message bytes
//   - messageLen: length of the message
//
// Returns PngmeResult with the new PNG bytes or error. Call PngmeFreeResult when done.
//
//export PngmeEncode
func PngmeEncode(data *C.char, dataLen C.int, chunkType *C.char, message *C.char, messageLen C.int) C.PngmeResult {
	p, err := parse(data, dataLen)
	if err != nil {
		return makeError(err)
	}
	t, err := pngme.ParseChunkType(C.GoString(chunkType))
	if err != nil {
		return makeError(err)
	}
	p.AppendChunk(pngme.NewChunk(t, C.GoBytes(unsafe.Pointer(message), messageLen)))
	return makeResult(p.Bytes())
}

// PngmeDecode returns the data of the first chunk of type chunkType.
//
//export PngmeDecode
func PngmeDecode(data *C.char, dataLen C.int, chunkType *C.char) C.PngmeResult {
	p, err := parse(data, dataLen)
	if err != nil {
		return makeError(err)
	}
	ct := C.GoString(chunkType)
	c := p.ChunkByType(ct)
	if c == nil {
		var result C.PngmeResult
		result.error = C.CString(pngme.ErrChunkNotFound.Error() + ": " + ct)
		return result
	}
	return makeResult(c.Data())
}

// PngmeRemove removes the first chunk of type chunkType and returns the
// rewritten PNG bytes.
//
//export PngmeRemove
func PngmeRemove(data *C.char, dataLen C.int, chunkType *C.char) C.PngmeResult {
	p, err := parse(data, dataLen)
	if err != nil {
		return makeError(err)
	}
	if _, err := p.RemoveChunk(C.GoString(chunkType)); err != nil {
		return makeError(err)
	}
	return makeResult(p.Bytes())
}

// PngmeAncillary returns a JSON array with the types of the ancillary chunks.
//
//export PngmeAncillary
func PngmeAncillary(data *C.char, dataLen C.int) C.PngmeResult {
	p, err := parse(data, dataLen)
	if err != nil {
		return makeError(err)
	}
	types := []string{}
	for _, c := range p.AncillaryChunks() {
		types = append(types, c.Type().String())
	}
	jsonBytes, err := json.Marshal(types)
	if err != nil {
		return makeError(err)
	}
	return makeResult(jsonBytes)
}

// PngmeValidate parses and validates a PNG chunk stream.
// Returns NULL on success, or an error message string on failure.
// Call PngmeFreeString on the result if non-NULL.
//
//export PngmeValidate
func PngmeValidate(data *C.char, dataLen C.int) *C.char {
	p, err := parse(data, dataLen)
	if err == nil {
		err = pngme.Validate(p)
	}
	if err != nil {
		return C.CString(err.Error())
	}
	return nil
}
