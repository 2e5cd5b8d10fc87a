// Package voicefont reads and writes the fixed-layout header of a voice-font
// container file. The container payload itself is produced elsewhere; only
// the header fields are handled here.
package voicefont

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Magic identifies a voice-font container ("QVF1" little-endian).
const Magic uint32 = 0x31465651

// Version is the current header format version.
const Version uint32 = 1

// HeaderSize is the on-disk header size in bytes.
const HeaderSize = 36

// Header is the fixed-layout container header. All fields are
// little-endian on disk, in declaration order.
type Header struct {
	Magic          uint32
	Version        uint32
	SampleRate     uint32 // synthesis output rate in Hz
	PhoneCount     uint32 // phones in the embedded inventory
	QuestionCount  uint32 // question sets in the question section
	QuestionOffset uint64 // byte offset of the question section
	QuestionSize   uint64 // byte length of the question section
}

// NewHeader creates a header with the magic and current version filled in.
func NewHeader() *Header {
	return &Header{
		Magic:   Magic,
		Version: Version,
	}
}

// Write serializes the header field by field.
func (h *Header) Write(w io.Writer) error {
	return binary.Write(w, binary.LittleEndian, h)
}

// ReadHeader deserializes a header and checks magic and version.
func ReadHeader(r io.Reader) (*Header, error) {
	h := &Header{}
	if err := binary.Read(r, binary.LittleEndian, h); err != nil {
		return nil, fmt.Errorf("read voice-font header: %w", err)
	}
	if h.Magic != Magic {
		return nil, fmt.Errorf("not a voice-font file: magic 0x%08x", h.Magic)
	}
	if h.Version != Version {
		return nil, fmt.Errorf("unsupported voice-font version %d", h.Version)
	}
	return h, nil
}
