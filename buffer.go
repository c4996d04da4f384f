package dawg

import (
	"encoding/binary"
	"fmt"
)

// byteReader extracts little-endian fixed-width integers from a
// contiguous byte slice, maintaining a moving read cursor. Reads past the
// end of the slice return ErrDecode; there is no framing or alignment
// padding.
type byteReader struct {
	data []byte
	pos  int
}

func newByteReader(data []byte) *byteReader {
	return &byteReader{data: data}
}

func (r *byteReader) readU8() (byte, error) {
	if r.pos+1 > len(r.data) {
		return 0, fmt.Errorf("%w: truncated u8 at offset %d", ErrDecode, r.pos)
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *byteReader) readU32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, fmt.Errorf("%w: truncated u32 at offset %d", ErrDecode, r.pos)
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

func (r *byteReader) remaining() int {
	return len(r.data) - r.pos
}

// byteWriter appends little-endian fixed-width integers to a growing
// byte buffer.
type byteWriter struct {
	buf []byte
}

func newByteWriter() *byteWriter {
	return &byteWriter{}
}

func (w *byteWriter) writeU8(v byte) {
	w.buf = append(w.buf, v)
}

func (w *byteWriter) writeU32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

func (w *byteWriter) bytes() []byte {
	return w.buf
}
