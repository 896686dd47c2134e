package packbits

import "io"

// sliceByteReader adapts a byte slice to io.ByteReader and remembers how far
// decoding got, which is what DecompressBlock reports as consumed bytes.
type sliceByteReader struct {
	data []byte
	pos  int
}

func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// countingByteReader wraps an io.ByteReader and counts bytes handed out, so
// DecompressFromReader can report consumption on an arbitrary stream.
type countingByteReader struct {
	base  io.ByteReader
	count int64
}

func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}
