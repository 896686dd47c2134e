/*
Package packbits implements PackBits run-length encoding and decoding as used
by MacPaint and TIFF.

Format: a header byte per run, data inline, no container structure.
Header 0..127: (header+1) literal bytes follow. Header 129..255: (257-header)
repetitions of the single byte that follows. Header 128: no-op, consumed and
ignored by decoders, never produced by this encoder. A run never covers more
than 128 output bytes.

The core functions operate on caller-owned buffers and allocate nothing:

Use Pack(src, dst) to compress; it returns dst bytes used, or 0 when src is
empty or dst cannot hold the stream (size dst with MaxPackedLen to rule the
latter out).
Use Unpack(src, dst) to decompress with both sizes known; runs are clamped at
buffer edges and the return value is dst bytes written.
Use UnpackToFill(src, dst) to fill dst exactly and learn how many source bytes
that took, for unpacking a large buffer chunk by chunk.
Use UnpackWindow(src, dst, start) to materialize only output bytes
[start, start+len(dst)) of the decompressed stream, for memory-constrained
partial extraction.

On top of those, allocating and stream-based entry points:

Use Compress(src) / Decompress(src, outLen, opts) for the allocating forms;
nil opts means lenient truncation, StrictOptions() makes a short stream an
error.
Use DecompressBlock(src, outLen, opts) to decode from the beginning of src and
get consumed bytes.
Use DecompressFromReader(r, outLen, opts) to decode one chunk from a stream
without reading to EOF.
Use DecompressWindow(src, start, length) for the allocating windowed form.
Use CompressStream / DecompressStream to pipe between io.Reader and io.Writer.

# Examples

Round-trip compress and decompress:

	enc, err := packbits.Compress(data)
	if err != nil {
		return err
	}
	dec, err := packbits.Decompress(enc, len(data), nil)
	if err != nil {
		return err
	}
	// dec equals data

Compress into a caller-owned buffer without allocation:

	dst := make([]byte, packbits.MaxPackedLen(len(data)))
	n := packbits.Pack(data, dst)
	packed := dst[:n]

Extract bytes 512..519 of the decompressed data using an 8-byte buffer:

	window := make([]byte, 8)
	n := packbits.UnpackWindow(packed, window, 512)
	_ = window[:n]

Unpack a stream in fixed-size chunks when only the chunk size is known:

	chunk := make([]byte, 4096)
	used := packbits.UnpackToFill(packed, chunk)
	packed = packed[used:]
*/
package packbits
