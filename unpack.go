package packbits

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// unpack runs the decode loop shared by Unpack and UnpackToFill.
// It stops when either src or dst is exhausted and reports how much of each was used.
func unpack(src, dst []byte) (srcUsed, destUsed int) {
	sp := 0
	dp := 0

	for sp < len(src) && dp < len(dst) {
		hdr := src[sp]
		sp++

		switch {
		case isLiteral(hdr):
			count := literalLen(hdr)
			// Clamp to remaining destination and remaining source.
			if count > len(dst)-dp {
				count = len(dst) - dp
			}
			if count > len(src)-sp {
				count = len(src) - sp
			}
			copy(dst[dp:dp+count], src[sp:sp+count])
			sp += count
			dp += count

		case isRepeat(hdr):
			count := repeatLen(hdr)
			if count > len(dst)-dp {
				count = len(dst) - dp
			}
			if sp < len(src) {
				b := src[sp]
				sp++
				for i := 0; i < count; i++ {
					dst[dp+i] = b
				}
				dp += count
			}
		}
		// NopHeader: consume the header byte, produce nothing.
	}

	return sp, dp
}

// Unpack decompresses src into dst, stopping when either the source runs out
// or the destination is full, and returns the number of dst bytes written.
// Runs are clamped at buffer edges; malformed input can never read past src
// or write past dst.
func Unpack(src, dst []byte) int {
	_, destUsed := unpack(src, dst)
	return destUsed
}

// UnpackToFill decompresses from src until dst is full and returns the number
// of source bytes consumed. This supports unpacking a buffer in chunks where
// only the output chunk size is known; it relies on the unpacking chunk size
// being a multiple of the packing chunk size so that runs are not split
// across chunk boundaries.
func UnpackToFill(src, dst []byte) int {
	srcUsed, _ := unpack(src, dst)
	return srcUsed
}

// Decompress decompresses src into a new buffer of up to outLen bytes and
// returns the produced prefix. Options nil means DefaultOptions (lenient:
// a stream that ends early returns the bytes it did produce). With strict
// options a short stream returns ErrShortOutput.
func Decompress(src []byte, outLen int, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if outLen < 0 {
		return nil, ErrNegativeOutLen
	}

	out := make([]byte, outLen)
	n := Unpack(src, out)

	if opts.Strict && n != outLen {
		return nil, fmt.Errorf("%w: produced=%d expected=%d", ErrShortOutput, n, outLen)
	}

	return out[:n], nil
}

// DecompressBlock decompresses packed runs from the beginning of src until
// outLen output bytes exist, ignoring any trailing bytes. It returns the
// decompressed bytes and the number of src bytes consumed.
func DecompressBlock(src []byte, outLen int, opts *Options) ([]byte, int, error) {
	reader := &sliceByteReader{data: src}
	out, err := decompressFromByteReader(reader, outLen, opts)
	if err != nil {
		return nil, reader.pos, err
	}

	return out, reader.pos, nil
}

// DecompressFromReader decompresses packed runs from r until outLen output
// bytes exist and returns the number of source bytes consumed. The reader is
// left positioned after the last consumed byte, so successive calls unpack
// successive chunks of a stream.
func DecompressFromReader(r io.Reader, outLen int, opts *Options) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	var byteReader io.ByteReader
	if existing, ok := r.(io.ByteReader); ok {
		byteReader = existing
	} else {
		byteReader = bufio.NewReader(r)
	}

	countingReader := &countingByteReader{base: byteReader}
	out, err := decompressFromByteReader(countingReader, outLen, opts)
	if err != nil {
		return nil, countingReader.count, err
	}

	return out, countingReader.count, nil
}

// decompressFromByteReader decompresses from a byte reader until outLen output
// bytes exist or the reader is drained.
func decompressFromByteReader(r io.ByteReader, outLen int, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if outLen < 0 {
		return nil, ErrNegativeOutLen
	}

	out := make([]byte, outLen)
	pos := 0

	for pos < outLen {
		hdr, err := r.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, err
			}
			// Clean end at a header boundary.
			if opts.Strict {
				return nil, fmt.Errorf("%w: produced=%d expected=%d", ErrShortOutput, pos, outLen)
			}

			return out[:pos], nil
		}

		switch {
		case isLiteral(hdr):
			count := literalLen(hdr)
			if count > outLen-pos {
				// Consume only what fits, like the slice decoder; the rest of
				// the run stays in the reader.
				count = outLen - pos
			}
			for i := 0; i < count; i++ {
				b, err := r.ReadByte()
				if err != nil {
					if errors.Is(err, io.EOF) && !opts.Strict {
						return out[:pos], nil
					}
					if errors.Is(err, io.EOF) {
						return nil, fmt.Errorf("%w: literal run cut short", ErrUnexpectedEOF)
					}

					return nil, err
				}

				out[pos] = b
				pos++
			}

		case isRepeat(hdr):
			count := repeatLen(hdr)
			if count > outLen-pos {
				count = outLen - pos
			}

			b, err := r.ReadByte()
			if err != nil {
				if errors.Is(err, io.EOF) && !opts.Strict {
					return out[:pos], nil
				}
				if errors.Is(err, io.EOF) {
					return nil, fmt.Errorf("%w: repeat run missing data byte", ErrUnexpectedEOF)
				}

				return nil, err
			}

			for i := 0; i < count; i++ {
				out[pos] = b
				pos++
			}
		}
		// NopHeader: nothing to do.
	}

	return out, nil
}
