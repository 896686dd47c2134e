package packbits

// UnpackWindow decompresses only the output bytes in the half-open range
// [start, start+len(dst)) of the full decompressed stream into dst, and
// returns the number of dst bytes written.
//
// The packed format has no seek capability, so every run before the window is
// still decoded, just not materialized. A window entirely past the end of the
// decompressed data writes nothing and returns 0. This is meant for
// memory-constrained partial extraction: dst only has to be as large as the
// slice of output actually needed.
func UnpackWindow(src, dst []byte, start int) int {
	if start < 0 {
		return 0
	}

	var (
		sp      int // Source cursor.
		written int // Destination bytes written.
		destPos int // Absolute position in the decompressed stream.
	)
	winEnd := start + len(dst)

	for sp < len(src) && written < len(dst) {
		hdr := src[sp]
		sp++

		switch {
		case isLiteral(hdr):
			count := literalLen(hdr)
			if count > len(src)-sp {
				count = len(src) - sp
			}
			if destPos+count > start && destPos < winEnd {
				off := 0
				if destPos < start {
					off = start - destPos
				}
				n := count - off
				if n > len(dst)-written {
					n = len(dst) - written
				}
				copy(dst[written:written+n], src[sp+off:sp+off+n])
				written += n
			}
			// Advance by the full run regardless of overlap.
			sp += count
			destPos += count

		case isRepeat(hdr):
			count := repeatLen(hdr)
			if sp >= len(src) {
				return written
			}
			b := src[sp]
			sp++

			if destPos+count > start && destPos < winEnd {
				off := 0
				if destPos < start {
					off = start - destPos
				}
				n := count - off
				if n > len(dst)-written {
					n = len(dst) - written
				}
				for i := 0; i < n; i++ {
					dst[written+i] = b
				}
				written += n
			}
			destPos += count
		}
		// NopHeader: consume the header byte, produce nothing.
	}

	return written
}

// DecompressWindow decompresses the output range [start, start+length) into a
// new buffer and returns the produced prefix, which is shorter than length
// when the window extends past the end of the decompressed data.
func DecompressWindow(src []byte, start, length int) ([]byte, error) {
	if start < 0 {
		return nil, ErrNegativeStart
	}
	if length < 0 {
		return nil, ErrNegativeOutLen
	}

	out := make([]byte, length)
	n := UnpackWindow(src, out, start)

	return out[:n], nil
}
