package packbits

// Pack compresses src into dst and returns the number of dst bytes used.
//
// It returns 0 when src is empty, and 0 when dst is too small to hold the
// next flush; in the latter case dst holds an incomplete stream and must be
// discarded. A dst of MaxPackedLen(len(src)) bytes always succeeds.
//
// Runs of 2 identical bytes inside literal data are kept literal (the run
// header would not pay for itself); a run of 2 at the start of a literal
// block is still emitted as a run. Streams produced here are byte compatible
// with the classic MacPaint/TIFF packer.
func Pack(src, dst []byte) int {
	if len(src) == 0 {
		return 0
	}

	var (
		inRun     bool
		destCount int // Destination bytes used.
		pendStart int // Index of the first pending (not yet emitted) byte.
		runStart  int // Distance into the pending bytes that a run starts.
	)

	// Prime with the first byte.
	lastByte := src[0]
	bytesPending := 1

	for i := 1; i < len(src); i++ {
		currByte := src[i]
		bytesPending++

		if inRun {
			if currByte != lastByte || bytesPending > MaxRun {
				// End of run or maximum run length reached.
				if destCount+2 > len(dst) {
					return 0
				}
				dst[destCount] = repeatHeader(bytesPending - 1)
				dst[destCount+1] = lastByte
				destCount += 2

				bytesPending = 1
				pendStart = i
				runStart = 0
				inRun = false
			}
		} else {
			switch {
			case bytesPending > MaxRun:
				// As much literal data as one header can carry.
				// Emit MaxRun bytes, keep one pending.
				if destCount+1+MaxRun > len(dst) {
					return 0
				}
				dst[destCount] = literalHeader(MaxRun)
				copy(dst[destCount+1:], src[pendStart:pendStart+MaxRun])
				destCount += 1 + MaxRun

				pendStart += MaxRun
				bytesPending -= MaxRun
				runStart = bytesPending - 1 // A run could start here.

			case currByte == lastByte:
				if bytesPending-runStart >= MinRun || runStart == 0 {
					// Worthwhile run: flush literal data before it, if any.
					if runStart != 0 {
						if destCount+1+runStart > len(dst) {
							return 0
						}
						dst[destCount] = literalHeader(runStart)
						copy(dst[destCount+1:], src[pendStart:pendStart+runStart])
						destCount += 1 + runStart

						pendStart += runStart
					}
					bytesPending -= runStart // Length of the run so far.
					inRun = true
				}

			default:
				runStart = bytesPending - 1 // A run could start here.
			}
		}

		lastByte = currByte
	}

	// Emit the remainder.
	if inRun {
		if destCount+2 > len(dst) {
			return 0
		}
		dst[destCount] = repeatHeader(bytesPending)
		dst[destCount+1] = lastByte
		destCount += 2
	} else {
		if destCount+1+bytesPending > len(dst) {
			return 0
		}
		dst[destCount] = literalHeader(bytesPending)
		copy(dst[destCount+1:], src[pendStart:pendStart+bytesPending])
		destCount += 1 + bytesPending
	}

	return destCount
}

// Compress compresses src into a new buffer sized for the worst case and
// returns the used prefix. Empty input returns ErrEmptyInput.
func Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	dst := make([]byte, MaxPackedLen(len(src)))
	n := Pack(src, dst)

	return dst[:n], nil
}
