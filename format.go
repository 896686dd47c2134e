package packbits

// PackBits (MacPaint / TIFF) format constants.
const (
	MaxRun    = 128  // Maximum bytes covered by one header (literal or repeated run).
	MinRun    = 3    // Minimum repeat length worth compressing between literal blocks.
	NopHeader = 0x80 // Reserved no-op header: zero output bytes, never emitted by Pack.
)

// MaxPackedLen returns the destination size that guarantees Pack succeeds for
// n source bytes: one header byte per 128 bytes of pure literal data is the
// pathological worst case.
func MaxPackedLen(n int) int {
	return n + (n+MaxRun-1)/MaxRun
}

// literalHeader encodes a literal run of count bytes (1..128) into a header byte.
func literalHeader(count int) byte {
	return byte(count - 1)
}

// repeatHeader encodes a repeated run of count bytes (2..128) into a header byte.
func repeatHeader(count int) byte {
	return byte(257 - count)
}

// isLiteral reports whether hdr introduces a literal run of literalLen(hdr) bytes.
func isLiteral(hdr byte) bool {
	return hdr < NopHeader
}

// isRepeat reports whether hdr introduces a repeated run of repeatLen(hdr) bytes.
func isRepeat(hdr byte) bool {
	return hdr > NopHeader
}

// literalLen decodes a literal header into its run length 1..128.
func literalLen(hdr byte) int {
	return int(hdr) + 1
}

// repeatLen decodes a repeat header into its run length 2..128.
func repeatLen(hdr byte) int {
	return 257 - int(hdr)
}
