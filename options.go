package packbits

// Options configures the Decompress family of functions.
type Options struct {
	// Strict: if true, a packed stream that ends before producing the requested
	// output length is an error (ErrShortOutput, or ErrUnexpectedEOF for reader
	// based decoding). If false, truncation clamps silently and the caller gets
	// whatever was produced, matching the core Unpack behavior.
	Strict bool
}

// DefaultOptions returns options for default behavior: lenient truncation.
func DefaultOptions() *Options {
	return &Options{
		Strict: false,
	}
}

// StrictOptions returns options that treat a short or truncated stream as an error.
func StrictOptions() *Options {
	return &Options{
		Strict: true,
	}
}
