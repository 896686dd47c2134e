package packbits

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// streamChunk is how much raw input CompressStream packs at a time. Runs are
// self-delimiting, so packed chunks concatenate into one valid stream; a run
// crossing a chunk boundary is merely split in two.
const streamChunk = 32 * 1024

// CompressStream reads raw bytes from input until EOF and writes the packed
// stream to output. The return value is the number of bytes written, only
// valid if no error occurred.
func CompressStream(input io.Reader, output io.Writer) (int64, error) {
	raw := make([]byte, streamChunk)
	packed := make([]byte, MaxPackedLen(streamChunk))
	totalBytesWritten := int64(0)

	for {
		n, readErr := io.ReadFull(input, raw)
		if readErr != nil && !errors.Is(readErr, io.EOF) && !errors.Is(readErr, io.ErrUnexpectedEOF) {
			return totalBytesWritten, fmt.Errorf("error reading input: %w", readErr)
		}

		if n > 0 {
			used := Pack(raw[:n], packed)
			written, err := output.Write(packed[:used])
			if err != nil {
				return totalBytesWritten, fmt.Errorf("failed to write to output: %w", err)
			}
			totalBytesWritten += int64(written)
		}

		if readErr != nil {
			// Short read means the input is drained.
			return totalBytesWritten, nil
		}
	}
}

// DecompressStream reads a packed stream from input until EOF and writes the
// decompressed bytes to output. The return value is the number of bytes
// written (the decompressed size), only valid if no error occurred.
//
// EOF at a header boundary is a clean end; EOF inside a run means the stream
// was truncated and yields an error wrapping io.ErrUnexpectedEOF.
func DecompressStream(input io.Reader, output io.Writer) (int64, error) {
	source := bufio.NewReader(input)
	scratch := make([]byte, MaxRun)
	totalBytesWritten := int64(0)

	for {
		hdr, err := source.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return totalBytesWritten, nil
			}

			return totalBytesWritten, fmt.Errorf("error reading input: %w", err)
		}

		var run []byte
		switch {
		case isLiteral(hdr):
			run = scratch[:literalLen(hdr)]
			if _, err := io.ReadFull(source, run); err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
					err = fmt.Errorf(
						"%w: literal run of %d bytes cut short",
						io.ErrUnexpectedEOF, literalLen(hdr),
					)
				}

				return totalBytesWritten, fmt.Errorf("error reading input: %w", err)
			}

		case isRepeat(hdr):
			b, err := source.ReadByte()
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = fmt.Errorf(
						"%w: missing data byte after repeat header %02x",
						io.ErrUnexpectedEOF, hdr,
					)
				}

				return totalBytesWritten, fmt.Errorf("error reading input: %w", err)
			}

			run = scratch[:repeatLen(hdr)]
			for i := range run {
				run[i] = b
			}

		default:
			// NopHeader produces no output.
			continue
		}

		n, err := output.Write(run)
		if err != nil {
			return totalBytesWritten, fmt.Errorf("failed to write to output: %w", err)
		}
		totalBytesWritten += int64(n)
	}
}
