package streamtext

import "errors"

// Sentinel errors returned by the stream adapters. Use errors.Is to test
// for them; layers that wrap an underlying error do so with %w so the
// original cause remains reachable.
var (
	// ErrStreamEnded is returned by a write-direction operation attempted
	// after the stream has been flushed with Status.End or abandoned.
	// Reads after End do not return it; they report {0, End}.
	ErrStreamEnded = errors.New("stream has already ended")

	// ErrInvalidInput is returned when a caller-supplied buffer is too
	// small for the guarantees a reader makes (see MaxUTF8Size and
	// NormalizationBufferSize).
	ErrInvalidInput = errors.New("buffer too small for stream guarantee")

	// ErrInvalidUTF8 is returned by write-direction sanitizers when the
	// input bytes are not valid UTF-8 from the very first byte.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")

	// ErrNonStarter is returned by the text writer when the first scalar
	// of a stream, or of the data following a lull, is not a
	// Normalization-Form starter.
	ErrNonStarter = errors.New("write data must begin with a Unicode Normalization Form starter")

	// ErrForbiddenControl is returned by the text writer when the data
	// contains a BOM or a control code other than '\n' or '\t'.
	ErrForbiddenControl = errors.New("invalid Unicode scalar value written to text stream")

	// ErrMissingTrailingNewline is returned by the text writer when a
	// flush with Status Lull or End occurs without the stream ending in
	// '\n'.
	ErrMissingTrailingNewline = errors.New("output text stream must end with newline")

	// ErrShortWrite mirrors io.ErrShortWrite for the Write interface's
	// WriteAll helper.
	ErrShortWrite = errors.New("failed to write whole buffer")

	// ErrUnexpectedEOF mirrors io.ErrUnexpectedEOF for ReadExact.
	ErrUnexpectedEOF = errors.New("failed to fill whole buffer")

	// errInterrupted is an internal sentinel: it is never returned to a
	// caller of the ReadOutcome-based API, only synthesized by the
	// classic Read adaptor in read.go.
	errInterrupted = errors.New("read zero bytes from stream")
)
