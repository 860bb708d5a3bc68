package streamtext

import (
	"errors"
	"io"
	"strings"
	"syscall"

	"github.com/streamtext/streamtext/internal/ttyprobe"
)

// StreamReader adapts an io.Reader to implement Reader.
type StreamReader struct {
	inner      io.Reader
	stickyEnd  bool
	lineByLine bool
	ended      bool
}

// NewGenericReader wraps inner with generic settings: a zero-byte read
// into a non-empty buffer is treated as end-of-stream.
func NewGenericReader(inner io.Reader) *StreamReader {
	return &StreamReader{inner: inner, stickyEnd: true}
}

// NewLullReader wraps inner such that a zero-byte read is reported as a
// Lull rather than End: the stream stays open, waiting to see if more
// data arrives.
func NewLullReader(inner io.Reader) *StreamReader {
	return &StreamReader{inner: inner, stickyEnd: false}
}

// NewLineReader wraps an inner reader that delivers input line by line,
// such as a terminal in canonical mode: every read whose last byte is
// '\n' is tagged Lull instead of Ready.
func NewLineReader(inner io.Reader) *StreamReader {
	return &StreamReader{inner: inner, stickyEnd: true, lineByLine: true}
}

// NewReader wraps inner, automatically selecting NewLineReader when
// inner exposes a file descriptor that ttyprobe reports is a terminal in
// canonical line-input mode, and NewGenericReader otherwise.
func NewReader(inner io.Reader) *StreamReader {
	if fd, ok := inner.(ttyprobe.FileDescriptor); ok && ttyprobe.CanonicalLineMode(fd) {
		debugLog.Debug("stream reader probe selected line-by-line mode")
		return NewLineReader(inner)
	}
	debugLog.Debug("stream reader probe selected generic mode")
	return NewGenericReader(inner)
}

// ReadOutcome implements Reader.
func (r *StreamReader) ReadOutcome(buf []byte) (ReadOutcome, error) {
	if r.ended {
		return ReadOutcomeEnd(0), nil
	}

	n, err := r.inner.Read(buf)
	switch {
	case n == 0 && len(buf) != 0 && (err == nil || errors.Is(err, io.EOF)):
		if r.stickyEnd {
			r.ended = true
			return ReadOutcomeEnd(0), nil
		}
		return ReadOutcomeLull(0), nil
	case errors.Is(err, io.EOF):
		// A non-zero read paired with io.EOF still carries data; report
		// it and let the next call observe the end.
		return r.tagReady(buf, n), nil
	case isInterrupted(err):
		return ReadOutcomeReady(0), nil
	case err != nil:
		return ReadOutcome{}, err
	default:
		return r.tagReady(buf, n), nil
	}
}

func (r *StreamReader) tagReady(buf []byte, n int) ReadOutcome {
	if r.lineByLine && n > 0 && buf[n-1] == '\n' {
		return ReadOutcomeLull(n)
	}
	return ReadOutcomeReady(n)
}

// ReadVectoredOutcome implements Reader. For the line-by-line rule, the
// last written byte is located by walking bufs in order and subtracting
// each slice's length from the remaining count: Lull is tagged exactly
// when the last emitted byte is '\n', regardless of which slice it
// landed in.
func (r *StreamReader) ReadVectoredOutcome(bufs [][]byte) (ReadOutcome, error) {
	if r.ended {
		return ReadOutcomeEnd(0), nil
	}

	ioBufs := make([][]byte, len(bufs))
	copy(ioBufs, bufs)

	n, err := readVectoredFallback(r.inner, ioBufs)

	anyNonEmpty := false
	for _, b := range bufs {
		if len(b) != 0 {
			anyNonEmpty = true
			break
		}
	}

	switch {
	case n == 0 && anyNonEmpty && (err == nil || errors.Is(err, io.EOF)):
		if r.stickyEnd {
			r.ended = true
			return ReadOutcomeEnd(0), nil
		}
		return ReadOutcomeLull(0), nil
	case isInterrupted(err):
		return ReadOutcomeReady(0), nil
	case err != nil && !errors.Is(err, io.EOF):
		return ReadOutcome{}, err
	}

	if r.lineByLine {
		remaining := n
		for _, b := range bufs {
			if remaining <= len(b) {
				if remaining > 0 && b[remaining-1] == '\n' {
					return ReadOutcomeLull(n), nil
				}
				break
			}
			remaining -= len(b)
		}
	}

	return ReadOutcomeReady(n), nil
}

// readVectoredFallback reads into bufs in order using plain Read calls,
// since io.Reader has no vectored form in the standard library; io.Writer
// has io.WriterTo/ReaderFrom fast paths but reads are inherently
// sequential here.
func readVectoredFallback(inner io.Reader, bufs [][]byte) (int, error) {
	total := 0
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		n, err := inner.Read(b)
		total += n
		if err != nil {
			return total, err
		}
		if n < len(b) {
			break
		}
	}
	return total, nil
}

// isInterrupted reports whether err is the host reader's way of saying a
// blocking syscall was interrupted and should simply be retried; it is
// absorbed here and reported to the caller as {0, Ready} rather than
// propagated.
func isInterrupted(err error) bool {
	return errors.Is(err, syscall.EINTR)
}

// Read implements Reader.
func (r *StreamReader) Read(buf []byte) (int, error) {
	return DefaultRead(r, buf)
}

// ReadVectored implements Reader.
func (r *StreamReader) ReadVectored(bufs [][]byte) (int, error) {
	return DefaultReadVectored(r, bufs)
}

// ReadToEnd implements Reader.
func (r *StreamReader) ReadToEnd(buf *[]byte) (int, error) {
	if r.ended {
		return 0, nil
	}
	return DefaultReadToEnd(r, buf)
}

// ReadToString implements Reader.
func (r *StreamReader) ReadToString(sb *strings.Builder) (int, error) {
	if r.ended {
		return 0, nil
	}
	return DefaultReadToString(r, sb)
}

// ReadExact implements Reader.
func (r *StreamReader) ReadExact(buf []byte) error {
	if r.ended {
		if len(buf) == 0 {
			return nil
		}
		return ErrUnexpectedEOF
	}
	return DefaultReadExact(r, buf)
}
