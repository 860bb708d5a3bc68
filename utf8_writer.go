package streamtext

import "unicode/utf8"

// UTF8Writer wraps a Writer and validates that everything written to it
// is valid UTF-8, rejecting (and abandoning) the underlying stream on
// malformed input. Write is not guaranteed to consume buf in a single
// call: a short write could otherwise split a multi-byte encoding, so
// it retries internally up to the valid prefix it finds.
type UTF8Writer struct {
	inner Writer
}

// NewUTF8Writer constructs a UTF8Writer wrapping inner.
func NewUTF8Writer(inner Writer) *UTF8Writer {
	return &UTF8Writer{inner: inner}
}

// Unwrap returns the wrapped Writer.
func (w *UTF8Writer) Unwrap() Writer {
	return w.inner
}

// CloseIntoInner flushes the stream as ended and returns the wrapped
// Writer, for callers that want to keep using it directly afterward.
func (w *UTF8Writer) CloseIntoInner() (Writer, error) {
	if err := w.inner.Flush(StatusEnd()); err != nil {
		return nil, err
	}
	return w.inner, nil
}

// Write implements Writer.
func (w *UTF8Writer) Write(buf []byte) (int, error) {
	if utf8.Valid(buf) {
		if err := w.inner.WriteAllUTF8(string(buf)); err != nil {
			return 0, err
		}
		return len(buf), nil
	}

	validLen, _, _ := decodeStep(buf)
	if validLen != 0 {
		if err := w.inner.WriteAll(buf[:validLen]); err != nil {
			return 0, err
		}
		return validLen, nil
	}

	w.inner.Abandon()
	return 0, ErrInvalidUTF8
}

// WriteVectored implements Writer.
func (w *UTF8Writer) WriteVectored(bufs [][]byte) (int, error) {
	return DefaultWriteVectored(w, bufs)
}

// WriteAll implements Writer.
func (w *UTF8Writer) WriteAll(buf []byte) error {
	return DefaultWriteAll(w, buf)
}

// WriteAllUTF8 implements Writer: since s is already known to be valid
// UTF-8, it bypasses this writer's own validation pass.
func (w *UTF8Writer) WriteAllUTF8(s string) error {
	return w.inner.WriteAllUTF8(s)
}

// WriteString implements Writer.
func (w *UTF8Writer) WriteString(s string) error {
	return w.WriteAllUTF8(s)
}

// Flush implements Writer.
func (w *UTF8Writer) Flush(status Status) error {
	return w.inner.Flush(status)
}

// Abandon implements Writer.
func (w *UTF8Writer) Abandon() {
	w.inner.Abandon()
}
