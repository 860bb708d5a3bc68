package streamtext

import "io"

// StreamWriter adapts an io.Writer to implement Writer.
type StreamWriter struct {
	inner io.Writer
	ended bool
}

// NewStreamWriter constructs a StreamWriter wrapping inner.
func NewStreamWriter(inner io.Writer) *StreamWriter {
	return &StreamWriter{inner: inner}
}

// Unwrap returns the underlying io.Writer. It is inadvisable to write to
// it directly while this StreamWriter is still in use.
func (w *StreamWriter) Unwrap() io.Writer {
	return w.inner
}

// Write implements Writer.
func (w *StreamWriter) Write(buf []byte) (int, error) {
	if w.ended {
		return 0, ErrStreamEnded
	}
	return w.inner.Write(buf)
}

// WriteVectored implements Writer.
func (w *StreamWriter) WriteVectored(bufs [][]byte) (int, error) {
	if w.ended {
		return 0, ErrStreamEnded
	}
	return DefaultWriteVectored(w, bufs)
}

// WriteAll implements Writer.
func (w *StreamWriter) WriteAll(buf []byte) error {
	if w.ended {
		return ErrStreamEnded
	}
	return DefaultWriteAll(w, buf)
}

// WriteAllUTF8 implements Writer.
func (w *StreamWriter) WriteAllUTF8(s string) error {
	return w.WriteAll([]byte(s))
}

// WriteString implements Writer.
func (w *StreamWriter) WriteString(s string) error {
	return w.WriteAllUTF8(s)
}

// Flush implements Writer.
func (w *StreamWriter) Flush(status Status) error {
	if w.ended {
		return ErrStreamEnded
	}
	readiness, open := status.Open()
	if !open {
		w.ended = true
		return flushIfPossible(w.inner)
	}
	if readiness == Lull {
		return flushIfPossible(w.inner)
	}
	return nil
}

// Abandon implements Writer.
func (w *StreamWriter) Abandon() {
	w.ended = true
}

type flusher interface {
	Flush() error
}

type syncer interface {
	Sync() error
}

// flushIfPossible flushes inner if it exposes a Flush or Sync method
// (as *bufio.Writer and *os.File respectively do); plain io.Writer
// implementations with no such method have nothing to flush.
func flushIfPossible(w io.Writer) error {
	switch f := w.(type) {
	case flusher:
		return f.Flush()
	case syncer:
		return f.Sync()
	default:
		return nil
	}
}
