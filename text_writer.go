package streamtext

import (
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// TextWriter wraps a UTF8Writer and enforces that everything written to
// it is well-formed plain text: data must be valid UTF-8, must not
// contain U+FEFF (BOM), must not contain control codes other than '\n'
// and '\t', and the stream must end in '\n'. It applies Normalization
// Form C with the Stream-Safe Text Process, and can optionally
// translate '\n' to "\r\n" for consumers that need that.
//
// Write is not guaranteed to perform a single operation: a short write
// could otherwise produce invalid UTF-8, so it retries internally.
type TextWriter struct {
	inner *UTF8Writer
	buf   strings.Builder

	// nl is true once the last byte handed to inner was '\n', or once
	// Abandon has been called (which suppresses the trailing-newline
	// requirement entirely). It starts false, so a TextWriter that is
	// garbage collected having never written anything, and never
	// explicitly closed or abandoned, still trips the finalizer below.
	nl bool

	crlfCompatibility bool
	expectStarter     bool
}

// NewTextWriter constructs a TextWriter wrapping inner.
func NewTextWriter(inner Writer) *TextWriter {
	return newTextWriter(inner, false)
}

// NewBOMCompatibilityWriter is like NewTextWriter, but first writes a
// U+FEFF (BOM) to inner, for consumers that rely on a leading BOM to
// determine the text encoding.
func NewBOMCompatibilityWriter(inner Writer) (*TextWriter, error) {
	var bomBytes [MaxUTF8Size]byte
	n := utf8.EncodeRune(bomBytes[:], BOM)
	if _, err := inner.Write(bomBytes[:n]); err != nil {
		return nil, err
	}
	return newTextWriter(inner, false), nil
}

// NewCRLFCompatibilityWriter is like NewTextWriter, but translates '\n'
// to "\r\n" in its output. Most consumers, even on Windows, are fine
// with plain '\n'; this exists for the few formats (such as IETF RFCs)
// that require CRLF line endings.
func NewCRLFCompatibilityWriter(inner Writer) *TextWriter {
	return newTextWriter(inner, true)
}

func newTextWriter(inner Writer, crlf bool) *TextWriter {
	w := &TextWriter{
		inner:             NewUTF8Writer(inner),
		crlfCompatibility: crlf,
		expectStarter:     true,
	}
	runtime.SetFinalizer(w, (*TextWriter).finalize)
	return w
}

func (w *TextWriter) finalize() {
	if !w.nl {
		panic("TextWriter garbage collected without ending in a newline: call Flush(StatusEnd()), CloseIntoInner, or Abandon first")
	}
}

// Unwrap returns the wrapped UTF8Writer.
func (w *TextWriter) Unwrap() *UTF8Writer {
	return w.inner
}

// CloseIntoInner checks the trailing-newline invariant, flushes, and
// returns the wrapped Writer for callers that want to keep using it
// directly afterward.
func (w *TextWriter) CloseIntoInner() (Writer, error) {
	if err := w.checkNl(StatusEnd()); err != nil {
		return nil, err
	}
	return w.inner.CloseIntoInner()
}

// AbandonIntoInner abandons the stream, then closes the wrapped UTF8Writer
// the way CloseIntoInner does and returns its result. Because Abandon has
// already latched the inner Writer ended, an inner Writer that rejects
// Flush after Abandon (as StreamWriter does) makes this return
// ErrStreamEnded rather than the Writer.
func (w *TextWriter) AbandonIntoInner() (Writer, error) {
	w.Abandon()
	return w.inner.CloseIntoInner()
}

func (w *TextWriter) normalWriteAllUTF8(s string) error {
	w.buf.Reset()
	w.buf.WriteString(norm.NFC.String(s))
	return w.writeBuffer()
}

func (w *TextWriter) crlfWriteAllUTF8(s string) error {
	w.buf.Reset()
	first := true
	for _, part := range strings.Split(s, "\n") {
		if first {
			first = false
		} else {
			w.buf.WriteString("\r\n")
		}
		w.buf.WriteString(norm.NFC.String(part))
	}
	return w.writeBuffer()
}

func (w *TextWriter) writeBuffer() error {
	s := w.buf.String()

	if w.expectStarter {
		w.expectStarter = false
		if len(s) > 0 {
			c, _ := utf8.DecodeRuneInString(s)
			if !IsNormalizationFormStarter(c) {
				w.Abandon()
				return ErrNonStarter
			}
		}
	}

	for _, c := range s {
		if (unicode.IsControl(c) && c != '\n' && c != '\t') || c == BOM {
			w.Abandon()
			return ErrForbiddenControl
		}
	}

	if err := w.inner.WriteAllUTF8(s); err != nil {
		w.Abandon()
		return err
	}

	if len(s) > 0 {
		w.nl = s[len(s)-1] == '\n'
	}

	w.buf.Reset()
	return nil
}

func (w *TextWriter) checkNl(status Status) error {
	readiness, open := status.Open()
	if !open {
		if !w.nl {
			w.Abandon()
			return ErrMissingTrailingNewline
		}
		return nil
	}
	if readiness == Lull && !w.nl {
		w.Abandon()
		return ErrMissingTrailingNewline
	}
	return nil
}

// Write implements Writer.
func (w *TextWriter) Write(buf []byte) (int, error) {
	if utf8.Valid(buf) {
		if err := w.WriteAllUTF8(string(buf)); err != nil {
			return 0, err
		}
		return len(buf), nil
	}

	validLen, _, _ := decodeStep(buf)
	if validLen != 0 {
		if err := w.WriteAll(buf[:validLen]); err != nil {
			return 0, err
		}
		return validLen, nil
	}

	w.Abandon()
	return 0, ErrInvalidUTF8
}

// WriteVectored implements Writer.
func (w *TextWriter) WriteVectored(bufs [][]byte) (int, error) {
	return DefaultWriteVectored(w, bufs)
}

// WriteAll implements Writer.
func (w *TextWriter) WriteAll(buf []byte) error {
	return DefaultWriteAll(w, buf)
}

// WriteAllUTF8 implements Writer.
func (w *TextWriter) WriteAllUTF8(s string) error {
	if w.crlfCompatibility {
		return w.crlfWriteAllUTF8(s)
	}
	return w.normalWriteAllUTF8(s)
}

// WriteString implements Writer.
func (w *TextWriter) WriteString(s string) error {
	return w.WriteAllUTF8(s)
}

// Flush implements Writer.
func (w *TextWriter) Flush(status Status) error {
	if !status.Equal(StatusReady()) {
		w.expectStarter = true
	}
	if err := w.checkNl(status); err != nil {
		return err
	}
	return w.inner.Flush(status)
}

// Abandon implements Writer.
func (w *TextWriter) Abandon() {
	w.inner.Abandon()
	w.nl = true
}
