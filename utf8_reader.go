package streamtext

import (
	"strings"
	"unicode/utf8"
)

// incompleteHow controls what processOverflow does with an incomplete
// trailing byte sequence still sitting at the end of the overflow buffer.
type incompleteHow int

const (
	// incompleteExclude leaves the incomplete sequence in overflow,
	// waiting for a future read to possibly complete it.
	incompleteExclude incompleteHow = iota

	// incompleteInclude copies the incomplete sequence into the output
	// as raw bytes, so that it gets revalidated jointly with whatever
	// is read immediately afterward.
	incompleteInclude

	// incompleteReplace substitutes the incomplete sequence with Repl:
	// used once the underlying stream has ended, so there is no "more
	// data" left to wait for.
	incompleteReplace
)

// UTF8Reader wraps a Reader producing an arbitrary byte sequence and
// exposes it as a valid UTF-8 byte sequence, with malformed sequences
// replaced by U+FFFD in the manner of a lossy UTF-8 decode. A scalar
// value's encoding never straddles two ReadOutcome calls, so callers can
// always treat a returned buffer prefix as self-contained valid UTF-8.
type UTF8Reader struct {
	inner Reader

	// overflow holds bytes that were read but not yet translated into
	// a caller's buffer, because the buffer ran out of room or because
	// the sequence was incomplete and more bytes are needed to resolve
	// it. It always starts at the point where the last ReadOutcome
	// call's validation stopped: either a single byte identified as
	// invalid, or the start of an incomplete trailing sequence.
	overflow []byte
}

// NewUTF8Reader constructs a UTF8Reader wrapping inner.
func NewUTF8Reader(inner Reader) *UTF8Reader {
	return &UTF8Reader{inner: inner}
}

// Unwrap returns the wrapped Reader.
func (r *UTF8Reader) Unwrap() Reader {
	return r.inner
}

// ReadUTF8 behaves like ReadOutcome but documents, for callers holding a
// string-backed buffer, that the written prefix is always valid UTF-8
// and never splits a scalar value's encoding.
func (r *UTF8Reader) ReadUTF8(buf []byte) (ReadOutcome, error) {
	return r.ReadOutcome(buf)
}

// ReadOutcome implements Reader.
func (r *UTF8Reader) ReadOutcome(buf []byte) (ReadOutcome, error) {
	if len(buf) < MaxUTF8Size {
		return ReadOutcome{}, ErrInvalidInput
	}

	nread := 0

	if len(r.overflow) > 0 {
		n, ok := r.processOverflow(buf, incompleteInclude)
		if !ok {
			return ReadOutcome{}, ErrInvalidUTF8
		}
		nread += n
		if len(r.overflow) > 0 {
			return ReadOutcomeReady(nread), nil
		}
	}

	outcome, err := r.inner.ReadOutcome(buf[nread:])
	if err != nil {
		return ReadOutcome{}, err
	}
	nread += outcome.Size

	if utf8.Valid(buf[:nread]) {
		return ReadOutcome{Size: nread, Status: outcome.Status}, nil
	}

	validLen, _, _ := decodeStep(buf[:nread])
	afterValid := append([]byte(nil), buf[validLen:nread]...)
	nread = validLen

	r.overflow = afterValid

	how := incompleteExclude
	if outcome.Status.IsEnd() {
		how = incompleteReplace
	}
	n, ok := r.processOverflow(buf[nread:], how)
	if !ok {
		return ReadOutcome{}, ErrInvalidUTF8
	}
	nread += n

	if len(r.overflow) == 0 {
		return ReadOutcome{Size: nread, Status: outcome.Status}, nil
	}
	return ReadOutcomeReady(nread), nil
}

// processOverflow drains r.overflow into buf, translating it into valid
// UTF-8: runs of already-valid bytes are copied verbatim, a byte
// identified as a definite encoding error is replaced with Repl, and an
// incomplete trailing sequence is handled per how. It reports ok=false
// only when it could not make any progress at all (buf has no room even
// for a single Repl), which the caller should surface as an error.
func (r *UTF8Reader) processOverflow(buf []byte, how incompleteHow) (int, bool) {
	nread := 0

	for {
		origLen := len(r.overflow)
		num := origLen
		if room := len(buf) - nread; room < num {
			num = room
		}
		chunk := r.overflow[:num]

		if utf8.Valid(chunk) {
			copy(buf[nread:nread+num], chunk)
			r.overflow = r.overflow[num:]
			nread += num
			break
		}

		validLen, errLen, incomplete := decodeStep(chunk)
		copy(buf[nread:nread+validLen], chunk[:validLen])
		nread += validLen
		r.overflow = r.overflow[validLen:]

		if !incomplete {
			// errLen is the length of the maximal subpart that one Repl
			// stands for (see decodeStep).
			if len(buf)-nread >= utf8.RuneLen(Repl) {
				nread += utf8.EncodeRune(buf[nread:], Repl)
				r.overflow = r.overflow[errLen:]
				continue
			}
			break
		}

		switch {
		case how == incompleteReplace && num == origLen:
			if len(buf)-nread >= utf8.RuneLen(Repl) {
				nread += utf8.EncodeRune(buf[nread:], Repl)
				r.overflow = nil
			} else if len(r.overflow) == 0 {
				return nread, false
			}
		case how == incompleteInclude && num == origLen:
			tail := r.overflow
			n := len(buf) - nread
			if n > len(tail) {
				n = len(tail)
			}
			if n > 0 {
				copy(buf[nread:nread+n], tail[:n])
				nread += n
				r.overflow = tail[n:]
			}
		}
		break
	}

	return nread, true
}

// ReadVectoredOutcome implements Reader.
func (r *UTF8Reader) ReadVectoredOutcome(bufs [][]byte) (ReadOutcome, error) {
	return DefaultReadVectoredOutcome(r, bufs)
}

// Read implements Reader.
func (r *UTF8Reader) Read(buf []byte) (int, error) {
	return DefaultRead(r, buf)
}

// ReadVectored implements Reader.
func (r *UTF8Reader) ReadVectored(bufs [][]byte) (int, error) {
	return DefaultReadVectored(r, bufs)
}

// ReadToEnd implements Reader.
func (r *UTF8Reader) ReadToEnd(buf *[]byte) (int, error) {
	return DefaultReadToEnd(r, buf)
}

// ReadToString implements Reader.
func (r *UTF8Reader) ReadToString(sb *strings.Builder) (int, error) {
	return DefaultReadToString(r, sb)
}

// ReadExact implements Reader.
func (r *UTF8Reader) ReadExact(buf []byte) error {
	return DefaultReadExact(r, buf)
}

// decodeStep scans b for its longest valid UTF-8 prefix. If the prefix
// is shorter than len(b), it also classifies what immediately follows:
// incomplete reports whether the remaining bytes are a valid-so-far
// prefix of a longer encoding that more data could still complete, in
// which case errLen is 0; otherwise the bytes at validLen are a definite
// encoding error and errLen is the length of its maximal subpart: the
// lead byte plus any following bytes that still formed a valid prefix of
// an encoding (so "\xE2\x98A" yields errLen 2, not two separate errors).
func decodeStep(b []byte) (validLen, errLen int, incomplete bool) {
	i := 0
	for i < len(b) {
		if !utf8.FullRune(b[i:]) {
			return i, 0, true
		}
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			n := 1
			for i+n < len(b) && !utf8.FullRune(b[i:i+n+1]) {
				n++
			}
			return i, n, false
		}
		i += size
	}
	return i, 0, false
}
