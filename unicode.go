package streamtext

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	// MaxUTF8Size is the maximum number of bytes a single UTF-8 encoded
	// scalar value can occupy.
	MaxUTF8Size = 4

	// NormalizationBufferLen is the minimum number of scalar values the
	// text reader buffers before running the Stream-Safe + NFC pipeline,
	// unless the source sequence has ended. NFC is not closed under
	// concatenation, so normalizing in windows smaller than this would
	// change output for streams whose chunk boundaries fall mid
	// combining-sequence.
	NormalizationBufferLen = 32

	// NormalizationBufferSize is the minimum caller buffer size, in
	// bytes, that the text reader requires: enough room for
	// NormalizationBufferLen scalars, each up to MaxUTF8Size bytes, plus
	// headroom for a Stream-Safe combining-grapheme-joiner insertion and
	// the NFC expansion of the buffer's final scalar.
	NormalizationBufferSize = (NormalizationBufferLen + 2) * MaxUTF8Size
)

// Named scalar values used throughout the sanitizer and canonicalizer.
const (
	// BOM is U+FEFF BYTE ORDER MARK.
	BOM = '\U0000FEFF'

	// Repl is U+FFFD REPLACEMENT CHARACTER.
	Repl = '�'

	// FormFeed is U+000C FORM FEED.
	FormFeed = ''

	// Esc is U+001B ESCAPE.
	Esc = ''

	// Del is U+007F DELETE.
	Del = ''
)

// IsNormalizationFormStarter reports whether r has canonical combining
// class zero, i.e. whether NFC-normalized text may legally begin (or
// resume, after a lull) with r.
func IsNormalizationFormStarter(r rune) bool {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return norm.NFC.Properties(buf[:n]).CCC() == 0
}

// isForbiddenCharacter reports whether r is on the minimal forbidden-
// character set described by UAX #15 §11.4 (Forbidding Characters): the
// Ideographic Description Characters, the deprecated Interlinear
// Annotation characters, and the Unicode tag characters. Text containing
// these is accepted but the offending scalar is replaced with Repl so
// that normalized output never re-introduces characters that UAX #15
// advises stripping before normalizing for identifier or security
// purposes.
func isForbiddenCharacter(r rune) bool {
	switch {
	case r >= 0x2FF0 && r <= 0x2FFB: // Ideographic Description Characters
		return true
	case r >= 0xFFF9 && r <= 0xFFFB: // Interlinear annotation anchor/separator/terminator
		return true
	case r >= 0xE0000 && r <= 0xE007F: // Tag characters
		return true
	default:
		return false
	}
}

// isValidUTF8 reports whether b is entirely valid UTF-8.
func isValidUTF8(b []byte) bool {
	return utf8.Valid(b)
}
