package streamtext

import "golang.org/x/text/unicode/norm"

// charQueue is a FIFO of scalar values produced by the text reader's
// control/escape state machine, pending normalization. It has a single
// owner (the TextReader); there is no shared/reference-counted handle.
// Instead of a queue-plus-iterator pair that alias each other, draining
// moves the whole pending run out of the queue and into a standalone,
// already-normalized cursor: see normalizedRun below.
type charQueue struct {
	runes []rune
}

func (q *charQueue) push(r rune) {
	q.runes = append(q.runes, r)
}

func (q *charQueue) len() int {
	return len(q.runes)
}

func (q *charQueue) empty() bool {
	return len(q.runes) == 0
}

// drain removes and returns every rune currently queued.
func (q *charQueue) drain() []rune {
	out := q.runes
	q.runes = nil
	return out
}

// normalizedRun is a cursor over a batch of runes that have already been
// passed through the Stream-Safe Text Process and NFC composition
// (golang.org/x/text/unicode/norm applies both in one pass: its internal
// reorder buffer inserts a combining grapheme joiner whenever a segment
// would exceed the Stream-Safe non-starter bound before composing).
// Forbidden characters (see isForbiddenCharacter) are filtered to Repl as
// the cursor is read.
type normalizedRun struct {
	text []rune
	pos  int
}

// newNormalizedRun drains q, applies Stream-Safe + NFC to everything
// that was queued, and returns a cursor over the result. It must only be
// called when q is non-empty.
func newNormalizedRun(q *charQueue) *normalizedRun {
	runes := q.drain()
	s := string(runes)
	normalized := norm.NFC.AppendString(make([]byte, 0, len(s)), s)
	return &normalizedRun{text: []rune(string(normalized))}
}

// next returns the next scalar value in the run, with forbidden
// characters replaced by Repl, or ok == false once the run is exhausted.
func (run *normalizedRun) next() (r rune, ok bool) {
	if run.pos >= len(run.text) {
		return 0, false
	}
	r = run.text[run.pos]
	run.pos++
	if isForbiddenCharacter(r) {
		r = Repl
	}
	return r, true
}

func (run *normalizedRun) exhausted() bool {
	return run.pos >= len(run.text)
}
