package streamtext

// Readiness describes whether a stream's producer may have more bytes
// ready without delay, or has reached a transient quiescent point. Most
// callers of this package can ignore it entirely.
type Readiness int

const (
	// Ready means more bytes may follow without delay.
	Ready Readiness = iota

	// Lull means the producer has no further bytes ready right now, but
	// the stream is not closed. More bytes may arrive later.
	Lull
)

func (r Readiness) String() string {
	switch r {
	case Ready:
		return "Ready"
	case Lull:
		return "Lull"
	default:
		return "Readiness(?)"
	}
}

// Status is what is known about a stream's future: it either remains
// Open with some Readiness, or it has ended.
type Status struct {
	end       bool
	readiness Readiness
}

// StatusReady returns a Status for a stream that remains open and ready.
func StatusReady() Status {
	return Status{readiness: Ready}
}

// StatusReadyOrNot returns StatusReady() if ready is true, else
// StatusEnd().
func StatusReadyOrNot(ready bool) Status {
	if ready {
		return StatusReady()
	}
	return StatusEnd()
}

// StatusLull returns a Status for a stream that remains open but has
// hit a transient lull.
func StatusLull() Status {
	return Status{readiness: Lull}
}

// StatusEnd returns a Status for a stream that has ended.
func StatusEnd() Status {
	return Status{end: true}
}

// IsEnd reports whether the status is Status.End.
func (s Status) IsEnd() bool {
	return s.end
}

// Open reports whether the stream remains open, and if so its
// Readiness. ok is false when the status is End.
func (s Status) Open() (readiness Readiness, ok bool) {
	return s.readiness, !s.end
}

// Readiness returns the stream's readiness when open, or Ready when
// the stream has ended (callers that only care about readiness when
// the stream is still open should check IsEnd first).
func (s Status) Readiness() Readiness {
	return s.readiness
}

func (s Status) String() string {
	if s.end {
		return "End"
	}
	return "Open(" + s.readiness.String() + ")"
}

// Equal reports whether two Status values describe the same state.
func (s Status) Equal(other Status) bool {
	return s == other
}
