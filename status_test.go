package streamtext

import "testing"

func TestStatusEnd(t *testing.T) {
	s := StatusEnd()
	if !s.IsEnd() {
		t.Fatal("StatusEnd().IsEnd() = false, want true")
	}
	if _, ok := s.Open(); ok {
		t.Fatal("StatusEnd().Open() reported ok = true")
	}
	if got, want := s.String(), "End"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStatusReadyAndLull(t *testing.T) {
	tests := []struct {
		status    Status
		readiness Readiness
		str       string
	}{
		{StatusReady(), Ready, "Open(Ready)"},
		{StatusLull(), Lull, "Open(Lull)"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if tt.status.IsEnd() {
				t.Fatal("IsEnd() = true, want false")
			}
			readiness, ok := tt.status.Open()
			if !ok {
				t.Fatal("Open() reported ok = false")
			}
			if readiness != tt.readiness {
				t.Errorf("Open() readiness = %v, want %v", readiness, tt.readiness)
			}
			if got := tt.status.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestStatusReadyOrNot(t *testing.T) {
	if !StatusReadyOrNot(true).Equal(StatusReady()) {
		t.Error("StatusReadyOrNot(true) != StatusReady()")
	}
	if !StatusReadyOrNot(false).Equal(StatusEnd()) {
		t.Error("StatusReadyOrNot(false) != StatusEnd()")
	}
}

func TestStatusEqual(t *testing.T) {
	if !StatusReady().Equal(StatusReady()) {
		t.Error("StatusReady() != StatusReady()")
	}
	if StatusReady().Equal(StatusLull()) {
		t.Error("StatusReady() == StatusLull()")
	}
	if StatusEnd().Equal(StatusReady()) {
		t.Error("StatusEnd() == StatusReady()")
	}
}
