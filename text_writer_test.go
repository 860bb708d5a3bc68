package streamtext

import (
	"bytes"
	"testing"
)

func translateViaTextWriter(t *testing.T, bytesIn []byte) (string, error) {
	t.Helper()
	var out bytes.Buffer
	w := NewTextWriter(NewStreamWriter(&out))
	if err := w.WriteAll(bytesIn); err != nil {
		w.Abandon()
		return "", err
	}
	if _, err := w.CloseIntoInner(); err != nil {
		return "", err
	}
	return out.String(), nil
}

func textWriterTest(t *testing.T, bytesIn []byte, want string) {
	t.Helper()
	got, err := translateViaTextWriter(t, bytesIn)
	if err != nil {
		t.Fatalf("translateViaTextWriter(%q): %v", bytesIn, err)
	}
	if got != want {
		t.Errorf("translateViaTextWriter(%q) = %q, want %q", bytesIn, got, want)
	}
}

func textWriterTestError(t *testing.T, bytesIn []byte) {
	t.Helper()
	if _, err := translateViaTextWriter(t, bytesIn); err == nil {
		t.Errorf("translateViaTextWriter(%q) succeeded, want error", bytesIn)
	}
}

func TestTextWriterEmptyString(t *testing.T) {
	textWriterTestError(t, []byte(""))
}

func TestTextWriterNL(t *testing.T) {
	textWriterTest(t, []byte("\n"), "\n")
	textWriterTest(t, []byte("\nhello\nworld\n"), "\nhello\nworld\n")
}

func TestTextWriterBOM(t *testing.T) {
	textWriterTestError(t, []byte("\U0000FEFF"))
	textWriterTestError(t, []byte("\U0000FEFFhello\U0000FEFFworld\U0000FEFF"))
	textWriterTestError(t, []byte("\U0000FEFFhello world"))
	textWriterTestError(t, []byte("hello\U0000FEFFworld"))
	textWriterTestError(t, []byte("hello world\U0000FEFF"))
}

func TestTextWriterCRLF(t *testing.T) {
	textWriterTestError(t, []byte("\r\n"))
	textWriterTestError(t, []byte("\r\nhello\r\nworld\r\n"))
	textWriterTestError(t, []byte("\r\nhello world"))
	textWriterTestError(t, []byte("hello\r\nworld"))
	textWriterTestError(t, []byte("hello world\r\n"))
}

func TestTextWriterCRPlain(t *testing.T) {
	textWriterTestError(t, []byte("\r"))
	textWriterTestError(t, []byte("\rhello\rworld\r"))
	textWriterTestError(t, []byte("\rhello world"))
	textWriterTestError(t, []byte("hello\rworld"))
	textWriterTestError(t, []byte("hello world\r"))
}

func TestTextWriterFormFeed(t *testing.T) {
	textWriterTestError(t, []byte("\x0c"))
	textWriterTestError(t, []byte("\x0chello\x0cworld\x0c"))
	textWriterTestError(t, []byte("\x0chello world"))
	textWriterTestError(t, []byte("hello\x0cworld"))
	textWriterTestError(t, []byte("hello world\x0c"))
}

func TestTextWriterDel(t *testing.T) {
	textWriterTestError(t, []byte("\x7f"))
	textWriterTestError(t, []byte("\x7fhello\x7fworld\x7f"))
	textWriterTestError(t, []byte("\x7fhello world"))
	textWriterTestError(t, []byte("hello\x7fworld"))
	textWriterTestError(t, []byte("hello world\x7f"))
}

func TestTextWriterNonTextC0(t *testing.T) {
	for _, c := range []byte{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x0b, 0x0e, 0x0f,
		0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17,
		0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f,
	} {
		textWriterTestError(t, []byte{c})
	}
}

func TestTextWriterC1(t *testing.T) {
	for r := rune(0x80); r <= 0x9f; r++ {
		textWriterTestError(t, []byte(string(r)))
	}
}

func TestTextWriterNFC(t *testing.T) {
	textWriterTest(t, []byte("Å\n"), "Å\n")
	textWriterTest(t, []byte("Å\n"), "Å\n")
	textWriterTest(t, []byte("Å\n"), "Å\n")
}

func TestTextWriterLeadingNonstarters(t *testing.T) {
	textWriterTestError(t, []byte("̊"))
}

func TestTextWriterEsc(t *testing.T) {
	textWriterTestError(t, []byte("\x1b"))
	textWriterTestError(t, []byte("\x1b@"))
	textWriterTestError(t, []byte("\x1b@hello\x1b@world\x1b@"))
}

func TestTextWriterCSI(t *testing.T) {
	textWriterTestError(t, []byte("\x1b["))
	textWriterTestError(t, []byte("\x1b[@hello\x1b[@world\x1b[@"))
	textWriterTestError(t, []byte("\x1b[+@hello\x1b[+@world\x1b[+@"))
}

func TestTextWriterOSC(t *testing.T) {
	textWriterTestError(t, []byte("\x1b]"))
	textWriterTestError(t, []byte("\x1b]\x07hello\x1b]\x07world\x1b]\x07"))
	textWriterTestError(t, []byte("\x1b]message\x07hello\x1b]message\x07world\x1b]message\x07"))
	textWriterTestError(t, []byte("\x1b]mes\ns\tage\x07hello\x1b]mes\ns\tage\x07world\x1b]mes\ns\tage\x07"))
}

func TestTextWriterLinux(t *testing.T) {
	textWriterTestError(t, []byte("\x1b[[A"))
	textWriterTestError(t, []byte("\x1b[[Ahello\x1b[[Aworld\x1b[[A"))
}

func TestTextWriterCRLFCompatibility(t *testing.T) {
	var out bytes.Buffer
	w := NewCRLFCompatibilityWriter(NewStreamWriter(&out))
	if err := w.WriteAll([]byte("hello\nworld\n")); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if _, err := w.CloseIntoInner(); err != nil {
		t.Fatalf("CloseIntoInner: %v", err)
	}
	if want := "hello\r\nworld\r\n"; out.String() != want {
		t.Errorf("CRLF writer output = %q, want %q", out.String(), want)
	}
}

func TestTextWriterBOMCompatibility(t *testing.T) {
	var out bytes.Buffer
	w, err := NewBOMCompatibilityWriter(NewStreamWriter(&out))
	if err != nil {
		t.Fatalf("NewBOMCompatibilityWriter: %v", err)
	}
	if err := w.WriteAll([]byte("hello\n")); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if _, err := w.CloseIntoInner(); err != nil {
		t.Fatalf("CloseIntoInner: %v", err)
	}
	if want := "\U0000FEFFhello\n"; out.String() != want {
		t.Errorf("BOM writer output = %q, want %q", out.String(), want)
	}
}
