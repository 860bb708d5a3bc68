package streamtext

import "testing"

func TestIsNormalizationFormStarter(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', true},
		{'A', true},
		{'Å', true},         // U+00C5, ccc 0
		{'̊', false},   // combining ring above, ccc 230
		{'́', false},   // combining acute accent, ccc 230
		{'本', true},
	}
	for _, tt := range tests {
		if got := IsNormalizationFormStarter(tt.r); got != tt.want {
			t.Errorf("IsNormalizationFormStarter(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestIsForbiddenCharacter(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', false},
		{0x2FF0, true}, // IDEOGRAPHIC DESCRIPTION CHARACTER HORIZONTAL
		{0x2FFB, true},
		{0x2FEF, false},
		{0xFFF9, true}, // INTERLINEAR ANNOTATION ANCHOR
		{0xFFFB, true},
		{0xFFFC, false},
		{0xE0001, true}, // LANGUAGE TAG
		{0xE007F, true},
		{0xE0080, false},
	}
	for _, tt := range tests {
		if got := isForbiddenCharacter(tt.r); got != tt.want {
			t.Errorf("isForbiddenCharacter(%U) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestNamedScalarValues(t *testing.T) {
	if BOM != '\U0000FEFF' {
		t.Errorf("BOM = %U, want U+FEFF", BOM)
	}
	if Repl != '�' {
		t.Errorf("Repl = %U, want U+FFFD", Repl)
	}
	if FormFeed != '' {
		t.Errorf("FormFeed = %U, want U+000C", FormFeed)
	}
	if Esc != '' {
		t.Errorf("Esc = %U, want U+001B", Esc)
	}
	if Del != '' {
		t.Errorf("Del = %U, want U+007F", Del)
	}
}

func TestIsValidUTF8(t *testing.T) {
	if !isValidUTF8([]byte("hello")) {
		t.Error("isValidUTF8(valid ASCII) = false")
	}
	if isValidUTF8([]byte{0xff, 0xfe}) {
		t.Error("isValidUTF8(invalid bytes) = true")
	}
}
