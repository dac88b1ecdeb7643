package vtcore

import "testing"

func TestEncodeKeyArrowNoModsCursorMode(t *testing.T) {
	got := EncodeKey(KeyUp, 0, "", false)
	if string(got) != "\x1b[A" {
		t.Fatalf("got %q, want CSI A", got)
	}
}

func TestEncodeKeyArrowAppCursor(t *testing.T) {
	got := EncodeKey(KeyUp, 0, "", true)
	if string(got) != "\x1bOA" {
		t.Fatalf("got %q, want SS3 A", got)
	}
}

func TestEncodeKeyArrowWithShift(t *testing.T) {
	got := EncodeKey(KeyUp, ModShift, "", false)
	if string(got) != "\x1b[1;2A" {
		t.Fatalf("got %q, want CSI 1;2A", got)
	}
}

func TestEncodeKeyArrowWithCtrlAlt(t *testing.T) {
	got := EncodeKey(KeyUp, ModCtrl|ModAlt, "", false)
	if string(got) != "\x1b[1;7A" {
		t.Fatalf("got %q, want CSI 1;7A", got)
	}
}

func TestEncodeKeyF5WithShift(t *testing.T) {
	got := EncodeKey(KeyF5, ModShift, "", false)
	if string(got) != "\x1b[15;2~" {
		t.Fatalf("got %q, want CSI 15;2~", got)
	}
}

func TestEncodeKeyFunctionKeys(t *testing.T) {
	if got := EncodeKey(KeyF1, 0, "", false); string(got) != "\x1bOP" {
		t.Fatalf("F1 got %q", got)
	}
	if got := EncodeKey(KeyF5, 0, "", false); string(got) != "\x1b[15~" {
		t.Fatalf("F5 got %q", got)
	}
}

func TestEncodeKeyDeleteVsBackspace(t *testing.T) {
	if got := EncodeKey(KeyDelete, 0, "", false); string(got) != "\x1b[3~" {
		t.Fatalf("Delete got %q", got)
	}
	if got := EncodeKey(KeyBackspace, 0, "", false); string(got) != "\x7f" {
		t.Fatalf("Backspace got %q", got)
	}
}

func TestEncodeKeyBackspaceWithCtrlFallsThrough(t *testing.T) {
	got := EncodeKey(KeyBackspace, ModCtrl, "\x7f", false)
	if string(got) != "\x7f" {
		t.Fatalf("got %q", got)
	}
}

func TestEncodeKeyReturnWithShiftUsesCSI27(t *testing.T) {
	got := EncodeKey(KeyReturn, ModShift, "", false)
	if string(got) != "\x1b[27;2;13~" {
		t.Fatalf("got %q", got)
	}
}

func TestEncodeKeyPlainTextPassthrough(t *testing.T) {
	got := EncodeRune('a', 0)
	if string(got) != "a" {
		t.Fatalf("got %q", got)
	}
}

func TestEncodeKeyAltPrefixesEscape(t *testing.T) {
	got := EncodeRune('a', ModAlt)
	if string(got) != "\x1ba" {
		t.Fatalf("got %q, want ESC a", got)
	}
}

func TestEncodeKeyEscapePassesThroughAsLiteral(t *testing.T) {
	got := EncodeKey(KeyEscape, 0, "\x1b", false)
	if string(got) != "\x1b" {
		t.Fatalf("got %q, want bare ESC", got)
	}
}

func TestEncodeKeyKeypadArrowRemapsToCursorWhenAppKeypadOff(t *testing.T) {
	got := EncodeKey(KeyKPUp, 0, "", false)
	want := EncodeKey(KeyUp, 0, "", false)
	if string(got) != string(want) {
		t.Fatalf("got %q, want %q (remapped to KeyUp)", got, want)
	}
}

func TestEncodeKeyKeypadDigitWithShiftUsesAppKeypadSequence(t *testing.T) {
	// Shift alone resolves appkp true (app-keypad mode is hardcoded off in
	// the grounding source, collapsing resolveAppKeypad to plain shift).
	got := EncodeKey(KeyKP5, ModShift, "", false)
	if string(got) != "\x1bOu" {
		t.Fatalf("got %q, want SS3 u", got)
	}
}

func TestEncodeKeyKeypadArrowWithShiftRemapsThenGoesAppKeypad(t *testing.T) {
	got := EncodeKey(KeyKPUp, ModShift, "", false)
	if string(got) != "\x1bOx" {
		t.Fatalf("got %q, want SS3 x (KPUp -> KP8 under app-keypad)", got)
	}
}

func TestEncodeKeyKeypadSpaceFallsBackToLiteralText(t *testing.T) {
	got := EncodeKey(KeyKPSpace, 0, " ", false)
	if string(got) != " " {
		t.Fatalf("got %q, want literal space", got)
	}
}

func TestEncodeKeyKeypadEnterRemapsToReturn(t *testing.T) {
	// ModCtrl (not Shift) so app-keypad resolution stays false and the two
	// calls take the same non-appkp branch; this proves the KPEnter->Return
	// remap fired rather than both sides coincidentally falling back empty.
	got := EncodeKey(KeyKPEnter, ModCtrl, "", false)
	want := EncodeKey(KeyReturn, ModCtrl, "", false)
	if string(got) != string(want) || len(got) == 0 {
		t.Fatalf("got %q, want %q (remapped to KeyReturn)", got, want)
	}
}
