package vtcore

import "strconv"

// Key identifies a non-printable key the host wants encoded into PTY input
// bytes, grounded on the KeyXxx enumeration in original_source/src/keymap.h.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyReturn
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyBegin
	KeyEnd
	KeyHome
	KeyInsert
	KeyDelete
	KeyPgUp
	KeyPgDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyF25
	// The keypad cluster (keymap.h's KPXxx range). Which sequence (if any)
	// a keypad key produces depends on resolveAppKeypad/remapKeypad below.
	KeyKPSpace
	KeyKPTab
	KeyKPEnter
	KeyKPMultiply
	KeyKPAdd
	KeyKPSeparator
	KeyKPSubtract
	KeyKPDecimal
	KeyKPDivide
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPEqual
	KeyKPUp
	KeyKPDown
	KeyKPRight
	KeyKPLeft
	KeyKPBegin
	KeyKPEnd
	KeyKPHome
	KeyKPInsert
	KeyKPDelete
	KeyKPPgUp
	KeyKPPgDown
	KeyCount
)

// KeyMod is a bitmask of modifier keys held during a keypress, matching
// the low bits of KEYMOD_* in the source.
type KeyMod uint8

const (
	ModShift KeyMod = 1 << iota
	ModAlt
	ModCtrl
	ModNumLock
)

// paramMask is PARAM_MASK: NumLock is part of KEYMOD_MASK but never feeds
// the CSI modifier parameter, only keypad resolution (resolveAppKeypad).
const paramMask = ModShift | ModAlt | ModCtrl

// modsToParam is mods_to_param: the CSI modifier parameter is the masked
// bits plus one, or 0 (omitted) when no relevant modifier is held.
func modsToParam(mods KeyMod) int {
	m := mods & paramMask
	if m == 0 {
		return 0
	}
	return int(m) + 1
}

// paramByte marks where modsToParam's value is substituted into a template
// string returned by querySubstitute, mirroring PARAM_BYTE in the source.
const paramByte = '\x01'

// resolveAppKeypad is resolve_appkeypad in term_keyboard.c. Application
// keypad mode is hardcoded off there (MODE_APPKEYPAD is a "temporary" stub,
// same as this port's keyboard.go never setting it), which collapses the
// ternary to its false branch — so this always resolves to plain shift.
// NumLock is still read here, matching the source line for line, rather
// than simplified away now that app-keypad mode can never flip it live.
func resolveAppKeypad(mods KeyMod) bool {
	const modeAppKeypad = false
	shift := mods&ModShift != 0
	numlk := mods&ModNumLock != 0
	if !numlk && modeAppKeypad {
		return !shift
	}
	return shift
}

// remapKeypad is remap_keypad: under application-keypad mode a keypad key
// keeps (or gains) its own digit/operator identity; otherwise it stands in
// for the cursor/edit/printable key it overlays. KPSpace/KPEqual have no
// Key counterpart when not remapped (the source lets them fall through as
// the literal ASCII ' '/'=' characters), so they resolve to KeyNone —
// querySubstitute returns "" for that and the caller's literal text wins.
func remapKeypad(key Key, appkp bool) Key {
	switch key {
	case KeyKPUp:
		if appkp {
			return KeyKP8
		}
		return KeyUp
	case KeyKPDown:
		if appkp {
			return KeyKP2
		}
		return KeyDown
	case KeyKPRight:
		if appkp {
			return KeyKP6
		}
		return KeyRight
	case KeyKPLeft:
		if appkp {
			return KeyKP4
		}
		return KeyLeft
	case KeyKPBegin:
		if appkp {
			return KeyKP5
		}
		return KeyBegin
	case KeyKPEnd:
		if appkp {
			return KeyKP1
		}
		return KeyEnd
	case KeyKPHome:
		if appkp {
			return KeyKP7
		}
		return KeyHome
	case KeyKPInsert:
		if appkp {
			return KeyKP0
		}
		return KeyInsert
	case KeyKPDelete:
		if appkp {
			return KeyKPDecimal
		}
		return KeyDelete
	case KeyKPPgUp:
		if appkp {
			return KeyKP9
		}
		return KeyPgUp
	case KeyKPPgDown:
		if appkp {
			return KeyKP3
		}
		return KeyPgDown
	case KeyKPTab:
		if appkp {
			return key
		}
		return KeyTab
	case KeyKPEnter:
		if appkp {
			return key
		}
		return KeyReturn
	case KeyKPSpace:
		if appkp {
			return key
		}
		return KeyNone
	case KeyKPEqual:
		if appkp {
			return key
		}
		return KeyNone
	}
	return key
}

// querySubstitute returns the template sequence for key, or "" if key has
// no predefined encoding and the caller should fall back to raw text.
// appCursor selects SS3 vs CSI for the cursor-key cluster (DECCKM).
func querySubstitute(key Key, mods KeyMod, appCursor bool) string {
	const esc = "\x1b"
	const csi = esc + "["
	const ss3 = esc + "O"
	p := string(paramByte)

	appkp := resolveAppKeypad(mods)
	key = remapKeypad(key, appkp)

	if appkp {
		switch key {
		case KeyKPSpace:
			return ss3 + " "
		case KeyKPTab:
			return ss3 + "I"
		case KeyKPEnter:
			return ss3 + "M"
		case KeyKPMultiply:
			return ss3 + "j"
		case KeyKPAdd:
			return ss3 + "k"
		case KeyKPSeparator:
			return ss3 + "l"
		case KeyKPSubtract:
			return ss3 + "m"
		case KeyKPDecimal:
			return ss3 + "n"
		case KeyKPDivide:
			return ss3 + "o"
		case KeyKP0:
			return ss3 + "p"
		case KeyKP1:
			return ss3 + "q"
		case KeyKP2:
			return ss3 + "r"
		case KeyKP3:
			return ss3 + "s"
		case KeyKP4:
			return ss3 + "t"
		case KeyKP5:
			return ss3 + "u"
		case KeyKP6:
			return ss3 + "v"
		case KeyKP7:
			return ss3 + "w"
		case KeyKP8:
			return ss3 + "x"
		case KeyKP9:
			return ss3 + "y"
		case KeyKPEqual:
			return ss3 + "X"
		}
	}

	switch key {
	case KeyUp:
		if appCursor {
			return ss3 + "A"
		}
		return csi + p + "A"
	case KeyDown:
		if appCursor {
			return ss3 + "B"
		}
		return csi + p + "B"
	case KeyRight:
		if appCursor {
			return ss3 + "C"
		}
		return csi + p + "C"
	case KeyLeft:
		if appCursor {
			return ss3 + "D"
		}
		return csi + p + "D"
	case KeyBegin:
		if appCursor {
			return ss3 + "E"
		}
		return csi + p + "E"
	case KeyEnd:
		if appCursor {
			return ss3 + "F"
		}
		return csi + p + "F"
	case KeyHome:
		if appCursor {
			return ss3 + "H"
		}
		return csi + p + "H"

	case KeyInsert:
		return csi + "2" + p + "~"
	case KeyDelete:
		return csi + "3" + p + "~"
	case KeyPgUp:
		return csi + "5" + p + "~"
	case KeyPgDown:
		return csi + "6" + p + "~"

	case KeyF1:
		return ss3 + p + "P"
	case KeyF2:
		return ss3 + p + "Q"
	case KeyF3:
		return ss3 + p + "R"
	case KeyF4:
		return ss3 + p + "S"
	case KeyF5:
		return csi + "15" + p + "~"
	case KeyF6:
		return csi + "17" + p + "~"
	case KeyF7:
		return csi + "18" + p + "~"
	case KeyF8:
		return csi + "19" + p + "~"
	case KeyF9:
		return csi + "20" + p + "~"
	case KeyF10:
		return csi + "21" + p + "~"
	case KeyF11:
		return csi + "23" + p + "~"
	case KeyF12:
		return csi + "24" + p + "~"
	case KeyF13:
		return csi + "25" + p + "~"
	case KeyF14:
		return csi + "26" + p + "~"
	case KeyF15:
		return csi + "28" + p + "~"
	case KeyF16:
		return csi + "29" + p + "~"
	case KeyF17:
		return csi + "31" + p + "~"
	case KeyF18:
		return csi + "32" + p + "~"
	case KeyF19:
		return csi + "33" + p + "~"
	case KeyF20:
		return csi + "34" + p + "~"
	}

	switch {
	case mods != 0 && mods&ModAlt == 0 && (key == KeyReturn || key == KeyTab):
		return csi + "27" + p + ";13~"
	case mods&ModCtrl == 0 && key == KeyBackspace:
		return "\x7f"
	}

	return ""
}

// parseSequence expands a querySubstitute template: each paramByte is
// replaced by ";N" (or "1;N" if not already preceded by a digit) when a
// relevant modifier is held, and dropped entirely otherwise. Grounded on
// parse_sequence in term_keyboard.c.
func parseSequence(tmpl string, mods KeyMod) []byte {
	param := modsToParam(mods)
	buf := make([]byte, 0, len(tmpl)+4)

	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		if c != paramByte {
			buf = append(buf, c)
			continue
		}
		if param == 0 {
			continue
		}
		if i == 0 || !isDigit(tmpl[i-1]) {
			buf = append(buf, '1')
		}
		buf = append(buf, ';')
		buf = append(buf, []byte(strconv.Itoa(param))...)
	}

	if len(buf) == 1 && mods&ModAlt != 0 {
		buf = []byte{0x1b, buf[0]}
	}

	return buf
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// EncodeKey converts one keypress into the bytes a PTY-attached process
// expects to read, per spec §4.5. text is the platform's best-effort UTF-8
// rendering of the key (e.g. from an input method) used when key has no
// predefined escape sequence; appCursor reflects DECCKM
// ([Terminal.HasMode] with [ModeCursorKeys]).
func EncodeKey(key Key, mods KeyMod, text string, appCursor bool) []byte {
	if subst := querySubstitute(key, mods, appCursor); subst != "" {
		return parseSequence(subst, mods)
	}

	runes := []rune(text)
	if len(runes) == 1 && mods&ModAlt != 0 {
		return []byte{0x1b, byte(runes[0])}
	}

	return []byte(text)
}

// EncodeRune is a convenience for plain text input with no named Key,
// equivalent to EncodeKey(KeyNone, mods, string(r), false).
func EncodeRune(r rune, mods KeyMod) []byte {
	return EncodeKey(KeyNone, mods, string(r), false)
}
