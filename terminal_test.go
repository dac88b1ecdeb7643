package vtcore

import (
	"bytes"
	"testing"
)

func lineText(t *Terminal, row int) string {
	var b []rune
	for col := 0; col < t.Cols(); col++ {
		c := t.Cell(col, row)
		if c.Kind == CellDummyWide {
			continue
		}
		if c.Char == 0 {
			b = append(b, ' ')
			continue
		}
		b = append(b, c.Char)
	}
	return string(b)
}

func TestNewTerminalDefaults(t *testing.T) {
	term := New()
	if term.Cols() != defaultCols || term.Rows() != defaultRows {
		t.Fatalf("got %dx%d, want %dx%d", term.Cols(), term.Rows(), defaultCols, defaultRows)
	}
}

func TestTerminalWithSize(t *testing.T) {
	term := New(WithSize(120, 40))
	if term.Cols() != 120 || term.Rows() != 40 {
		t.Fatalf("got %dx%d, want 120x40", term.Cols(), term.Rows())
	}
}

func TestTerminalWritePlainText(t *testing.T) {
	term := New(WithSize(80, 24))
	term.WriteString("Hello")

	got := lineText(term, 0)[:5]
	if got != "Hello" {
		t.Fatalf("got %q", got)
	}

	col, row := term.CursorPosition()
	if col != 5 || row != 0 {
		t.Fatalf("cursor at (%d,%d), want (5,0)", col, row)
	}
}

func TestTerminalCRLF(t *testing.T) {
	term := New(WithSize(80, 24))
	term.WriteString("Line1\r\nLine2")

	if got := lineText(term, 0)[:5]; got != "Line1" {
		t.Fatalf("row0 = %q", got)
	}
	if got := lineText(term, 1)[:5]; got != "Line2" {
		t.Fatalf("row1 = %q", got)
	}
}

func TestTerminalCUP(t *testing.T) {
	term := New(WithSize(80, 24))
	term.WriteString("\x1b[5;10HX")

	col, row := term.CursorPosition()
	if col != 10 || row != 4 {
		t.Fatalf("cursor at (%d,%d), want (10,4)", col, row)
	}
	if c := term.Cell(9, 4); c.Char != 'X' {
		t.Fatalf("cell(9,4) = %q, want X", c.Char)
	}
}

func TestTerminalSGRColors(t *testing.T) {
	term := New(WithSize(80, 24))
	term.WriteString("\x1b[31mR\x1b[0mN")

	red := term.Cell(0, 0)
	if red.Fg.Tag != ColorIndexed || red.Fg.Index != 1 {
		t.Fatalf("red cell fg = %+v", red.Fg)
	}

	normal := term.Cell(1, 0)
	if normal.Fg != DefaultColor {
		t.Fatalf("post-reset cell fg = %+v, want default", normal.Fg)
	}
}

func TestTerminalSGRTruecolor(t *testing.T) {
	term := New(WithSize(80, 24))
	term.WriteString("\x1b[38;2;10;20;30mX")

	c := term.Cell(0, 0)
	if c.Fg.Tag != ColorRGB || c.Fg.R != 10 || c.Fg.G != 20 || c.Fg.B != 30 {
		t.Fatalf("fg = %+v", c.Fg)
	}
}

func TestTerminalScrollRegionConfinesScroll(t *testing.T) {
	term := New(WithSize(80, 5))
	term.WriteString("\x1b[2;4r") // region rows 2-4 (1-based); homes the cursor
	term.WriteString("Top")

	for i := 0; i < 5; i++ {
		term.WriteString("\x1b[4;1H\r\n")
	}

	// row 0 (outside the region) must be untouched by the confined scroll.
	if got := lineText(term, 0)[:3]; got != "Top" {
		t.Fatalf("row0 = %q, want Top", got)
	}
}

func TestTerminalAltScreenSwap(t *testing.T) {
	term := New(WithSize(80, 24))
	term.WriteString("primary")
	term.WriteString("\x1b[?1049h")

	if !term.HasMode(ModeAltScreen) {
		t.Fatal("expected alt screen mode after DECSET 1049")
	}

	term.WriteString("alt") // the cursor keeps its column (7) across the switch
	if got := lineText(term, 0)[7:10]; got != "alt" {
		t.Fatalf("alt screen row0 = %q", got)
	}

	term.WriteString("\x1b[?1049l")
	if term.HasMode(ModeAltScreen) {
		t.Fatal("expected primary screen after DECRST 1049")
	}
	if got := lineText(term, 0)[:7]; got != "primary" {
		t.Fatalf("restored primary row0 = %q", got)
	}
}

func TestTerminalVPAUsesFirstParam(t *testing.T) {
	// REDESIGN: VPA must read the first (only) parameter, not argv[1].
	term := New(WithSize(80, 24))
	term.WriteString("\x1b[8d")

	_, row := term.CursorPosition()
	if row != 7 {
		t.Fatalf("VPA moved to row %d, want 7", row)
	}
}

func TestTerminalDSRCursorPositionReport(t *testing.T) {
	var buf bytes.Buffer
	term := New(WithSize(80, 24), WithResponse(&buf))
	term.WriteString("\x1b[3;4H\x1b[6n")

	want := "\x1b[3;4R"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

type fakeTitle struct{ title string }

func (f *fakeTitle) SetTitle(s string)    { f.title = s }
func (f *fakeTitle) SetIconName(s string) {}

func TestTerminalOSCTitle(t *testing.T) {
	ft := &fakeTitle{}
	term := New(WithTitle(ft))
	term.WriteString("\x1b]2;my title\x07")

	if term.Title() != "my title" {
		t.Fatalf("title = %q", term.Title())
	}
	if ft.title != "my title" {
		t.Fatalf("provider title = %q", ft.title)
	}
}

func TestTerminalWideRune(t *testing.T) {
	term := New(WithSize(80, 24))
	term.WriteString("中")

	c := term.Cell(0, 0)
	if c.Char != '中' || c.Width != 2 {
		t.Fatalf("cell = %+v", c)
	}
	follower := term.Cell(1, 0)
	if follower.Kind != CellDummyWide {
		t.Fatalf("follower kind = %v, want CellDummyWide", follower.Kind)
	}

	col, _ := term.CursorPosition()
	if col != 2 {
		t.Fatalf("cursor col = %d, want 2", col)
	}
}

func TestTerminalResizePreservesContent(t *testing.T) {
	term := New(WithSize(80, 24))
	term.WriteString("Hi")

	if err := term.Resize(40, 12); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if got := lineText(term, 0)[:2]; got != "Hi" {
		t.Fatalf("after resize row0 = %q", got)
	}
}

func TestTerminalResizeShrinkPastCursorAdvancesRingHead(t *testing.T) {
	term := New(WithSize(80, 24))
	term.WriteString("\x1b[21;1HX") // CUP to row 20 (0-based)

	if err := term.Resize(80, 12); err != nil {
		t.Fatalf("Resize: %v", err)
	}

	_, row := term.CursorPosition()
	if row != 8 {
		t.Fatalf("cursor row after shrink = %d, want 8", row)
	}
	if c := term.Cell(0, 8); c.Char != 'X' {
		t.Fatalf("cell(0,8) = %q, want X (ring head advanced to follow the cursor)", c.Char)
	}
}

func TestTerminalResizeRejectsNonPositive(t *testing.T) {
	term := New()
	if err := term.Resize(0, 10); err != ErrInvalidDimensions {
		t.Fatalf("got %v, want ErrInvalidDimensions", err)
	}
}

func TestTerminalCloseRejectsWrite(t *testing.T) {
	term := New()
	term.Close()

	if _, err := term.WriteString("x"); err != ErrClosed {
		t.Fatalf("got %v, want ErrClosed", err)
	}
}

func TestTerminalTabstops(t *testing.T) {
	term := New(WithSize(80, 24))
	term.WriteString("\tX")

	col, _ := term.CursorPosition()
	if col != 9 {
		t.Fatalf("cursor col after tab+X = %d, want 9", col)
	}
	if c := term.Cell(8, 0); c.Char != 'X' {
		t.Fatalf("cell(8,0) = %q, want X", c.Char)
	}
}
