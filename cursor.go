package vtcore

// CursorStyle determines how the cursor is rendered.
type CursorStyle int

const (
	CursorStyleDefault CursorStyle = iota
	CursorStyleBlock
	CursorStyleUnderscore
	CursorStyleBar
	CursorStyleOutline
)

// Cursor tracks position and rendering state (0-based coordinates), per spec §3.
type Cursor struct {
	Col int
	Row int

	Style   CursorStyle
	Color   Color
	Visible bool

	// WrapPending records that the last write filled the final column; the
	// next printable must wrap before writing (spec §3, §4.4 Wrap logic).
	WrapPending bool
}

// newCursor returns a cursor at (0, 0), default style, visible.
func newCursor() Cursor {
	return Cursor{
		Style:   CursorStyleDefault,
		Color:   DefaultColor,
		Visible: true,
	}
}

// savedCursor is the DECSC/DECRC save slot. Per spec §4.4 DECSC/DECRC, the
// active pen is *not* part of the save.
type savedCursor struct {
	col, row    int
	style       CursorStyle
	color       Color
	visible     bool
	wrapPending bool
}

func (c Cursor) save() savedCursor {
	return savedCursor{
		col:         c.Col,
		row:         c.Row,
		style:       c.Style,
		color:       c.Color,
		visible:     c.Visible,
		wrapPending: c.WrapPending,
	}
}

func (s savedCursor) restore() Cursor {
	return Cursor{
		Col:         s.col,
		Row:         s.row,
		Style:       s.style,
		Color:       s.color,
		Visible:     s.visible,
		WrapPending: s.wrapPending,
	}
}
