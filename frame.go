package vtcore

// CursorDesc describes the cursor's placement within a Frame snapshot
// (spec §6 Frame.cursor). Row/Col are relative to the frame's own visible
// window, already accounting for any scrollback offset.
type CursorDesc struct {
	Col, Row int
	Visible  bool
	Style    CursorStyle
}

// Frame is a serializable snapshot of the visible screen: dimensions, a
// flat row-major cell slice, the cursor's stamped position/visibility, the
// resolved default colors, and a capture timestamp (spec §6
// `Renderer.draw(frame: &Frame)`'s `Frame` shape), independent of the Ring
// storage backing it (spec GLOSSARY "Framebuffer snapshot").
type Frame struct {
	Cols, Rows  int
	Cells       []Cell
	Cursor      CursorDesc
	PaletteBg   RGBA
	PaletteFg   RGBA
	TimestampMs uint64
}

// At returns the cell at (col, row) within the frame.
func (f Frame) At(col, row int) Cell {
	return f.Cells[row*f.Cols+col]
}

// Frame captures the terminal's currently visible screen as a Frame,
// stamping cursor visibility/position per spec §4.7 draw(): hidden if
// manually hidden (DECTCEM) or if scrollback has pushed the cursor's row
// out of the visible window.
func (t *Terminal) Frame() Frame {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cells := make([]Cell, t.cols*t.rows)
	t.ring.CopyFramebuffer(cells)

	frameRow := t.cursor.Row + t.ring.GetScroll()
	inView := frameRow >= 0 && frameRow < t.rows
	cursor := CursorDesc{
		Col:     t.cursor.Col,
		Row:     frameRow,
		Visible: t.cursor.Visible && inView,
		Style:   t.cursor.Style,
	}

	return Frame{
		Cols:        t.cols,
		Rows:        t.rows,
		Cells:       cells,
		Cursor:      cursor,
		PaletteBg:   t.palette.DefaultBg,
		PaletteFg:   t.palette.DefaultFg,
		TimestampMs: t.clock.Millis(),
	}
}

// Draw produces a Frame snapshot and hands it to renderer, per spec §4.7's
// draw(renderer) operation.
func (t *Terminal) Draw(r Renderer) {
	f := t.Frame()
	r.Draw(&f)
}
