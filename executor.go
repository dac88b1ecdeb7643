package vtcore

import "fmt"

// execute applies one parsed Opcode to terminal state, grounded on the
// write_codepoint/FUNCDEFN dispatch table in original_source/src/term.c.
// The caller holds t.mu.
func (t *Terminal) execute(op Opcode) {
	switch op.Tag {
	case OpWrite:
		t.executeWrite(op.Char)
	case OpEsc:
		t.executeEsc(op)
	case OpCsi:
		t.executeCsi(op)
	case OpOsc:
		t.executeOsc(op)
	case OpDcs:
		t.executeDcs(op)
	}

	if name := op.Name(); op.Tag != OpNone && op.Tag != OpWrite && op.Tag != OpOsc && name == "" {
		t.log.Debugf("vtcore: unrecognized sequence tag=%d private=%q inter=%q final=%q",
			op.Tag, op.Private, op.Inter, op.Final)
	}
}

func (t *Terminal) executeWrite(c rune) {
	switch c {
	case '\n', '\v', '\f':
		t.lineFeed()
	case '\t':
		t.writeTab()
	case '\r':
		t.setCursorCol(0)
	case '\b':
		t.moveCursorCols(-1)
	case '\a':
		t.bell.Ring()
	default:
		if c < 0x20 {
			return // unhandled C0 control: ignore (spec §4.4)
		}
		t.writePrintable(c, CellNormal)
	}
}

// writePrintable places one codepoint at the cursor and advances it,
// wrapping per DECAWM when the row is full (spec §4.4 Wrap logic, grounded
// on write_printable in term.c). Wide codepoints (CJK, fullwidth forms)
// occupy two columns and leave a CellDummyWide follower, a supplemental
// feature write_printable's single-width-only C model never had to handle.
func (t *Terminal) writePrintable(c rune, kind CellKind) {
	width := runeWidth(c)
	if width == 0 {
		width = 1
	}

	if t.cursor.Col+width < t.cols {
		t.cursor.WrapPending = false
	} else if !t.cursor.WrapPending && t.modes&ModeAutowrap != 0 {
		t.cursor.WrapPending = true
	} else if t.cursor.WrapPending {
		t.cursor.WrapPending = false
		t.ring.RowSetWrap(t.cursor.Row, true)
		if t.cursor.Row == t.scrollBottom {
			t.scrollUp(1)
		} else if t.cursor.Row+1 < t.rows {
			t.cursor.Row++
		}
		t.cursor.Col = 0
	}

	if t.modes&ModeInsert != 0 {
		t.ring.CellsInsert(blankCell(t.pen), t.cursor.Col, t.cursor.Row, width)
	}

	cells := t.ring.CellsGet(0, t.cursor.Row)
	cells[t.cursor.Col] = Cell{
		Char: c, Width: uint8(width),
		Bg: t.pen.Bg, Fg: t.pen.Fg, Attrs: t.pen.Attrs,
		Kind: kind,
	}
	if width == 2 && t.cursor.Col+1 < t.cols {
		cells[t.cursor.Col+1] = Cell{
			Char: ' ', Width: 0,
			Bg: t.pen.Bg, Fg: t.pen.Fg, Attrs: t.pen.Attrs,
			Kind: CellDummyWide,
		}
	}

	if !t.cursor.WrapPending && t.cursor.Col+width < t.cols {
		t.cursor.Col += width
	}
}

func (t *Terminal) writeTab() {
	stop := t.tabs.next(t.cursor.Col)
	kind := CellTabLeader
	for n := 0; t.cursor.Col < stop && t.cursor.Col+1 < t.cols; n++ {
		t.writePrintable(' ', kind)
		kind = CellDummyTab
	}
}

func (t *Terminal) setCursorCol(col int) { t.cursor.Col = clamp(col, 0, t.cols-1) }
func (t *Terminal) setCursorRow(row int) { t.cursor.Row = clamp(row, 0, t.rows-1) }

// setCursorRowOrigin sets the cursor row for CUP/HVP, honoring DECOM: when
// ModeOrigin is set, row addressing is relative to the scroll region top
// and the cursor is confined to the region instead of the full screen.
func (t *Terminal) setCursorRowOrigin(row int) {
	if t.modes&ModeOrigin != 0 {
		t.cursor.Row = clamp(t.scrollTop+row, t.scrollTop, t.scrollBottom)
		return
	}
	t.setCursorRow(row)
}

// cursorHome moves the cursor to the home position, honoring DECOM: the
// home row is the scroll region's top when origin mode is set, else row 0.
func (t *Terminal) cursorHome() {
	t.setCursorCol(0)
	if t.modes&ModeOrigin != 0 {
		t.cursor.Row = t.scrollTop
		return
	}
	t.cursor.Row = 0
}

// moveCursorCols moves the cursor horizontally by delta. Moving right
// (CUF) lays down pen-initialized cells over any previously-unwritten gap
// it passes through; moving left (CUB) leaves gaps untouched — grounded
// exactly on move_cursor_cols in term.c (spec §8 scenario 5).
func (t *Terminal) moveCursorCols(delta int) {
	beg := t.cursor.Col
	end := clamp(beg+delta, 0, t.cols-1)

	if end > beg {
		cells := t.ring.CellsGet(0, t.cursor.Row)
		for at := beg; at < end; at++ {
			if cells[at].Char == 0 {
				cells[at] = blankCell(t.pen)
			}
		}
	}

	t.cursor.Col = end
	t.cursor.WrapPending = false
}

func (t *Terminal) moveCursorRows(delta int) {
	t.cursor.Row = clamp(t.cursor.Row+delta, 0, t.rows-1)
}

// lineFeed advances the cursor one row, scrolling the active region if the
// cursor sits on its bottom margin.
func (t *Terminal) lineFeed() {
	if t.cursor.Row == t.scrollBottom {
		t.scrollUp(1)
	} else if t.cursor.Row+1 < t.rows {
		t.cursor.Row++
	}
}

// reverseLineFeed is RI: the mirror image of lineFeed at the top margin.
func (t *Terminal) reverseLineFeed() {
	if t.cursor.Row == t.scrollTop {
		t.scrollDown(1)
	} else if t.cursor.Row > 0 {
		t.cursor.Row--
	}
}

// scrollUp moves the scroll region's content up by n rows. A full-screen
// region feeds scrollback via Ring.AdjustHead; a partial DECSTBM region
// shifts rows in place and has no scrollback (ground truth: xterm).
func (t *Terminal) scrollUp(n int) {
	if t.scrollTop == 0 && t.scrollBottom == t.rows-1 {
		t.ring.AdjustHead(n)
		return
	}
	for i := 0; i < n; i++ {
		for r := t.scrollTop; r < t.scrollBottom; r++ {
			copy(t.ring.CellsGet(0, r), t.ring.CellsGet(0, r+1))
		}
		t.ring.RowsClear(t.scrollBottom, 1)
	}
}

func (t *Terminal) scrollDown(n int) {
	for i := 0; i < n; i++ {
		for r := t.scrollBottom; r > t.scrollTop; r-- {
			copy(t.ring.CellsGet(0, r), t.ring.CellsGet(0, r-1))
		}
		t.ring.RowsClear(t.scrollTop, 1)
	}
}

func (t *Terminal) executeEsc(op Opcode) {
	switch op.Name() {
	case "IND":
		t.lineFeed()
	case "NEL":
		t.setCursorCol(0)
		t.lineFeed()
	case "HTS":
		t.tabs.setAt(t.cursor.Col)
	case "RI":
		t.reverseLineFeed()
	case "DECSC":
		t.saved = t.cursor.save()
	case "DECRC":
		t.cursor = t.saved.restore()
	case "RIS":
		t.reset()
	case "DECALN":
		for r := 0; r < t.rows; r++ {
			t.ring.CellsSet(Cell{Char: 'E', Width: 1, Kind: CellNormal}, 0, r, t.cols)
		}
	}
}

func (t *Terminal) reset() {
	t.primary.RowsClear(0, t.primary.Rows())
	t.alt.RowsClear(0, t.alt.Rows())
	t.ring = t.primary
	t.altActive = false
	t.cursor = newCursor()
	t.pen = blankCell(Cell{Bg: DefaultColor, Fg: DefaultColor})
	t.tabs.reset()
	t.scrollTop, t.scrollBottom = 0, t.rows-1
	t.modes = ModeAutowrap
}

func (t *Terminal) executeCsi(op Opcode) {
	switch op.Name() {
	case "ICH":
		t.ring.CellsInsert(blankCell(t.pen), t.cursor.Col, t.cursor.Row, max(op.Param(0, 0), 1))
	case "CUU":
		t.moveCursorRows(-max(op.Param(0, 0), 1))
	case "CUD":
		t.moveCursorRows(max(op.Param(0, 0), 1))
	case "CUF", "HPR":
		t.moveCursorCols(max(op.Param(0, 0), 1))
	case "CUB":
		t.moveCursorCols(-max(op.Param(0, 0), 1))
	case "CNL":
		t.moveCursorRows(max(op.Param(0, 0), 1))
		t.setCursorCol(0)
	case "CPL":
		t.moveCursorRows(-max(op.Param(0, 0), 1))
		t.setCursorCol(0)
	case "CHA", "HPA":
		t.setCursorCol(max(op.Param(0, 0), 1) - 1)
	case "CUP", "HVP":
		t.setCursorCol(max(op.Param(1, 0), 1) - 1)
		t.setCursorRowOrigin(max(op.Param(0, 0), 1) - 1)
	case "CHT":
		for n := max(op.Param(0, 0), 1); n > 0; n-- {
			t.writeTab()
		}
	case "CBT":
		for n := max(op.Param(0, 0), 1); n > 0; n-- {
			t.setCursorCol(t.tabs.prev(t.cursor.Col))
		}
	case "DCH":
		t.ring.CellsDelete(t.cursor.Col, t.cursor.Row, max(op.Param(0, 0), 1))
	case "ECH":
		t.ring.CellsSet(blankCell(t.pen), t.cursor.Col, t.cursor.Row, max(op.Param(0, 0), 1))
	case "IL":
		t.insertLines(max(op.Param(0, 0), 1))
	case "DL":
		t.deleteLines(max(op.Param(0, 0), 1))
	case "SU":
		t.scrollUp(max(op.Param(0, 0), 1))
	case "SD":
		t.scrollDown(max(op.Param(0, 0), 1))
	case "REP":
		t.repeatLastChar(max(op.Param(0, 0), 1))
	case "VPA":
		// REDESIGN: the source reads argv[1] here, a copy/paste bug from CUP;
		// VPA takes a single parameter and must read argv[0].
		t.setCursorRow(max(op.Param(0, 0), 1) - 1)
	case "VPR":
		t.moveCursorRows(max(op.Param(0, 0), 1))
	case "ED":
		t.eraseInDisplay(op.Param(0, 0))
	case "EL":
		t.eraseInLine(op.Param(0, 0))
	case "TBC":
		t.clearTabs(op.Param(0, 0))
	case "SM":
		t.setMode(op, true)
	case "RM":
		t.setMode(op, false)
	case "DECSET":
		t.decPrivate(op.Param(0, 0), true)
	case "DECRST":
		t.decPrivate(op.Param(0, 0), false)
	case "DECSTBM":
		t.setScrollRegion(op.Param(0, 0), op.Param(1, 0))
	case "DECSCUSR":
		t.setCursorStyle(op.Param(0, 0))
	case "SGR":
		t.applySGR(op.Params)
	case "DSR":
		t.deviceStatusReport(op.Param(0, 0))
	case "DA":
		t.respond([]byte("\x1b[?1;2c"))
	}
}

func (t *Terminal) insertLines(n int) {
	if t.cursor.Row < t.scrollTop || t.cursor.Row > t.scrollBottom {
		return
	}
	savedBottom := t.scrollBottom
	top := t.cursor.Row
	for i := 0; i < n; i++ {
		for r := savedBottom; r > top; r-- {
			copy(t.ring.CellsGet(0, r), t.ring.CellsGet(0, r-1))
		}
		t.ring.RowsClear(top, 1)
		t.ring.CellsSet(blankCell(t.pen), 0, top, t.cols)
	}
}

func (t *Terminal) deleteLines(n int) {
	if t.cursor.Row < t.scrollTop || t.cursor.Row > t.scrollBottom {
		return
	}
	top := t.cursor.Row
	for i := 0; i < n; i++ {
		for r := top; r < t.scrollBottom; r++ {
			copy(t.ring.CellsGet(0, r), t.ring.CellsGet(0, r+1))
		}
		t.ring.RowsClear(t.scrollBottom, 1)
		t.ring.CellsSet(blankCell(t.pen), 0, t.scrollBottom, t.cols)
	}
}

func (t *Terminal) repeatLastChar(n int) {
	if t.cursor.Col == 0 {
		return
	}
	last := t.ring.CellsGet(0, t.cursor.Row)[t.cursor.Col-1]
	for i := 0; i < n; i++ {
		t.writePrintable(last.Char, last.Kind)
	}
}

func (t *Terminal) eraseInDisplay(mode int) {
	blank := blankCell(t.pen)
	beg, end := 0, t.rows // rows erased whole
	switch mode {
	case 0:
		t.ring.CellsSet(blank, t.cursor.Col, t.cursor.Row, t.cols)
		beg = t.cursor.Row + 1
	case 1:
		t.ring.CellsSet(blank, 0, t.cursor.Row, t.cursor.Col+1)
		end = t.cursor.Row
	case 2, 3:
		t.setCursorRow(0)
	default:
		return
	}
	for r := beg; r < end; r++ {
		t.ring.RowsClear(r, 1)
		t.ring.CellsSet(blank, 0, r, t.cols)
	}
}

func (t *Terminal) eraseInLine(mode int) {
	switch mode {
	case 0:
		t.ring.CellsSet(blankCell(t.pen), t.cursor.Col, t.cursor.Row, t.cols)
	case 1:
		t.ring.CellsSet(blankCell(t.pen), 0, t.cursor.Row, t.cursor.Col+1)
	case 2:
		t.ring.CellsSet(blankCell(t.pen), 0, t.cursor.Row, t.cols)
	}
}

func (t *Terminal) clearTabs(mode int) {
	switch mode {
	case 0:
		t.tabs.clearAt(t.cursor.Col)
	case 3:
		t.tabs.clearAll()
	}
}

func (t *Terminal) setMode(op Opcode, enable bool) {
	for _, p := range op.Params {
		switch p {
		case 4: // IRM
			t.setModeBit(ModeInsert, enable)
		case 20: // LNM, not modeled separately; no-op
		}
	}
}

func (t *Terminal) setModeBit(mode TerminalMode, enable bool) {
	if enable {
		t.modes |= mode
	} else {
		t.modes &^= mode
	}
}

// decPrivate applies a DECSET/DECRST mode, grounded on decprv_helper in term.c.
func (t *Terminal) decPrivate(mode int, enable bool) {
	switch mode {
	case 1: // DECCKM
		t.setModeBit(ModeCursorKeys, enable)
	case 7: // DECAWM
		t.setModeBit(ModeAutowrap, enable)
	case 6: // DECOM
		t.setModeBit(ModeOrigin, enable)
		t.cursorHome()
	case 25: // DECTCEM
		t.cursor.Visible = enable
	case 1049: // alternate screen + cursor save, paired
		if enable {
			t.saved = t.cursor.save()
			t.ring = t.alt
			t.altActive = true
			t.ring.RowsClear(0, t.ring.Rows())
		} else {
			t.cursor = t.saved.restore()
			t.ring = t.primary
			t.altActive = false
		}
		t.setModeBit(ModeAltScreen, enable)
	}
}

func (t *Terminal) setScrollRegion(top, bottom int) {
	if top == 0 {
		top = 1
	}
	if bottom == 0 {
		bottom = t.rows
	}
	top--
	bottom--
	if top < 0 || bottom >= t.rows || top >= bottom {
		t.scrollTop, t.scrollBottom = 0, t.rows-1
		return
	}
	t.scrollTop, t.scrollBottom = top, bottom
	t.cursorHome()
}

// setCursorStyle maps a DECSCUSR parameter (0/1 blink block, 2 steady
// block, 3 blink underline, 4 steady underline, 5 blink bar, 6 steady bar)
// onto CursorStyle; this core does not model blink separately from shape.
func (t *Terminal) setCursorStyle(style int) {
	switch {
	case style <= 2:
		t.cursor.Style = CursorStyleBlock
	case style == 3 || style == 4:
		t.cursor.Style = CursorStyleUnderscore
	case style == 5 || style == 6:
		t.cursor.Style = CursorStyleBar
	}
}

// applySGR walks the parameter list, grounded closely on FUNCDEFN(SGR) in
// term.c, including its 256-color (38/48;5;n) and truecolor (38/48;2;r;g;b)
// extensions. Unlike the source, 39/49 reset to the *palette* default, not
// a remembered "saved" pen color (REDESIGN FLAG).
func (t *Terminal) applySGR(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}

	for i := 0; i < len(params); i++ {
		start := i
		switch p := params[i]; {
		case p == 0:
			t.pen.Attrs = 0
			t.pen.Bg = DefaultColor
			t.pen.Fg = DefaultColor
		case p == 1:
			t.pen.Attrs |= AttrBold
		case p == 3:
			t.pen.Attrs |= AttrItalic
		case p == 4:
			t.pen.Attrs |= AttrUnderline
		case p == 5:
			t.pen.Attrs |= AttrBlink
		case p == 7:
			t.pen.Attrs |= AttrInvert
		case p == 8:
			t.pen.Attrs |= AttrInvisible
		case p == 22:
			t.pen.Attrs &^= AttrBold
		case p == 23:
			t.pen.Attrs &^= AttrItalic
		case p == 24:
			t.pen.Attrs &^= AttrUnderline
		case p == 25:
			t.pen.Attrs &^= AttrBlink
		case p == 27:
			t.pen.Attrs &^= AttrInvert
		case p == 28:
			t.pen.Attrs &^= AttrInvisible
		case p >= 30 && p <= 37:
			t.pen.Fg = Indexed(uint8(p - 30))
		case p == 39:
			t.pen.Fg = DefaultColor
		case p >= 40 && p <= 47:
			t.pen.Bg = Indexed(uint8(p - 40))
		case p == 49:
			t.pen.Bg = DefaultColor
		case p == 38 || p == 48:
			i = t.applySGRExtended(params, i)
			_ = start
			continue
		case p >= 90 && p <= 97:
			t.pen.Fg = Indexed(uint8(p-90) + 8)
		case p >= 100 && p <= 107:
			t.pen.Bg = Indexed(uint8(p-100) + 8)
		}
	}
}

// applySGRExtended handles "38;5;n", "38;2;r;g;b" (and their 48 background
// counterparts) starting at params[i]==38||48, returning the index of the
// last parameter it consumed (the caller's loop then advances past it).
func (t *Terminal) applySGRExtended(params []int, i int) int {
	target := params[i]

	if i+1 >= len(params) {
		return i
	}

	switch params[i+1] {
	case 5:
		if i+2 < len(params) {
			c := Indexed(uint8(params[i+2]))
			t.setExtendedColor(target, c)
			return i + 2
		}
	case 2:
		if i+4 < len(params) {
			c := RGB(uint8(params[i+2]), uint8(params[i+3]), uint8(params[i+4]))
			t.setExtendedColor(target, c)
			return i + 4
		}
	}

	return i + 1
}

func (t *Terminal) setExtendedColor(target int, c Color) {
	if target == 48 {
		t.pen.Bg = c
	} else {
		t.pen.Fg = c
	}
}

func (t *Terminal) deviceStatusReport(code int) {
	switch code {
	case 5:
		t.respond([]byte("\x1b[0n"))
	case 6:
		t.respond([]byte(fmt.Sprintf("\x1b[%d;%dR", t.cursor.Row+1, t.cursor.Col+1)))
	}
}

func (t *Terminal) executeOsc(op Opcode) {
	switch op.Param(0, -1) {
	case 0:
		t.title = op.Text
		t.titleProv.SetTitle(op.Text)
		t.titleProv.SetIconName(op.Text)
	case 1:
		t.titleProv.SetIconName(op.Text)
	case 2:
		t.title = op.Text
		t.titleProv.SetTitle(op.Text)
	case 52:
		t.executeClipboard(op.Text)
	}
}

// executeClipboard handles "Pc;Pd" OSC 52 payloads: Pc selects the
// clipboard, Pd is base64 data or "?" to request a read-back.
func (t *Terminal) executeClipboard(body string) {
	sep := -1
	for i := 0; i < len(body); i++ {
		if body[i] == ';' {
			sep = i
			break
		}
	}
	if sep < 0 || sep+1 >= len(body) {
		return
	}

	clip := byte('c')
	if sep > 0 {
		clip = body[0]
	}
	payload := body[sep+1:]

	if payload == "?" {
		content := t.clipboard.Read(clip)
		t.respond([]byte(fmt.Sprintf("\x1b]52;%c;%s\x07", clip, content)))
		return
	}

	t.clipboard.Write(clip, []byte(payload))
}

// executeDcs answers DECRQSS requests ("is this setting supported") and
// otherwise ignores DCS sequences: sixel/ReGIS graphics are out of scope
// (spec Non-goals).
func (t *Terminal) executeDcs(op Opcode) {
	if op.Name() != "DECRQSS" {
		return
	}

	valid := op.Text == "m" || op.Text == "r"
	if valid {
		t.respond([]byte(fmt.Sprintf("\x1bP1$r%s\x1b\\", op.Text)))
	} else {
		t.respond([]byte("\x1bP0$r\x1b\\"))
	}
}
