package vtcore

import "sync"

// TerminalMode is a bitmask of behavior flags toggled by SM/RM and DECSET/DECRST.
type TerminalMode uint32

const (
	// ModeInsert is IRM: printable characters shift the row right instead of overwriting.
	ModeInsert TerminalMode = 1 << iota
	// ModeOrigin is DECOM: cursor addressing is relative to the scroll region.
	ModeOrigin
	// ModeAutowrap is DECAWM: writing the last column sets WrapPending instead of discarding.
	ModeAutowrap
	// ModeCursorKeys is DECCKM: arrow keys encode as SS3 instead of CSI (spec §4.5).
	ModeCursorKeys
	// ModeAltScreen is DECSET 1049: alternate screen buffer, cursor save/restore paired.
	ModeAltScreen
)

const (
	defaultCols      = 80
	defaultRows      = 24
	defaultHistlines = 2048
)

// Terminal is the façade described in spec §4.7: it owns the primary and
// alternate Rings, cursor/pen state, the Palette, the Parser, and the
// collaborator hooks a host supplies via Option. All mutating methods take
// the terminal's lock, so a Terminal may be driven from one goroutine
// (typically the PTY reader) while rendered from another (spec §5).
type Terminal struct {
	mu sync.RWMutex

	cols, rows int
	histlines  int

	primary   *Ring
	alt       *Ring
	ring      *Ring
	altActive bool

	cursor Cursor
	saved  savedCursor
	pen    Cell // active bg/fg/attrs inherited by newly written cells

	palette Palette
	parser  *Parser
	tabs    tabstops

	scrollTop, scrollBottom int // 0-based inclusive DECSTBM region

	modes TerminalMode
	title string

	bell       BellProvider
	titleProv  TitleProvider
	clipboard  ClipboardProvider
	resizeProv ResizeProvider
	response   ResponseWriter
	log        Logger
	clock      Clock

	closed bool
}

// Option configures a Terminal during construction.
type Option func(*Terminal)

// WithSize sets the initial column/row count.
func WithSize(cols, rows int) Option {
	return func(t *Terminal) {
		if cols > 0 && rows > 0 {
			t.cols, t.rows = cols, rows
		}
	}
}

// WithHistlines sets the scrollback capacity; it is rounded up to a power
// of two at construction time, per spec §4.7.
func WithHistlines(n int) Option {
	return func(t *Terminal) { t.histlines = n }
}

// WithPalette overrides the default 258-entry color table.
func WithPalette(p Palette) Option {
	return func(t *Terminal) { t.palette = p }
}

// WithBell installs a BellProvider.
func WithBell(p BellProvider) Option {
	return func(t *Terminal) { t.bell = p }
}

// WithTitle installs a TitleProvider.
func WithTitle(p TitleProvider) Option {
	return func(t *Terminal) { t.titleProv = p }
}

// WithClipboard installs a ClipboardProvider.
func WithClipboard(p ClipboardProvider) Option {
	return func(t *Terminal) { t.clipboard = p }
}

// WithResize installs a ResizeProvider.
func WithResize(p ResizeProvider) Option {
	return func(t *Terminal) { t.resizeProv = p }
}

// WithResponse installs the ResponseWriter that DSR/DA/DECRQSS replies are
// written to — normally the PTY master's write side.
func WithResponse(w ResponseWriter) Option {
	return func(t *Terminal) { t.response = w }
}

// WithLogger installs a Logger for recoverable parse/dispatch diagnostics
// (spec §7 kinds 1-2); the default discards them.
func WithLogger(l Logger) Option {
	return func(t *Terminal) { t.log = l }
}

// WithClock installs the Clock used to timestamp Frame snapshots; the
// default reads the wall clock via SystemClock.
func WithClock(c Clock) Option {
	return func(t *Terminal) { t.clock = c }
}

// New builds a Terminal ready to receive PTY output via Write.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		cols:       defaultCols,
		rows:       defaultRows,
		palette:    DefaultPalette,
		bell:       NoopBell{},
		titleProv:  NoopTitle{},
		clipboard:  NoopClipboard{},
		resizeProv: NoopResize{},
		response:   NoopResponse{},
		log:        NoopLogger{},
		clock:      SystemClock{},
		modes:      ModeAutowrap,
	}
	t.histlines = defaultHistlines

	for _, opt := range opts {
		opt(t)
	}

	capacity := nextPowerOfTwo(t.histlines)
	t.primary = NewRing(capacity, t.cols, t.rows)
	t.alt = NewRing(t.rows, t.cols, t.rows)
	t.ring = t.primary

	t.cursor = newCursor()
	t.pen = blankCell(Cell{Bg: DefaultColor, Fg: DefaultColor})
	t.parser = NewParser()
	t.tabs = newTabstops(t.cols)
	t.scrollTop, t.scrollBottom = 0, t.rows-1

	return t
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Cols returns the terminal width.
func (t *Terminal) Cols() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cols
}

// Rows returns the terminal height.
func (t *Terminal) Rows() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rows
}

// Cell returns the live cell at (col, row) of the active screen.
func (t *Terminal) Cell(col, row int) Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ring.CellsGet(0, row)[col]
}

// VisibleCell is Cell offset by the current scrollback position.
func (t *Terminal) VisibleCell(col, row int) Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ring.CellsGetVisible(0, row)[col]
}

// Snapshot copies the currently visible screen into a flat row-major slice.
func (t *Terminal) Snapshot() []Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	dst := make([]Cell, t.cols*t.rows)
	t.ring.CopyFramebuffer(dst)
	return dst
}

// CursorPosition returns the 0-based (col, row) of the cursor.
func (t *Terminal) CursorPosition() (col, row int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cursor.Col, t.cursor.Row
}

// CursorVisible reports whether the cursor should be drawn.
func (t *Terminal) CursorVisible() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cursor.Visible
}

// CursorStyle returns the cursor's current rendering style.
func (t *Terminal) CursorStyle() CursorStyle {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cursor.Style
}

// Title returns the current window title.
func (t *Terminal) Title() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.title
}

// HasMode reports whether every bit in mode is currently set.
func (t *Terminal) HasMode(mode TerminalMode) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.modes&mode == mode
}

// Palette returns the terminal's active color table.
func (t *Terminal) Palette() Palette {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.palette
}

// Scroll moves the scrollback viewport by delta rows and returns the new offset.
func (t *Terminal) Scroll(delta int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ring.AdjustScroll(delta)
}

// ResetScroll returns the viewport to the live bottom.
func (t *Terminal) ResetScroll() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ring.ResetScroll()
}

// Resize reshapes both screens to new dimensions. Content is preserved up
// to min(old,new) in each axis; no reflow is performed (spec §4.1, §4.7).
func (t *Terminal) Resize(cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return ErrInvalidDimensions
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}

	// Compress the screen vertically: advance the ring head (scrolling
	// retained content up) so the cursor's row stays within the new visible
	// window. Grounded directly on term_resize's two branches in term.c.
	if rows <= t.cursor.Row {
		shift := t.rows - rows
		t.primary.AdjustHead(shift)
		t.cursor.Row -= shift
	}

	// Expand the screen vertically while history lines exist, pulling
	// retained history back down to follow the cursor.
	if rows > t.rows {
		delta := min(rows-t.rows, t.primary.Histlines())
		t.primary.AdjustHead(-delta)
		t.cursor.Row += delta
	}

	t.primary.SetDimensions(cols, rows)
	t.alt.SetDimensions(cols, rows)
	t.cols, t.rows = cols, rows
	t.tabs.resize(cols)
	t.cursor.Col = clamp(t.cursor.Col, 0, cols-1)
	t.cursor.Row = clamp(t.cursor.Row, 0, rows-1)
	t.scrollTop = 0
	t.scrollBottom = rows - 1

	return nil
}

// Write feeds raw PTY output through the parser and executes every
// resulting opcode. It always consumes the entire buffer (spec §6 "never
// partially applies a Write").
func (t *Terminal) Write(data []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0, ErrClosed
	}

	for _, op := range t.parser.Parse(data) {
		t.execute(op)
	}

	return len(data), nil
}

// WriteString is a convenience wrapper around Write.
func (t *Terminal) WriteString(s string) (int, error) {
	return t.Write([]byte(s))
}

// Close marks the terminal unusable for further Write/Resize calls.
func (t *Terminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	return nil
}

func (t *Terminal) respond(b []byte) {
	_, _ = t.response.Write(b)
}
