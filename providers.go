package vtcore

import (
	"io"
	"time"
)

// ResponseWriter receives bytes the terminal must send back to the
// controlling process (DSR/DA replies, DECRQSS answers). Typically the
// write side of the PTY master.
type ResponseWriter = io.Writer

// NoopResponse discards all responses.
type NoopResponse struct{}

func (NoopResponse) Write(p []byte) (int, error) { return len(p), nil }

// --- Bell Provider ---

// BellProvider handles BEL (0x07).
type BellProvider interface {
	// Ring is called when a bell character is received.
	Ring()
}

// NoopBell ignores bell events.
type NoopBell struct{}

func (NoopBell) Ring() {}

// --- Title Provider ---

// TitleProvider handles OSC 0/1/2 window/icon title changes.
type TitleProvider interface {
	// SetTitle is called when OSC 0 or 2 updates the window title.
	SetTitle(title string)
	// SetIconName is called when OSC 0 or 1 updates the icon name.
	SetIconName(name string)
}

// NoopTitle ignores title changes.
type NoopTitle struct{}

func (NoopTitle) SetTitle(title string)  {}
func (NoopTitle) SetIconName(name string) {}

// --- Clipboard Provider ---

// ClipboardProvider handles OSC 52 clipboard read/write. clipboard is 'c'
// (system clipboard) or 'p' (primary selection).
type ClipboardProvider interface {
	// Read returns content from the named clipboard.
	Read(clipboard byte) string
	// Write stores content to the named clipboard.
	Write(clipboard byte, data []byte)
}

// NoopClipboard ignores clipboard access.
type NoopClipboard struct{}

func (NoopClipboard) Read(clipboard byte) string        { return "" }
func (NoopClipboard) Write(clipboard byte, data []byte) {}

// --- Resize Provider ---

// ResizeProvider receives window-resize requests addressed to the host
// window. The Terminal stores it but never calls it: XTWINOPS sequences are
// parsed and named, then ignored by the executor.
type ResizeProvider interface {
	RequestResize(cols, rows int)
}

// NoopResize ignores window-manipulation requests.
type NoopResize struct{}

func (NoopResize) RequestResize(cols, rows int) {}

// --- Renderer ---

// Renderer receives Frame snapshots produced by Terminal.Draw (spec §6
// "Renderer.draw(frame: &Frame)").
type Renderer interface {
	Draw(frame *Frame)
}

// NoopRenderer discards every frame.
type NoopRenderer struct{}

func (NoopRenderer) Draw(frame *Frame) {}

// --- Clock ---

// Clock supplies the timestamp stamped onto each Frame (spec §6
// "Clock.millis() → u64").
type Clock interface {
	Millis() uint64
}

// SystemClock reads the wall clock; the default Clock.
type SystemClock struct{}

func (SystemClock) Millis() uint64 { return uint64(time.Now().UnixMilli()) }

// Ensure implementations satisfy their interfaces.
var (
	_ ResponseWriter    = NoopResponse{}
	_ BellProvider      = NoopBell{}
	_ TitleProvider     = NoopTitle{}
	_ ClipboardProvider = NoopClipboard{}
	_ ResizeProvider    = NoopResize{}
	_ Renderer          = NoopRenderer{}
	_ Clock             = SystemClock{}
)
