// Package vtcore implements a headless VT-style terminal emulator core: a
// byte-stream parser, an opcode executor, and a scrollback-backed screen
// grid, with no direct dependency on any display or PTY library.
//
// # Quick start
//
//	term := vtcore.New(vtcore.WithSize(80, 24))
//	term.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	cell := term.Cell(0, 0)
//
// # Architecture
//
//   - [Parser] drives a table-driven finite state machine over raw bytes
//     and emits [Opcode] values: one per C0 control, printable codepoint,
//     or completed ESC/CSI/OSC/DCS sequence.
//   - [Terminal] owns cursor/pen state and two [Ring] buffers (primary,
//     with scrollback, and alternate, without), and executes each Opcode
//     against them.
//   - Collaborator interfaces — [BellProvider], [TitleProvider],
//     [ClipboardProvider] — let a host observe bell, title and clipboard
//     requests without the core depending on any concrete terminal
//     emulator's window system. A [ResizeProvider] can be installed, but
//     no sequence invokes it.
//
// # Dual buffers
//
// Terminal maintains a primary screen (with scrollback) and an alternate
// screen (without), mirroring xterm's CSI ?1049h/l behavior used by
// full-screen applications. [Terminal.HasMode] with [ModeAltScreen]
// reports which is active.
//
// # Thread safety
//
// All Terminal methods take an internal lock and are safe for concurrent
// use — typically Write is called from a PTY-reading goroutine while
// Snapshot/Cell are called from a render loop.
package vtcore
