// Package pty wires a vtcore.Terminal to a real pseudo-terminal and child
// shell process, grounded on the PtySession lifecycle in
// javanhut-RavenTerminal's shell/pty.go.
package pty

import (
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/creack/pty"

	"github.com/vtcore/vtcore"
)

// Session owns a PTY master, the child shell process, and the Terminal
// that models its output. Output() must be run (typically in its own
// goroutine) to pump PTY bytes into the Terminal.
type Session struct {
	cmd  *exec.Cmd
	ptmx *os.File
	term *vtcore.Terminal

	mu       sync.Mutex
	exited   bool
	waitDone chan struct{}
}

// Config configures a new Session.
type Config struct {
	// Shell is the command to run (defaults to $SHELL, falling back to /bin/sh).
	Shell string
	// Args are extra arguments passed to Shell.
	Args []string
	// Cols, Rows are the initial terminal size.
	Cols, Rows int
	// Env, if non-nil, replaces the child's environment wholesale.
	Env []string
	// Dir sets the child's working directory.
	Dir string
}

func (c Config) shellPath() string {
	if c.Shell != "" {
		return c.Shell
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}

// Start launches the child shell attached to a new PTY and builds a
// vtcore.Terminal sized to match. The Terminal's response writer is wired
// to the PTY master, so DSR/DA/DECRQSS replies reach the shell.
func Start(cfg Config, opts ...vtcore.Option) (*Session, error) {
	cols, rows := cfg.Cols, cfg.Rows
	if cols <= 0 {
		cols = 80
	}
	if rows <= 0 {
		rows = 24
	}

	cmd := exec.Command(cfg.shellPath(), cfg.Args...)
	if cfg.Env != nil {
		cmd.Env = cfg.Env
	}
	if cfg.Dir != "" {
		cmd.Dir = cfg.Dir
	}

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Cols: uint16(cols),
		Rows: uint16(rows),
	})
	if err != nil {
		return nil, err
	}

	s := &Session{cmd: cmd, ptmx: ptmx, waitDone: make(chan struct{})}

	allOpts := append([]vtcore.Option{
		vtcore.WithSize(cols, rows),
		vtcore.WithResponse(ptmx),
		vtcore.WithResize(resizeRequester{s}),
	}, opts...)
	s.term = vtcore.New(allOpts...)

	go func() {
		_ = cmd.Wait()
		s.mu.Lock()
		s.exited = true
		s.mu.Unlock()
		close(s.waitDone)
	}()

	return s, nil
}

// Terminal returns the Terminal fed by this session's PTY output.
func (s *Session) Terminal() *vtcore.Terminal { return s.term }

// Output pumps PTY output into the Terminal until a read fails, in the
// style of tty_read's polling loop in the source (here expressed as a
// blocking read loop, idiomatic for Go). It returns the first read error,
// or the Terminal's Write error (ErrClosed once the Terminal is closed).
func (s *Session) Output() error {
	buf := make([]byte, 4096)
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			if _, werr := s.term.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err != nil {
			return err
		}
	}
}

// WriteInput sends host-originated bytes (typically from vtcore.EncodeKey)
// to the child process.
func (s *Session) WriteInput(p []byte) (int, error) {
	return s.ptmx.Write(p)
}

// Resize reshapes both the Terminal and the underlying PTY's window size.
// Unlike original_source/pty.c's pty_resize (which assigns cols to both
// ws_col and ws_row, a copy/paste bug — REDESIGN FLAG), ws_row here is
// set from rows.
func (s *Session) Resize(cols, rows int) error {
	if err := s.term.Resize(cols, rows); err != nil {
		return err
	}
	return pty.Setsize(s.ptmx, &pty.Winsize{
		Cols: uint16(cols),
		Rows: uint16(rows),
	})
}

// HasExited reports whether the child process has exited.
func (s *Session) HasExited() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exited
}

// Close hangs up the child process and releases the PTY master, mirroring
// pty_hangup's use of SIGHUP in original_source/src/pty.c rather than a
// hard kill: SIGHUP is what a real terminal sends on disconnect, and lets
// well-behaved shells/programs run their own exit handlers. A process that
// ignores SIGHUP is given a grace period before being force-killed.
func (s *Session) Close() error {
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Signal(syscall.SIGHUP)

		select {
		case <-s.waitDone:
		case <-time.After(2 * time.Second):
			_ = s.cmd.Process.Kill()
		}
	}
	_ = s.term.Close()
	return s.ptmx.Close()
}

// resizeRequester adapts Session.Resize to vtcore.ResizeProvider. The
// Terminal does not execute XTWINOPS, so no request reaches it from PTY
// output.
type resizeRequester struct{ s *Session }

func (r resizeRequester) RequestResize(cols, rows int) {
	_ = r.s.Resize(cols, rows)
}
