// Command vtcoredemo runs an interactive shell through a vtcore.Terminal,
// rendering its screen to stdout after every keypress. It exists to
// exercise the full pipeline (PTY -> Terminal -> render) end to end, in the
// spirit of the basic example in danielgatis/go-headless-term.
package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/vtcore/vtcore"
	vtpty "github.com/vtcore/vtcore/pty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vtcoredemo:", err)
		os.Exit(1)
	}
}

func run() error {
	cols, rows := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols, rows = w, h
	}

	session, err := vtpty.Start(vtpty.Config{Cols: cols, Rows: rows})
	if err != nil {
		return err
	}
	defer session.Close()

	go func() { _ = session.Output() }()

	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	defer term.Restore(int(os.Stdin.Fd()), state)

	renderer := stdoutRenderer{}

	buf := make([]byte, 256)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			if _, werr := session.WriteInput(buf[:n]); werr != nil {
				return werr
			}
			session.Terminal().Draw(renderer)
		}
		if err != nil {
			return nil
		}
		if session.HasExited() {
			return nil
		}
	}
}

// stdoutRenderer is a vtcore.Renderer that prints a Frame to the host's own
// stdout, in the spirit of the basic example in danielgatis/go-headless-term.
type stdoutRenderer struct{}

func (stdoutRenderer) Draw(f *vtcore.Frame) {
	fmt.Print("\x1b[H\x1b[2J")
	for row := 0; row < f.Rows; row++ {
		var line strings.Builder
		for col := 0; col < f.Cols; col++ {
			c := f.At(col, row)
			if c.Char == 0 {
				line.WriteByte(' ')
				continue
			}
			line.WriteRune(c.Char)
		}
		fmt.Println(strings.TrimRight(line.String(), " "))
	}
}

var _ vtcore.Renderer = stdoutRenderer{}
