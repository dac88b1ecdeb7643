package pty

import (
	"strings"
	"testing"
	"time"
)

func TestSessionRunsShellAndCapturesOutput(t *testing.T) {
	s, err := Start(Config{
		Shell: "/bin/sh",
		Args:  []string{"-c", "printf hello"},
		Cols:  40,
		Rows:  10,
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Close()

	done := make(chan error, 1)
	go func() { done <- s.Output() }()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for shell output")
	}

	var row strings.Builder
	for col := 0; col < 5; col++ {
		row.WriteRune(s.Terminal().Cell(col, 0).Char)
	}
	if row.String() != "hello" {
		t.Fatalf("terminal row0 = %q, want hello", row.String())
	}
}

func TestSessionCloseSendsSIGHUPNotSIGKILL(t *testing.T) {
	s, err := Start(Config{
		Shell: "/bin/sh",
		Args:  []string{"-c", "trap 'echo got_hup; exit 0' HUP; sleep 5 & wait"},
		Cols:  40,
		Rows:  10,
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- s.Output() }()

	time.Sleep(200 * time.Millisecond) // let the shell install its HUP trap

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for shell to exit after Close")
	}

	var row strings.Builder
	for col := 0; col < len("got_hup"); col++ {
		row.WriteRune(s.Terminal().Cell(col, 0).Char)
	}
	if row.String() != "got_hup" {
		t.Fatalf("terminal row0 = %q, want got_hup (shell trapped SIGHUP, not killed)", row.String())
	}
}

func TestSessionResize(t *testing.T) {
	s, err := Start(Config{Shell: "/bin/sh", Args: []string{"-c", "sleep 1"}, Cols: 20, Rows: 5})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Close()

	if err := s.Resize(30, 8); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if s.Terminal().Cols() != 30 || s.Terminal().Rows() != 8 {
		t.Fatalf("terminal size = %dx%d, want 30x8", s.Terminal().Cols(), s.Terminal().Rows())
	}
}
