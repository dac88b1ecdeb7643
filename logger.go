package vtcore

// Logger receives recoverable-error diagnostics. The Terminal reports one
// kind: an ESC/CSI/DCS sequence that matches no known mnemonic. Parser-level
// problems (malformed UTF-8, parameter overflow, sequences routed to an
// ignore state) are dropped without a report. It is the same
// "interface with a no-op default, overridable via Option" shape as the
// BellProvider/TitleProvider collaborators in providers.go, standing in for
// the source's dbgprint() calls.
type Logger interface {
	Debugf(format string, args ...any)
}

// NoopLogger discards all diagnostics; the default.
type NoopLogger struct{}

func (NoopLogger) Debugf(format string, args ...any) {}

var _ Logger = NoopLogger{}
