// SPDX-License-Identifier: EPL-2.0

package wav

import "log"

// Logger receives human readable diagnostics produced while a file is
// parsed and processed.
type Logger interface {
	Diagnostic(format string, args ...any)
}

// NopLogger discards every diagnostic.
type NopLogger struct{}

func (NopLogger) Diagnostic(string, ...any) {}

// StdLogger forwards diagnostics to a standard library logger.
type StdLogger struct {
	l *log.Logger
}

// NewStdLogger wraps l. A nil l uses log.Default().
func NewStdLogger(l *log.Logger) *StdLogger {
	if l == nil {
		l = log.Default()
	}

	return &StdLogger{l: l}
}

func (s *StdLogger) Diagnostic(format string, args ...any) {
	s.l.Printf(format, args...)
}
