package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// The exit codes mirror spec.md §6's taxonomy: 0 success, 64 misuse (handled
// by the caller, not here), 65 compile error, 70 runtime error.
const (
	ExitOK           = 0
	ExitMisuse       = 64
	ExitCompileError = 65
	ExitRuntimeError = 70
)

// Session threads the pipeline's shared, process-wide state — the
// diagnostics sink and the global environment — across repeated calls to
// Run, which is what a REPL needs to keep variables alive between lines
// (SPEC_FULL.md §4's "persistent global environment" decision) without
// resorting to package-level globals (spec.md §9's design note).
type Session struct {
	diag   *diagnostics
	interp *interpreter
	log    *logrus.Logger
}

// NewSession builds a fresh interpreter, global environment, and
// diagnostics sink wired to out/errOut.
func NewSession(out, errOut io.Writer, config Config) *Session {
	log := logrus.New()
	log.SetOutput(errOut)
	log.SetLevel(logrus.WarnLevel)

	return &Session{
		diag:   newDiagnostics(errOut),
		interp: newInterpreter(out, errOut, config),
		log:    log,
	}
}

// Logger exposes the session's logrus logger so the host (cmd/lox) can
// route host-level failures (file not found, stdin read errors) through
// the same logger that traces pipeline stages, per SPEC_FULL.md's ambient
// logging stack. Lox compile and runtime diagnostics never go through it.
func (s *Session) Logger() *logrus.Logger {
	return s.log
}

// SetVerbose turns on per-stage tracing to the session's error stream,
// used by the -v CLI flag.
func (s *Session) SetVerbose(verbose bool) {
	if verbose {
		s.log.SetLevel(logrus.DebugLevel)
	} else {
		s.log.SetLevel(logrus.WarnLevel)
	}
}

// Run scans, parses, resolves, and interprets one Program, reusing the
// session's global environment. It returns the exit code spec.md §6
// prescribes for the outcome.
func (s *Session) Run(source string) int {
	s.diag.reset()

	s.log.Debug("scanning")
	scan := newScanner(source, s.diag)
	tokens := scan.scanTokens()
	if s.diag.hadError {
		return ExitCompileError
	}

	s.log.Debug("parsing")
	p := newParser(tokens, s.diag)
	statements := p.parse()
	if s.diag.hadError {
		return ExitCompileError
	}

	s.log.Debug("resolving")
	res := newResolver(s.diag)
	res.resolve(statements)
	if s.diag.hadError {
		return ExitCompileError
	}

	s.log.Debug("interpreting")
	if err := s.interp.interpret(statements); err != nil {
		return ExitRuntimeError
	}

	return ExitOK
}
