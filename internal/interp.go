package internal

import (
	"io"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// RunResult reports what went wrong while running one source unit.
type RunResult struct {
	HadError        bool
	HadRuntimeError bool
}

// Session is an interpreter instance. Globals persist across Run calls
// so a REPL keeps its definitions from line to line. A Session is not
// safe for concurrent use.
type Session struct {
	printer IPrinter
	exec    *exec
}

// NewSession creates an interpreter with a fresh global environment
// seeded with the native functions.
func NewSession(p IPrinter) *Session {
	globals := newEnv(nil)
	defineGlobals(globals)
	return &Session{
		printer: p,
		exec: &exec{
			globals: globals,
			env:     globals,
			printer: p,
		},
	}
}

// Run scans, parses and interprets one source unit. Static errors skip
// interpretation entirely.
func (s *Session) Run(source string) RunResult {
	state, ok := s.frontend(source)
	if !ok {
		return RunResult{HadError: true}
	}

	s.exec.state = state
	if !s.exec.interpret() {
		return RunResult{HadRuntimeError: true}
	}
	return RunResult{}
}

// DumpTokens scans the source and prints the token stream.
func (s *Session) DumpTokens(source string) RunResult {
	state := newInterpreterState(source, s.printer)
	lexer := &lexer{line: 1, state: state}
	lexer.scan()
	if state.PrintErrors() {
		return RunResult{HadError: true}
	}
	state.PrintTokens()
	return RunResult{}
}

// DumpTree scans and parses the source and prints the syntax tree.
func (s *Session) DumpTree(source string) RunResult {
	state, ok := s.frontend(source)
	if !ok {
		return RunResult{HadError: true}
	}
	state.PrintTree()
	return RunResult{}
}

func (s *Session) frontend(source string) (*interpreterState, bool) {
	state := newInterpreterState(source, s.printer)
	lexer := &lexer{line: 1, state: state}
	parser := &parser{state: state}

	lexer.scan()
	if state.PrintErrors() {
		return nil, false
	}

	parser.parse()
	if state.PrintErrors() {
		return nil, false
	}

	return state, true
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) RunResult {
	return NewSession(p).Run(source)
}
