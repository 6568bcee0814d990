package internal

import (
	"errors"
	"fmt"
	"os"
)

type parseError struct {
	err   error
	line  int
	where string
}

type runtimeError struct {
	err   error
	token *token
}

// interpreterState stores the result of running one source unit:
// the token stream, the statement list and every error observed.
type interpreterState struct {
	source string
	tokens []token
	stmts  []stmt

	errors       []parseError
	runtimeError *runtimeError

	logger IPrinter
}

func newInterpreterState(source string, logger IPrinter) *interpreterState {
	return &interpreterState{
		source: source,
		errors: make([]parseError, 0),
		logger: logger,
	}
}

// setError records a static error and lets the caller continue.
func (s *interpreterState) setError(err error, line int, where string) {
	s.errors = append(s.errors, parseError{
		err:   err,
		line:  line,
		where: where,
	})
}

// errorAt records a static error located at a token.
func (s *interpreterState) errorAt(tk *token, err error) {
	s.setError(err, tk.line, locate(tk))
}

// fatalError records a static error and panics to enter recovery mode.
// The panic is caught at the statement boundary by the parser.
func (s *interpreterState) fatalError(tk *token, err error) {
	s.errorAt(tk, err)
	panic(err)
}

// runtimeErr aborts evaluation. The panic unwinds to the top-level
// interpret call, which reports the error.
func (s *interpreterState) runtimeErr(err error, tk *token) {
	log.WithField("line", tk.line).Debugln("runtime error:", err)
	panic(&runtimeError{err: err, token: tk})
}

func locate(tk *token) string {
	if tk.token == tkEOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tk.lexeme)
}

// Valid returns true if no static error has been observed.
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// PrintErrors writes all recorded static errors to stderr and reports
// whether there were any.
func (s *interpreterState) PrintErrors() bool {
	for _, e := range s.errors {
		s.logger.Fprintf(os.Stderr, "[line %d] Error%s: %s\n", e.line, e.where, e.err)
	}
	return !s.Valid()
}

// Scanner errors
var errUnexpectedChar = errors.New("Unexpected character.")
var errUnterminatedString = errors.New("Unterminated string.")

// Parser errors
var errExpectExpression = errors.New("Expect expression.")
var errUnclosedParen = errors.New("Expect ')' after expression.")
var errExpectedSemicolonVar = errors.New("Expected ';' after variable declaration.")
var errExpectedSemicolonExpr = errors.New("Expected ; after expression.")
var errExpectedSemicolonValue = errors.New("Expected ; after value.")
var errExpectParenIf = errors.New("Expect '(' after 'if'.")
var errUnclosedParenIf = errors.New("Expect ')' after if condition.")
var errExpectedParenWhile = errors.New("Expected '(' after while.")
var errUnclosedParenWhile = errors.New("Expect ')' after condition.")
var errExpectParenFor = errors.New("Expect '(' after 'for'.")
var errExpectSemicolonLoop = errors.New("Expect ';' after loop condition.")
var errUnclosedParenFor = errors.New("Expect ')' after for clauses.")
var errUnclosedBrace = errors.New("Expect '}' after block.")
var errExpectParamName = errors.New("Expect parameter name.")
var errUnclosedParenParams = errors.New("Expect ')' after parameters.")
var errUnclosedParenArgs = errors.New("Expect ')' after arguments.")
var errMaxParameters = errors.New("Can't have more than 255 parameters.")
var errMaxArguments = errors.New("Can't have more than 255 arguments.")
var errInvalidAssignment = errors.New("Invalid assignment target.")

// Runtime errors
var errOnlyNumber = errors.New("Operand must be a number.")
var errOnlyNumbers = errors.New("Operands must be numbers.")
var errNumbersOrStrings = errors.New("Operands must be two numbers or two strings.")
var errOnlyFunctions = errors.New("Can only call functions and classes.")

func errUndefinedVar(name string) error {
	return fmt.Errorf("Undefined variable '%s'.", name)
}

// errUndefinedVarAssign keeps the capital V of the original assignment
// error message.
func errUndefinedVarAssign(name string) error {
	return fmt.Errorf("Undefined Variable '%s'.", name)
}

func errWrongArity(expected, got int) error {
	return fmt.Errorf("Expected %d arguments, but got %d.", expected, got)
}
