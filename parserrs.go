package arith

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// LexError indicates a character that cannot start any token. It implements
// InputError.
type LexError struct {
	// Input is the complete expression being parsed.
	Input string
	// Text is the offending character.
	Text string
	// Col is the column of the offending character.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unexpected character "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) input() string {
	return err.Input
}

// MalformedError indicates an expression with a position where no term can
// start, e.g. a stray operator, an unmatched bracket, or the end of the input
// where an operand was expected. It implements InputError.
type MalformedError struct {
	// Input is the complete expression.
	Input string
	// Col is the column of the token at which the expression is malformed.
	Col int
	// Text is that token. It is empty at the end of the input.
	Text string
	// Reason describes what was wrong.
	Reason string
}

func (err *MalformedError) Error() string {
	msg := "malformed expression: " + err.Reason
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	return errpos(err.Col, msg)
}

func (err *MalformedError) Pos() int {
	return err.Col
}

func (err *MalformedError) input() string {
	return err.Input
}

// Reasons used in MalformedError.
const (
	reasonNoExpr     = "no expression"
	reasonNoExprEnd  = "no expression at end"
	reasonUnexpected = "unexpected"
	reasonName       = "unknown name"
	reasonUnclosed   = "open bracket with no close bracket"
)

// DivisionByZeroError is an error from a division whose divisor is too close
// to zero. It implements InputError.
type DivisionByZeroError struct {
	// Col is the column of the division operator.
	Col int
	// Divisor is the value of the right operand.
	Divisor float64
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// DomainError is an error returned when an operator is applied to arguments
// outside its domain in arbitrary-precision evaluation. It implements
// InputError.
type DomainError struct {
	// Col is the column of the operator.
	Col int
	// X is the out-of-domain argument.
	X string
	// Op is the operator.
	Op string
}

func (err *DomainError) Error() string {
	return errpos(err.Col, err.X+" outside domain of "+err.Op)
}

func (err *DomainError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based column, counted in
	// runes, of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*MalformedError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*DomainError)(nil)
)

// Diagnostic renders an error which carries its input as the quoted input
// with a caret under the offending column:
//
//	"2@3"
//	  ^
//
// For any other error, the result is the empty string.
func Diagnostic(err error) string {
	var ie interface {
		InputError
		input() string
	}
	if !errors.As(err, &ie) {
		return ""
	}
	src := ie.input()
	col := ie.Pos()
	if n := utf8.RuneCountInString(src) + 1; col > n {
		col = n
	}
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(src)
	b.WriteString("\"\n")
	// One column for the opening quote.
	b.WriteString(strings.Repeat(" ", col))
	b.WriteByte('^')
	return b.String()
}
