package arith

import (
	"strconv"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	// tokenError is a character the lexer does not understand.
	tokenError tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal number with at most one decimal point.
	tokenNum
	// tokenIdent is a name. Names are recognized but never evaluate.
	tokenIdent
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenCaret
	// tokenOpen is an open paren.
	tokenOpen
	// tokenClose is a close paren.
	tokenClose
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token

// Operators contains the characters which are lexed as operators.
const Operators = "+-*/^"

type lexer struct {
	src string
	// start is the byte offset of the token being scanned and cur is the
	// byte offset of the scan position.
	start, cur int
	// col is the 1-based rune column of cur.
	col int
}

func lex(src string) *lexer {
	return &lexer{src: src, col: 1}
}

// peek returns the byte at the scan position, or 0 at the end of input.
func (l *lexer) peek() byte {
	if l.cur >= len(l.src) {
		return 0
	}
	return l.src[l.cur]
}

// advance moves past one rune and returns its width.
func (l *lexer) advance() int {
	_, sz := utf8.DecodeRuneInString(l.src[l.cur:])
	l.cur += sz
	l.col++
	return sz
}

func (l *lexer) emit(kind tokenKind, pos int) lexToken {
	return lexToken{text: l.src[l.start:l.cur], kind: kind, pos: pos}
}

// next scans the next token from the input. Once the input is exhausted,
// every call returns an EOF token.
func (l *lexer) next() lexToken {
	for isSpace(l.peek()) {
		l.advance()
	}
	l.start = l.cur
	pos := l.col
	if l.cur >= len(l.src) {
		return l.emit(tokenEOF, pos)
	}
	c := l.peek()
	switch {
	case isDigit(c):
		l.scanNum()
		return l.emit(tokenNum, pos)
	case isAlpha(c):
		l.scanIdent()
		return l.emit(tokenIdent, pos)
	}
	l.advance()
	switch c {
	case '+':
		return l.emit(tokenPlus, pos)
	case '-':
		return l.emit(tokenMinus, pos)
	case '*':
		return l.emit(tokenStar, pos)
	case '/':
		return l.emit(tokenSlash, pos)
	case '^':
		return l.emit(tokenCaret, pos)
	case '(':
		return l.emit(tokenOpen, pos)
	case ')':
		return l.emit(tokenClose, pos)
	}
	// The text of an error token is the whole offending rune.
	return l.emit(tokenError, pos)
}

// scanNum scans a run of digits with at most one decimal point. A second
// decimal point ends the token.
func (l *lexer) scanNum() {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() != '.' {
		return
	}
	l.advance()
	for isDigit(l.peek()) {
		l.advance()
	}
}

func (l *lexer) scanIdent() {
	for c := l.peek(); isAlpha(c) || isDigit(c); c = l.peek() {
		l.advance()
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}
