package arith

import (
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
	}{
		// spaces
		{"", nil},
		{" \t \r\n ", nil},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}}},
		{"1.0", []lexToken{{text: "1.0", kind: tokenNum, pos: 1}}},
		{"1.", []lexToken{{text: "1.", kind: tokenNum, pos: 1}}},
		{"-1", []lexToken{{text: "-", kind: tokenMinus, pos: 1}, {text: "1", kind: tokenNum, pos: 2}}},
		{"1.1.1", []lexToken{{text: "1.1", kind: tokenNum, pos: 1}, {text: ".", kind: tokenError, pos: 4}, {text: "1", kind: tokenNum, pos: 5}}},
		{".1", []lexToken{{text: ".", kind: tokenError, pos: 1}, {text: "1", kind: tokenNum, pos: 2}}},
		{"1e5", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "e5", kind: tokenIdent, pos: 2}}},
		{"1+0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenPlus, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}},
		{"(1)", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: "1", kind: tokenNum, pos: 2}, {text: ")", kind: tokenClose, pos: 3}}},
		// identifiers
		{"e", []lexToken{{text: "e", kind: tokenIdent, pos: 1}}},
		{"e1", []lexToken{{text: "e1", kind: tokenIdent, pos: 1}}},
		{"_1234_", []lexToken{{text: "_1234_", kind: tokenIdent, pos: 1}}},
		{"x(", []lexToken{{text: "x", kind: tokenIdent, pos: 1}, {text: "(", kind: tokenOpen, pos: 2}}},
		// operators
		{"+-*/^", []lexToken{
			{text: "+", kind: tokenPlus, pos: 1},
			{text: "-", kind: tokenMinus, pos: 2},
			{text: "*", kind: tokenStar, pos: 3},
			{text: "/", kind: tokenSlash, pos: 4},
			{text: "^", kind: tokenCaret, pos: 5},
		}},
		{"a--b", []lexToken{{text: "a", kind: tokenIdent, pos: 1}, {text: "-", kind: tokenMinus, pos: 2}, {text: "-", kind: tokenMinus, pos: 3}, {text: "b", kind: tokenIdent, pos: 4}}},
		// erroneous symbols
		{"$", []lexToken{{text: "$", kind: tokenError, pos: 1}}},
		{"2@3", []lexToken{{text: "2", kind: tokenNum, pos: 1}, {text: "@", kind: tokenError, pos: 2}, {text: "3", kind: tokenNum, pos: 3}}},
		{"$$", []lexToken{{text: "$", kind: tokenError, pos: 1}, {text: "$", kind: tokenError, pos: 2}}},
		{"[]", []lexToken{{text: "[", kind: tokenError, pos: 1}, {text: "]", kind: tokenError, pos: 2}}},
		{"π", []lexToken{{text: "π", kind: tokenError, pos: 1}}},
		{"π×2", []lexToken{{text: "π", kind: tokenError, pos: 1}, {text: "×", kind: tokenError, pos: 2}, {text: "2", kind: tokenNum, pos: 3}}},
	}

	for _, c := range cases {
		scan := lex(c.src)
		for _, want := range c.tokens {
			got := scan.next()
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
		}
		if got := scan.next(); got.kind != tokenEOF || got.text != "" {
			t.Errorf("scanning %q: extra token %v", c.src, got)
		}
		if got := scan.next(); got.kind != tokenEOF {
			t.Errorf("scanning %q: token %v after EOF", c.src, got)
		}
	}
}

func TestLexEOFPos(t *testing.T) {
	cases := []struct {
		src string
		pos int
	}{
		{"", 1},
		{"  ", 3},
		{"12", 3},
		{"π", 2},
	}
	for _, c := range cases {
		scan := lex(c.src)
		tok := scan.next()
		for tok.kind != tokenEOF {
			tok = scan.next()
		}
		if tok.pos != c.pos {
			t.Errorf("EOF of %q at %d, want %d", c.src, tok.pos, c.pos)
		}
	}
}

func TestOperatorsLex(t *testing.T) {
	for _, r := range Operators {
		tok := lex(string(r)).next()
		if binop(tok.kind).prec == precMin {
			t.Errorf("no operator for %c", r)
		}
	}
}
