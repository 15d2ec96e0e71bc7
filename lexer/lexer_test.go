package lexer

import (
	"testing"

	"github.com/example/jsgo/token"
)

func expectTokens(t *testing.T, input string, expected []struct {
	typ token.TokenType
	lit string
}) {
	t.Helper()
	toks := Tokenize(input)
	if len(toks) != len(expected) {
		t.Fatalf("token count wrong. expected=%d, got=%d (%v)", len(expected), len(toks), toks)
	}
	for i, exp := range expected {
		if toks[i].Type != exp.typ {
			t.Errorf("test[%d]: type wrong. expected=%d, got=%d (lit=%q)", i, exp.typ, toks[i].Type, toks[i].Literal)
		}
		if toks[i].Literal != exp.lit {
			t.Errorf("test[%d]: literal wrong. expected=%q, got=%q", i, exp.lit, toks[i].Literal)
		}
	}
}

func TestSingleCharTokens(t *testing.T) {
	expectTokens(t, `( ) { } [ ] ; : , ~`, []struct {
		typ token.TokenType
		lit string
	}{
		{token.LeftParen, "("},
		{token.RightParen, ")"},
		{token.LeftBrace, "{"},
		{token.RightBrace, "}"},
		{token.LeftBracket, "["},
		{token.RightBracket, "]"},
		{token.Semicolon, ";"},
		{token.Colon, ":"},
		{token.Comma, ","},
		{token.BitwiseNot, "~"},
		{token.EOF, ""},
	})
}

func TestArithmeticOperators(t *testing.T) {
	expectTokens(t, `a + b - c * d / e % f ** g`, []struct {
		typ token.TokenType
		lit string
	}{
		{token.Identifier, "a"},
		{token.Plus, "+"},
		{token.Identifier, "b"},
		{token.Minus, "-"},
		{token.Identifier, "c"},
		{token.Asterisk, "*"},
		{token.Identifier, "d"},
		{token.Slash, "/"},
		{token.Identifier, "e"},
		{token.Percent, "%"},
		{token.Identifier, "f"},
		{token.Exponent, "**"},
		{token.Identifier, "g"},
		{token.EOF, ""},
	})
}

func TestAssignmentOperators(t *testing.T) {
	expectTokens(t, `a = b += c -= d *= e /= f %= g **= h &= i |= j ^= k <<= l >>= m >>>= n &&= o ||= p ??= q`, []struct {
		typ token.TokenType
		lit string
	}{
		{token.Identifier, "a"},
		{token.Assign, "="},
		{token.Identifier, "b"},
		{token.PlusAssign, "+="},
		{token.Identifier, "c"},
		{token.MinusAssign, "-="},
		{token.Identifier, "d"},
		{token.AsteriskAssign, "*="},
		{token.Identifier, "e"},
		{token.SlashAssign, "/="},
		{token.Identifier, "f"},
		{token.PercentAssign, "%="},
		{token.Identifier, "g"},
		{token.ExponentAssign, "**="},
		{token.Identifier, "h"},
		{token.AmpersandAssign, "&="},
		{token.Identifier, "i"},
		{token.PipeAssign, "|="},
		{token.Identifier, "j"},
		{token.CaretAssign, "^="},
		{token.Identifier, "k"},
		{token.LeftShiftAssign, "<<="},
		{token.Identifier, "l"},
		{token.RightShiftAssign, ">>="},
		{token.Identifier, "m"},
		{token.UnsignedRightShiftAssign, ">>>="},
		{token.Identifier, "n"},
		{token.AndAssign, "&&="},
		{token.Identifier, "o"},
		{token.OrAssign, "||="},
		{token.Identifier, "p"},
		{token.NullishAssign, "??="},
		{token.Identifier, "q"},
		{token.EOF, ""},
	})
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	expectTokens(t, `yield await typeof foo new`, []struct {
		typ token.TokenType
		lit string
	}{
		{token.Yield, "yield"},
		{token.Await, "await"},
		{token.Typeof, "typeof"},
		{token.Identifier, "foo"},
		{token.New, "new"},
		{token.EOF, ""},
	})
}

func TestArrowAndSpread(t *testing.T) {
	expectTokens(t, `(...args) => x`, []struct {
		typ token.TokenType
		lit string
	}{
		{token.LeftParen, "("},
		{token.Spread, "..."},
		{token.Identifier, "args"},
		{token.RightParen, ")"},
		{token.Arrow, "=>"},
		{token.Identifier, "x"},
		{token.EOF, ""},
	})
}

func TestLineTerminatorEmission(t *testing.T) {
	toks := Tokenize("a\nb\n\n\nc")
	expected := []token.TokenType{
		token.Identifier,
		token.LineTerminator,
		token.Identifier,
		token.LineTerminator, // run of newlines coalesces into one token
		token.Identifier,
		token.EOF,
	}
	if len(toks) != len(expected) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(expected), len(toks))
	}
	for i, exp := range expected {
		if toks[i].Type != exp {
			t.Errorf("test[%d]: type wrong. expected=%d, got=%d (lit=%q)", i, exp, toks[i].Type, toks[i].Literal)
		}
	}
}

func TestLineTerminatorInsideComment(t *testing.T) {
	toks := Tokenize("a /* x\ny */ b")
	if len(toks) != 4 {
		t.Fatalf("token count wrong. got=%d (%v)", len(toks), toks)
	}
	if toks[1].Type != token.LineTerminator {
		t.Errorf("expected line terminator after comment spanning a newline, got type=%d", toks[1].Type)
	}
	if toks[2].Type != token.Identifier || toks[2].Literal != "b" {
		t.Errorf("expected identifier b, got %q", toks[2].Literal)
	}
}

func TestSingleLineCommentNoTerminator(t *testing.T) {
	// A // comment without a trailing newline must not invent a terminator.
	toks := Tokenize("a // trailing")
	if len(toks) != 2 {
		t.Fatalf("token count wrong. got=%d (%v)", len(toks), toks)
	}
	if toks[0].Type != token.Identifier || toks[1].Type != token.EOF {
		t.Errorf("unexpected tokens: %v", toks)
	}
}

func TestGoalRegExp(t *testing.T) {
	l := New(`/ab+c/gi`)
	tok := l.Next(GoalRegExp)
	if tok.Type != token.RegExp {
		t.Fatalf("expected RegExp, got type=%d lit=%q", tok.Type, tok.Literal)
	}
	if tok.Literal != "/ab+c/gi" {
		t.Errorf("regexp literal wrong. got=%q", tok.Literal)
	}
}

func TestGoalDiv(t *testing.T) {
	l := New(`/ab+c/gi`)
	tok := l.Next(GoalDiv)
	if tok.Type != token.Slash {
		t.Fatalf("expected Slash under div goal, got type=%d lit=%q", tok.Type, tok.Literal)
	}
}

func TestGoalDivSlashAssign(t *testing.T) {
	l := New(`/= b`)
	tok := l.Next(GoalDiv)
	if tok.Type != token.SlashAssign {
		t.Fatalf("expected SlashAssign under div goal, got type=%d lit=%q", tok.Type, tok.Literal)
	}
}

func TestTokenizeRegexContext(t *testing.T) {
	// After an identifier, '/' is division; after '=', it starts a regex.
	toks := Tokenize(`x = /re/; y / z`)
	types := []token.TokenType{
		token.Identifier, token.Assign, token.RegExp, token.Semicolon,
		token.Identifier, token.Slash, token.Identifier, token.EOF,
	}
	if len(toks) != len(types) {
		t.Fatalf("token count wrong. got=%d (%v)", len(toks), toks)
	}
	for i, exp := range types {
		if toks[i].Type != exp {
			t.Errorf("test[%d]: type wrong. expected=%d, got=%d (lit=%q)", i, exp, toks[i].Type, toks[i].Literal)
		}
	}
}

func TestRegexCharClassSlash(t *testing.T) {
	l := New(`/[/]/`)
	tok := l.Next(GoalRegExp)
	if tok.Type != token.RegExp || tok.Literal != "/[/]/" {
		t.Errorf("slash inside char class must not terminate: type=%d lit=%q", tok.Type, tok.Literal)
	}
}

func TestRegexInvalidFlag(t *testing.T) {
	l := New(`/abc/q`)
	tok := l.Next(GoalRegExp)
	if tok.Type != token.Illegal {
		t.Fatalf("expected Illegal for unknown flag, got type=%d lit=%q", tok.Type, tok.Literal)
	}
}

func TestRegexInvalidPattern(t *testing.T) {
	l := New(`/(foo/`)
	tok := l.Next(GoalRegExp)
	if tok.Type != token.Illegal {
		t.Fatalf("expected Illegal for unbalanced group, got type=%d lit=%q", tok.Type, tok.Literal)
	}
}

func TestRegexBackreferenceValid(t *testing.T) {
	// Backreferences are valid ECMAScript but not RE2; they must lex fine.
	l := New(`/(a)\1/`)
	tok := l.Next(GoalRegExp)
	if tok.Type != token.RegExp {
		t.Fatalf("expected RegExp, got type=%d lit=%q", tok.Type, tok.Literal)
	}
}

func TestUnterminatedRegex(t *testing.T) {
	l := New("/abc\n")
	tok := l.Next(GoalRegExp)
	if tok.Type != token.Illegal {
		t.Fatalf("expected Illegal for regex crossing a newline, got type=%d", tok.Type)
	}
}

func TestLexRegexAt(t *testing.T) {
	// Lex "x = /re/" under div goal so the slash comes out as division, then
	// re-scan it as a regex from its recorded offset.
	l := New(`x = /re/g`)
	var slash token.Token
	for {
		tok := l.Next(GoalDiv)
		if tok.Type == token.Slash {
			slash = tok
			break
		}
		if tok.Type == token.EOF {
			t.Fatal("never saw a slash token")
		}
	}
	re := l.LexRegexAt(slash.Offset, slash.Line, slash.Column)
	if re.Type != token.RegExp {
		t.Fatalf("expected RegExp from re-scan, got type=%d lit=%q", re.Type, re.Literal)
	}
	if re.Literal != "/re/g" {
		t.Errorf("re-scan literal wrong. got=%q", re.Literal)
	}
	if re.Offset != slash.Offset {
		t.Errorf("re-scan offset wrong. expected=%d, got=%d", slash.Offset, re.Offset)
	}
}

func TestIdentifierNFCNormalization(t *testing.T) {
	// "é" precomposed (U+00E9) vs decomposed (e + U+0301) must produce the
	// same identifier literal.
	pre := Tokenize("café")
	dec := Tokenize("café")
	if pre[0].Type != token.Identifier || dec[0].Type != token.Identifier {
		t.Fatalf("expected identifiers, got %d and %d", pre[0].Type, dec[0].Type)
	}
	if pre[0].Literal != dec[0].Literal {
		t.Errorf("NFC normalization missing: %q != %q", pre[0].Literal, dec[0].Literal)
	}
}

func TestDecomposedIdentifierIsOneToken(t *testing.T) {
	// the combining mark is an identifier-continue character; it must not
	// split off as a stray token
	toks := Tokenize("café + x")
	if len(toks) < 2 {
		t.Fatalf("too few tokens: %d", len(toks))
	}
	if toks[0].Type != token.Identifier {
		t.Fatalf("expected identifier, got type=%d lit=%q", toks[0].Type, toks[0].Literal)
	}
	if toks[1].Type != token.Plus {
		t.Errorf("identifier split: second token type=%d lit=%q", toks[1].Type, toks[1].Literal)
	}
}

func TestIdentifierUnicodeEscape(t *testing.T) {
	toks := Tokenize("\\u0061bc")
	if toks[0].Type != token.Identifier || toks[0].Literal != "abc" {
		t.Errorf("escape in identifier: type=%d lit=%q", toks[0].Type, toks[0].Literal)
	}
}

func TestEscapedKeywordLooksUpAsKeyword(t *testing.T) {
	// The escape decodes before keyword lookup; this layer does not track
	// the escaped-keyword early error.
	toks := Tokenize("\\u0069f")
	if toks[0].Type != token.If {
		t.Errorf("expected If, got type=%d lit=%q", toks[0].Type, toks[0].Literal)
	}
}

func TestStringLiterals(t *testing.T) {
	toks := Tokenize(`'a\n' "bA"`)
	if toks[0].Type != token.String || toks[0].Literal != "a\n" {
		t.Errorf("single-quoted: type=%d lit=%q", toks[0].Type, toks[0].Literal)
	}
	if toks[1].Type != token.String || toks[1].Literal != "bA" {
		t.Errorf("double-quoted: type=%d lit=%q", toks[1].Type, toks[1].Literal)
	}
}

func TestNumberLiterals(t *testing.T) {
	expectTokens(t, `0 3.14 .5 1e10 0xFF 0o17 0b101 1_000 10n`, []struct {
		typ token.TokenType
		lit string
	}{
		{token.Number, "0"},
		{token.Number, "3.14"},
		{token.Number, ".5"},
		{token.Number, "1e10"},
		{token.Number, "0xFF"},
		{token.Number, "0o17"},
		{token.Number, "0b101"},
		{token.Number, "1_000"},
		{token.Number, "10n"},
		{token.EOF, ""},
	})
}

func TestTemplateLiteral(t *testing.T) {
	toks := Tokenize("`a${b}c`")
	types := []token.TokenType{
		token.TemplateHead, token.Identifier, token.TemplateTail, token.EOF,
	}
	if len(toks) != len(types) {
		t.Fatalf("token count wrong. got=%d (%v)", len(toks), toks)
	}
	for i, exp := range types {
		if toks[i].Type != exp {
			t.Errorf("test[%d]: type wrong. expected=%d, got=%d (lit=%q)", i, exp, toks[i].Type, toks[i].Literal)
		}
	}
	if toks[0].Literal != "a" || toks[2].Literal != "c" {
		t.Errorf("template parts wrong: %q / %q", toks[0].Literal, toks[2].Literal)
	}
}

func TestTokenOffsets(t *testing.T) {
	toks := Tokenize("ab + cd")
	if toks[0].Offset != 0 {
		t.Errorf("first token offset: expected=0, got=%d", toks[0].Offset)
	}
	if toks[1].Offset != 3 {
		t.Errorf("plus offset: expected=3, got=%d", toks[1].Offset)
	}
	if toks[2].Offset != 5 {
		t.Errorf("second identifier offset: expected=5, got=%d", toks[2].Offset)
	}
}

func TestPositions(t *testing.T) {
	toks := Tokenize("a\n  b")
	// a at 1:1, LT, b at 2:3
	if toks[0].Line != 1 || toks[0].Column != 1 {
		t.Errorf("a position: %d:%d", toks[0].Line, toks[0].Column)
	}
	last := toks[2]
	if last.Line != 2 || last.Column != 3 {
		t.Errorf("b position: %d:%d", last.Line, last.Column)
	}
}

func TestHTMLComments(t *testing.T) {
	toks := Tokenize("a <!-- hidden\n--> also hidden\nb")
	var idents []string
	for _, tok := range toks {
		if tok.Type == token.Identifier {
			idents = append(idents, tok.Literal)
		}
	}
	if len(idents) != 2 || idents[0] != "a" || idents[1] != "b" {
		t.Errorf("HTML comment handling wrong, identifiers: %v", idents)
	}
}

func TestIllegalCharacter(t *testing.T) {
	toks := Tokenize("a # b")
	if toks[1].Type != token.Illegal {
		t.Errorf("expected Illegal for '#', got type=%d", toks[1].Type)
	}
}
