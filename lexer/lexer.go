package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/unicode/norm"

	"github.com/example/jsgo/token"
)

// Goal is the lexer goal symbol. It resolves the ambiguity of a leading '/':
// under GoalRegExp it starts a regular-expression literal, under GoalDiv it
// is the division (or division-assignment) punctuator.
type Goal int

const (
	GoalRegExp Goal = iota
	GoalDiv
)

type Lexer struct {
	input   string
	pos     int // current position in input (points to current char)
	readPos int // current reading position (after current char)
	ch      rune
	line    int
	col     int

	// lastWasLT records that the previous token was a line terminator, for
	// the Annex B '-->' comment rule.
	lastWasLT bool

	// For template literal interpolation tracking
	braceDepth    int
	templateStack []int // stack of brace depths where template interpolations started
}

func New(input string) *Lexer {
	l := &Lexer{
		input:     input,
		line:      1,
		col:       0,
		lastWasLT: true, // start of input counts as a line start
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
		l.pos = l.readPos
		l.readPos++
		l.col++
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += size
	l.col++
}

func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

func (l *Lexer) peekCharAt(offset int) rune {
	pos := l.readPos + offset
	if pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[pos:])
	return r
}

func (l *Lexer) skipWhitespace() bool {
	saw := false
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		if l.ch == '\n' {
			l.line++
			l.col = 0
			saw = true
		}
		l.readChar()
	}
	return saw
}

func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// skipBlockComment reports whether the comment spanned a line break.
func (l *Lexer) skipBlockComment() bool {
	saw := false
	// skip past /*
	l.readChar()
	l.readChar()
	for {
		if l.ch == 0 {
			return saw
		}
		if l.ch == '\n' {
			l.line++
			l.col = 0
			saw = true
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return saw
		}
		l.readChar()
	}
}

// skipWhitespaceAndComments reports whether a line terminator was crossed.
// afterLT means the previous token already ended at a line boundary, which
// enables the Annex B '-->' comment form.
func (l *Lexer) skipWhitespaceAndComments(afterLT bool) bool {
	sawNewline := false
	for {
		if l.skipWhitespace() {
			sawNewline = true
		}
		if l.ch == '/' && l.peekChar() == '/' {
			l.skipLineComment()
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			if l.skipBlockComment() {
				sawNewline = true
			}
			continue
		}
		// Annex B: <!-- is a single-line comment (anywhere)
		if l.ch == '<' && l.peekChar() == '!' && l.peekCharAt(1) == '-' && l.peekCharAt(2) == '-' {
			l.skipLineComment()
			continue
		}
		// Annex B: --> is a single-line comment ONLY after a line terminator
		if (afterLT || sawNewline) && l.ch == '-' && l.peekChar() == '-' && l.peekCharAt(1) == '>' {
			l.skipLineComment()
			continue
		}
		break
	}
	return sawNewline
}

// Next returns the next token under the given goal symbol. A run of line
// terminators (including those hidden inside comments) is coalesced into a
// single LineTerminator token delivered before the token that follows it.
func (l *Lexer) Next(goal Goal) token.Token {
	if l.skipWhitespaceAndComments(l.lastWasLT) {
		l.lastWasLT = true
		return token.Token{Type: token.LineTerminator, Literal: "\n", Line: l.line, Column: l.col, Offset: l.pos}
	}
	l.lastWasLT = false

	line := l.line
	col := l.col
	off := l.pos

	tok := func(tt token.TokenType, lit string) token.Token {
		return token.Token{Type: tt, Literal: lit, Line: line, Column: col, Offset: off}
	}

	// Check for template middle/tail when closing a template interpolation
	if l.ch == '}' && len(l.templateStack) > 0 && l.braceDepth-1 == l.templateStack[len(l.templateStack)-1] {
		l.templateStack = l.templateStack[:len(l.templateStack)-1]
		return l.readTemplateContinuation(line, col, off)
	}

	if goal == GoalRegExp && l.ch == '/' && l.peekChar() != '/' && l.peekChar() != '*' {
		return l.readRegExp(line, col, off)
	}

	switch {
	case l.ch == 0 && l.pos >= len(l.input):
		return tok(token.EOF, "")

	case l.ch == '(':
		l.readChar()
		return tok(token.LeftParen, "(")
	case l.ch == ')':
		l.readChar()
		return tok(token.RightParen, ")")
	case l.ch == '{':
		l.braceDepth++
		l.readChar()
		return tok(token.LeftBrace, "{")
	case l.ch == '}':
		l.braceDepth--
		l.readChar()
		return tok(token.RightBrace, "}")
	case l.ch == '[':
		l.readChar()
		return tok(token.LeftBracket, "[")
	case l.ch == ']':
		l.readChar()
		return tok(token.RightBracket, "]")
	case l.ch == ';':
		l.readChar()
		return tok(token.Semicolon, ";")
	case l.ch == ':':
		l.readChar()
		return tok(token.Colon, ":")
	case l.ch == ',':
		l.readChar()
		return tok(token.Comma, ",")
	case l.ch == '~':
		l.readChar()
		return tok(token.BitwiseNot, "~")

	case l.ch == '.':
		if l.peekChar() == '.' && l.peekCharAt(1) == '.' {
			l.readChar()
			l.readChar()
			l.readChar()
			return tok(token.Spread, "...")
		}
		if isDigit(l.peekChar()) {
			return l.readNumber(line, col, off)
		}
		l.readChar()
		return tok(token.Dot, ".")

	case l.ch == '+':
		l.readChar()
		if l.ch == '+' {
			l.readChar()
			return tok(token.Increment, "++")
		}
		if l.ch == '=' {
			l.readChar()
			return tok(token.PlusAssign, "+=")
		}
		return tok(token.Plus, "+")

	case l.ch == '-':
		l.readChar()
		if l.ch == '-' {
			l.readChar()
			return tok(token.Decrement, "--")
		}
		if l.ch == '=' {
			l.readChar()
			return tok(token.MinusAssign, "-=")
		}
		return tok(token.Minus, "-")

	case l.ch == '*':
		l.readChar()
		if l.ch == '*' {
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return tok(token.ExponentAssign, "**=")
			}
			return tok(token.Exponent, "**")
		}
		if l.ch == '=' {
			l.readChar()
			return tok(token.AsteriskAssign, "*=")
		}
		return tok(token.Asterisk, "*")

	case l.ch == '/':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return tok(token.SlashAssign, "/=")
		}
		return tok(token.Slash, "/")

	case l.ch == '%':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return tok(token.PercentAssign, "%=")
		}
		return tok(token.Percent, "%")

	case l.ch == '=':
		l.readChar()
		if l.ch == '>' {
			l.readChar()
			return tok(token.Arrow, "=>")
		}
		if l.ch == '=' {
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return tok(token.StrictEqual, "===")
			}
			return tok(token.Equal, "==")
		}
		return tok(token.Assign, "=")

	case l.ch == '!':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return tok(token.StrictNotEqual, "!==")
			}
			return tok(token.NotEqual, "!=")
		}
		return tok(token.Not, "!")

	case l.ch == '<':
		l.readChar()
		if l.ch == '<' {
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return tok(token.LeftShiftAssign, "<<=")
			}
			return tok(token.LeftShift, "<<")
		}
		if l.ch == '=' {
			l.readChar()
			return tok(token.LessThanOrEqual, "<=")
		}
		return tok(token.LessThan, "<")

	case l.ch == '>':
		l.readChar()
		if l.ch == '>' {
			l.readChar()
			if l.ch == '>' {
				l.readChar()
				if l.ch == '=' {
					l.readChar()
					return tok(token.UnsignedRightShiftAssign, ">>>=")
				}
				return tok(token.UnsignedRightShift, ">>>")
			}
			if l.ch == '=' {
				l.readChar()
				return tok(token.RightShiftAssign, ">>=")
			}
			return tok(token.RightShift, ">>")
		}
		if l.ch == '=' {
			l.readChar()
			return tok(token.GreaterThanOrEqual, ">=")
		}
		return tok(token.GreaterThan, ">")

	case l.ch == '&':
		l.readChar()
		if l.ch == '&' {
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return tok(token.AndAssign, "&&=")
			}
			return tok(token.And, "&&")
		}
		if l.ch == '=' {
			l.readChar()
			return tok(token.AmpersandAssign, "&=")
		}
		return tok(token.BitwiseAnd, "&")

	case l.ch == '|':
		l.readChar()
		if l.ch == '|' {
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return tok(token.OrAssign, "||=")
			}
			return tok(token.Or, "||")
		}
		if l.ch == '=' {
			l.readChar()
			return tok(token.PipeAssign, "|=")
		}
		return tok(token.BitwiseOr, "|")

	case l.ch == '^':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return tok(token.CaretAssign, "^=")
		}
		return tok(token.BitwiseXor, "^")

	case l.ch == '?':
		l.readChar()
		if l.ch == '.' && !isDigit(l.peekChar()) {
			l.readChar()
			return tok(token.OptionalChain, "?.")
		}
		if l.ch == '?' {
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return tok(token.NullishAssign, "??=")
			}
			return tok(token.NullishCoalesce, "??")
		}
		return tok(token.QuestionMark, "?")

	case l.ch == '`':
		return l.readTemplateLiteral(line, col, off)

	case l.ch == '"' || l.ch == '\'':
		return l.readString(line, col, off)

	case isDigit(l.ch):
		return l.readNumber(line, col, off)

	case isIdentStart(l.ch):
		return l.readIdentifier(line, col, off)

	case l.ch == '\\' && l.peekChar() == 'u':
		return l.readIdentifier(line, col, off)

	default:
		ch := l.ch
		l.readChar()
		return tok(token.Illegal, string(ch))
	}
}

// LexRegexAt re-scans a regular-expression literal from a previously emitted
// '/' or '/=' token. The cursor uses this when a token was lexed under
// GoalDiv but the grammar position turned out to be a regex start.
func (l *Lexer) LexRegexAt(offset, line, col int) token.Token {
	l.readPos = offset
	l.line = line
	l.col = col - 1 // readChar advances the column back to col
	l.readChar()
	l.lastWasLT = false
	return l.readRegExp(line, col, offset)
}

func (l *Lexer) readIdentifier(line, col, off int) token.Token {
	start := l.pos
	var buf strings.Builder
	hasEscape := false

	for isIdentPart(l.ch) || l.ch == '\\' {
		if l.ch == '\\' {
			hasEscape = true
			l.readChar() // consume backslash
			if l.ch != 'u' {
				return token.Token{Type: token.Illegal, Literal: "invalid escape in identifier", Line: line, Column: col, Offset: off}
			}
			l.readChar() // consume 'u'
			r := l.readUnicodeEscape()
			if r < 0 {
				return token.Token{Type: token.Illegal, Literal: "invalid unicode escape", Line: line, Column: col, Offset: off}
			}
			buf.WriteRune(rune(r))
		} else {
			buf.WriteRune(l.ch)
			l.readChar()
		}
	}

	var literal string
	if hasEscape {
		literal = buf.String()
	} else {
		literal = l.input[start:l.pos]
	}

	// IdentifierName values compare NFC-normalized, so a precomposed and a
	// decomposed spelling of the same name are the same identifier.
	if hasEscape || !isASCII(literal) {
		literal = norm.NFC.String(literal)
	}

	tt := token.LookupIdentifier(literal)
	return token.Token{Type: tt, Literal: literal, Line: line, Column: col, Offset: off}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}

// writeUTF16CodeUnit writes a UTF-16 code unit (including surrogates) to a string builder.
// For surrogates, it uses WTF-8 encoding (3-byte sequences like regular code points)
// rather than the replacement character that Go's WriteRune would produce.
func writeUTF16CodeUnit(buf *strings.Builder, cu uint16) {
	if cu < 0x80 {
		buf.WriteByte(byte(cu))
	} else if cu < 0x800 {
		buf.WriteByte(byte(0xC0 | (cu >> 6)))
		buf.WriteByte(byte(0x80 | (cu & 0x3F)))
	} else {
		// This works for surrogates too (0xD800-0xDFFF) using WTF-8 encoding
		buf.WriteByte(byte(0xE0 | (cu >> 12)))
		buf.WriteByte(byte(0x80 | ((cu >> 6) & 0x3F)))
		buf.WriteByte(byte(0x80 | (cu & 0x3F)))
	}
}

func (l *Lexer) readUnicodeEscape() int {
	if l.ch == '{' {
		// \u{XXXX} form
		l.readChar()
		val := 0
		digits := 0
		for l.ch != '}' && l.ch != 0 {
			d := hexVal(l.ch)
			if d < 0 {
				return -1
			}
			val = val*16 + d
			digits++
			l.readChar()
		}
		if l.ch != '}' || digits == 0 || val > 0x10FFFF {
			return -1
		}
		l.readChar() // consume '}'
		return val
	}
	// \uXXXX form (exactly 4 hex digits)
	val := 0
	for i := 0; i < 4; i++ {
		d := hexVal(l.ch)
		if d < 0 {
			return -1
		}
		val = val*16 + d
		l.readChar()
	}
	return val
}

func (l *Lexer) readString(line, col, off int) token.Token {
	quote := l.ch
	l.readChar() // skip opening quote
	var buf strings.Builder

	for l.ch != quote && l.ch != 0 && l.ch != '\n' {
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				buf.WriteByte('\n')
			case 'r':
				buf.WriteByte('\r')
			case 't':
				buf.WriteByte('\t')
			case '\\':
				buf.WriteByte('\\')
			case '\'':
				buf.WriteByte('\'')
			case '"':
				buf.WriteByte('"')
			case '0', '1', '2', '3', '4', '5', '6', '7':
				// Octal escape sequence (Annex B, non-strict mode)
				val := int(l.ch - '0')
				l.readChar()
				if l.ch >= '0' && l.ch <= '7' {
					val = val*8 + int(l.ch-'0')
					l.readChar()
					if val <= 037 && l.ch >= '0' && l.ch <= '7' {
						val = val*8 + int(l.ch-'0')
						l.readChar()
					}
				}
				buf.WriteRune(rune(val))
				continue
			case 'b':
				buf.WriteByte('\b')
			case 'f':
				buf.WriteByte('\f')
			case 'v':
				buf.WriteByte('\v')
			case 'x':
				l.readChar()
				d1 := hexVal(l.ch)
				l.readChar()
				d2 := hexVal(l.ch)
				if d1 < 0 || d2 < 0 {
					return token.Token{Type: token.Illegal, Literal: "invalid hex escape", Line: line, Column: col, Offset: off}
				}
				buf.WriteRune(rune(d1*16 + d2))
			case 'u':
				l.readChar()
				r := l.readUnicodeEscape()
				if r < 0 {
					return token.Token{Type: token.Illegal, Literal: "invalid unicode escape", Line: line, Column: col, Offset: off}
				}
				// Handle surrogate pairs: if high surrogate followed by \uDCxx
				if r >= 0xD800 && r <= 0xDBFF && l.ch == '\\' && l.peekChar() == 'u' {
					// Save position to backtrack if not a low surrogate
					savedPos := l.pos
					savedReadPos := l.readPos
					savedCh := l.ch
					l.readChar() // skip '\'
					l.readChar() // skip 'u'
					r2 := l.readUnicodeEscape()
					if r2 >= 0xDC00 && r2 <= 0xDFFF {
						// Valid surrogate pair - combine
						combined := 0x10000 + (r-0xD800)*0x400 + (r2 - 0xDC00)
						buf.WriteRune(rune(combined))
					} else {
						// Not a low surrogate - write high surrogate as-is and backtrack
						writeUTF16CodeUnit(&buf, uint16(r))
						// Restore position
						l.pos = savedPos
						l.readPos = savedReadPos
						l.ch = savedCh
					}
				} else if r >= 0xD800 && r <= 0xDFFF {
					// Lone surrogate - write as raw bytes
					writeUTF16CodeUnit(&buf, uint16(r))
				} else {
					buf.WriteRune(rune(r))
				}
				continue // readUnicodeEscape already advanced past the escape
			case '\n':
				l.line++
				l.col = 0
				// line continuation - don't add to string
			case '\r':
				if l.peekChar() == '\n' {
					l.readChar()
				}
				l.line++
				l.col = 0
			default:
				buf.WriteRune(l.ch)
			}
			l.readChar()
			continue
		}
		buf.WriteRune(l.ch)
		l.readChar()
	}

	if l.ch != quote {
		return token.Token{Type: token.Illegal, Literal: "unterminated string", Line: line, Column: col, Offset: off}
	}
	l.readChar() // skip closing quote
	return token.Token{Type: token.String, Literal: buf.String(), Line: line, Column: col, Offset: off}
}

func (l *Lexer) readNumber(line, col, off int) token.Token {
	start := l.pos

	if l.ch == '0' {
		next := l.peekChar()
		switch {
		case next == 'x' || next == 'X':
			l.readChar() // 0
			l.readChar() // x
			if !isHexDigit(l.ch) {
				return token.Token{Type: token.Illegal, Literal: "invalid hex literal", Line: line, Column: col, Offset: off}
			}
			for isHexDigit(l.ch) || l.ch == '_' {
				l.readChar()
			}
			return token.Token{Type: token.Number, Literal: l.input[start:l.pos], Line: line, Column: col, Offset: off}

		case next == 'o' || next == 'O':
			l.readChar() // 0
			l.readChar() // o
			if !isOctalDigit(l.ch) {
				return token.Token{Type: token.Illegal, Literal: "invalid octal literal", Line: line, Column: col, Offset: off}
			}
			for isOctalDigit(l.ch) || l.ch == '_' {
				l.readChar()
			}
			return token.Token{Type: token.Number, Literal: l.input[start:l.pos], Line: line, Column: col, Offset: off}

		case next == 'b' || next == 'B':
			l.readChar() // 0
			l.readChar() // b
			if l.ch != '0' && l.ch != '1' {
				return token.Token{Type: token.Illegal, Literal: "invalid binary literal", Line: line, Column: col, Offset: off}
			}
			for l.ch == '0' || l.ch == '1' || l.ch == '_' {
				l.readChar()
			}
			return token.Token{Type: token.Number, Literal: l.input[start:l.pos], Line: line, Column: col, Offset: off}
		}
	}

	// Decimal: integer part
	l.readDecimalDigits()

	// Fractional part
	if l.ch == '.' {
		l.readChar()
		l.readDecimalDigits()
	}

	// Exponent
	if l.ch == 'e' || l.ch == 'E' {
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		l.readDecimalDigits()
	}

	// BigInt suffix
	if l.ch == 'n' {
		l.readChar()
	}

	return token.Token{Type: token.Number, Literal: l.input[start:l.pos], Line: line, Column: col, Offset: off}
}

func (l *Lexer) readDecimalDigits() {
	for isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
}

func (l *Lexer) readTemplateLiteral(line, col, off int) token.Token {
	l.readChar() // skip opening backtick
	var buf strings.Builder

	for {
		if l.ch == 0 && l.pos >= len(l.input) {
			return token.Token{Type: token.Illegal, Literal: "unterminated template literal", Line: line, Column: col, Offset: off}
		}
		if l.ch == '`' {
			l.readChar()
			return token.Token{Type: token.NoSubstitutionTemplate, Literal: buf.String(), Line: line, Column: col, Offset: off}
		}
		if l.ch == '$' && l.peekChar() == '{' {
			l.readChar() // skip $
			l.readChar() // skip {
			l.templateStack = append(l.templateStack, l.braceDepth)
			l.braceDepth++
			return token.Token{Type: token.TemplateHead, Literal: buf.String(), Line: line, Column: col, Offset: off}
		}
		if l.ch == '\\' {
			l.readChar()
			l.readTemplateEscape(&buf)
			continue
		}
		if l.ch == '\n' {
			l.line++
			l.col = 0
		}
		buf.WriteRune(l.ch)
		l.readChar()
	}
}

func (l *Lexer) readTemplateContinuation(line, col, off int) token.Token {
	l.readChar() // skip closing }
	l.braceDepth--
	var buf strings.Builder

	for {
		if l.ch == 0 && l.pos >= len(l.input) {
			return token.Token{Type: token.Illegal, Literal: "unterminated template literal", Line: line, Column: col, Offset: off}
		}
		if l.ch == '`' {
			l.readChar()
			return token.Token{Type: token.TemplateTail, Literal: buf.String(), Line: line, Column: col, Offset: off}
		}
		if l.ch == '$' && l.peekChar() == '{' {
			l.readChar() // skip $
			l.readChar() // skip {
			l.templateStack = append(l.templateStack, l.braceDepth)
			l.braceDepth++
			return token.Token{Type: token.TemplateMiddle, Literal: buf.String(), Line: line, Column: col, Offset: off}
		}
		if l.ch == '\\' {
			l.readChar()
			l.readTemplateEscape(&buf)
			continue
		}
		if l.ch == '\n' {
			l.line++
			l.col = 0
		}
		buf.WriteRune(l.ch)
		l.readChar()
	}
}

func (l *Lexer) readTemplateEscape(buf *strings.Builder) {
	switch l.ch {
	case 'n':
		buf.WriteByte('\n')
		l.readChar()
	case 'r':
		buf.WriteByte('\r')
		l.readChar()
	case 't':
		buf.WriteByte('\t')
		l.readChar()
	case '\\':
		buf.WriteByte('\\')
		l.readChar()
	case '`':
		buf.WriteByte('`')
		l.readChar()
	case '$':
		buf.WriteByte('$')
		l.readChar()
	case '0', '1', '2', '3', '4', '5', '6', '7':
		// Octal escape sequence (Annex B, non-strict mode)
		val := int(l.ch - '0')
		l.readChar()
		if l.ch >= '0' && l.ch <= '7' {
			val = val*8 + int(l.ch-'0')
			l.readChar()
			if val <= 037 && l.ch >= '0' && l.ch <= '7' {
				val = val*8 + int(l.ch-'0')
				l.readChar()
			}
		}
		buf.WriteRune(rune(val))
	case '\n':
		l.line++
		l.col = 0
		l.readChar()
	default:
		buf.WriteByte('\\')
		buf.WriteRune(l.ch)
		l.readChar()
	}
}

func (l *Lexer) readRegExp(line, col, off int) token.Token {
	var buf strings.Builder
	buf.WriteByte('/')
	l.readChar() // skip opening /

	inCharClass := false
	for {
		if (l.ch == 0 && l.pos >= len(l.input)) || l.ch == '\n' || l.ch == '\r' {
			return token.Token{Type: token.Illegal, Literal: "unterminated regexp", Line: line, Column: col, Offset: off}
		}
		if l.ch == '\\' {
			buf.WriteRune(l.ch)
			l.readChar()
			if (l.ch == 0 && l.pos >= len(l.input)) || l.ch == '\n' || l.ch == '\r' {
				return token.Token{Type: token.Illegal, Literal: "unterminated regexp", Line: line, Column: col, Offset: off}
			}
			buf.WriteRune(l.ch)
			l.readChar()
			continue
		}
		if l.ch == '[' {
			inCharClass = true
		} else if l.ch == ']' {
			inCharClass = false
		}
		if l.ch == '/' && !inCharClass {
			buf.WriteByte('/')
			l.readChar()
			break
		}
		buf.WriteRune(l.ch)
		l.readChar()
	}

	// Read flags
	for isIdentPart(l.ch) {
		buf.WriteRune(l.ch)
		l.readChar()
	}

	raw := buf.String()
	if msg := validateRegExp(raw); msg != "" {
		return token.Token{Type: token.Illegal, Literal: msg, Line: line, Column: col, Offset: off}
	}
	return token.Token{Type: token.RegExp, Literal: raw, Line: line, Column: col, Offset: off}
}

// validateRegExp compiles the literal with regexp2, which supports the
// ECMAScript constructs (backreferences, lookbehind) that the stdlib regexp
// package rejects. Returns an error message, or "" if the literal is valid.
func validateRegExp(raw string) string {
	lastSlash := strings.LastIndex(raw, "/")
	pattern := raw[1:lastSlash]
	flags := raw[lastSlash+1:]

	opts := regexp2.None
	for _, f := range flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'g', 'u', 'y', 'd', 'v':
			// match-mode flags with no engine-level compile option
		default:
			return "invalid regular expression flag: " + string(f)
		}
	}
	if _, err := regexp2.Compile(pattern, opts); err != nil {
		return "invalid regular expression: " + err.Error()
	}
	return ""
}

// GoalFor derives the lexer goal from the previous meaningful token, for
// callers tokenizing a whole source without grammar context.
func GoalFor(prev token.TokenType) Goal {
	if canPrecedeRegex(prev) {
		return GoalRegExp
	}
	return GoalDiv
}

// Token types after which a '/' must be division, not a regex start.
var divPrecedingTokens = map[token.TokenType]bool{
	token.Identifier:             true,
	token.Number:                 true,
	token.String:                 true,
	token.True:                   true,
	token.False:                  true,
	token.Null:                   true,
	token.Undefined:              true,
	token.This:                   true,
	token.Super:                  true,
	token.RightParen:             true,
	token.RightBracket:           true,
	token.Increment:              true,
	token.Decrement:              true,
	token.NoSubstitutionTemplate: true,
	token.TemplateTail:           true,
}

func canPrecedeRegex(tt token.TokenType) bool {
	return !divPrecedingTokens[tt]
}

// Tokenize returns all tokens from the input, including line terminators.
// The goal for each token is derived from the previous meaningful token.
func Tokenize(input string) []token.Token {
	l := New(input)
	var tokens []token.Token
	prev := token.EOF // EOF means "start of input" - regex is valid here

	for {
		tok := l.Next(GoalFor(prev))
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
		if tok.Type != token.LineTerminator {
			prev = tok.Type
		}
	}
	return tokens
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isOctalDigit(ch rune) bool {
	return ch >= '0' && ch <= '7'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || ch == '$' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch > 127 && unicode.IsLetter(ch))
}

func isIdentPart(ch rune) bool {
	// ZWNJ and ZWJ are legal continue characters, as are combining marks:
	// a decomposed spelling (e + U+0301) must read as one identifier so NFC
	// normalization can fold it with the precomposed form.
	return isIdentStart(ch) || isDigit(ch) || ch == '‌' || ch == '‍' ||
		(ch > 127 && unicode.In(ch, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc))
}

func hexVal(ch rune) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	default:
		return -1
	}
}
