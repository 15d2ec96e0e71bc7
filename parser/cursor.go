package parser

import (
	"github.com/example/jsgo/lexer"
	"github.com/example/jsgo/token"
)

// Cursor is the parser's view of the token stream: buffered lookahead, a
// single pushback slot, and goal switching for the '/' ambiguity. Peeks never
// consume; a peeked token is returned again by the next read.
type Cursor struct {
	lex  *lexer.Lexer
	goal lexer.Goal

	// buf holds tokens lexed but not yet consumed. back, when set, sits in
	// front of buf and is the only token that can be un-consumed.
	buf  []token.Token
	back *token.Token
}

func NewCursor(source string) *Cursor {
	return &Cursor{
		lex:  lexer.New(source),
		goal: lexer.GoalRegExp,
	}
}

// SetGoal changes the goal symbol for tokens not yet lexed. Already buffered
// tokens keep the goal they were lexed under.
func (c *Cursor) SetGoal(goal lexer.Goal) {
	c.goal = goal
}

// PushBack returns a consumed token to the stream. The slot holds one token;
// pushing onto an occupied slot is a parser bug.
func (c *Cursor) PushBack(tok token.Token) {
	if c.back != nil {
		panic("cursor: push back slot occupied")
	}
	t := tok
	c.back = &t
}

// stopped reports that lexing ended (the buffer's last token is EOF or an
// Illegal token, beyond which the stream does not continue).
func (c *Cursor) stopped() bool {
	n := len(c.buf)
	return n > 0 && (c.buf[n-1].Type == token.EOF || c.buf[n-1].Type == token.Illegal)
}

func lexError(t token.Token) *LexError {
	return &LexError{Msg: t.Literal, Line: t.Line, Column: t.Column}
}

// peekAt returns the i-th pending token, nil at end of input.
func (c *Cursor) peekAt(i int) (*token.Token, error) {
	if c.back != nil {
		if i == 0 {
			t := *c.back
			return &t, nil
		}
		i--
	}
	for len(c.buf) <= i && !c.stopped() {
		c.buf = append(c.buf, c.lex.Next(c.goal))
	}
	if len(c.buf) <= i {
		if last := c.buf[len(c.buf)-1]; last.Type == token.Illegal {
			return nil, lexError(last)
		}
		return nil, nil
	}
	t := c.buf[i]
	switch t.Type {
	case token.EOF:
		return nil, nil
	case token.Illegal:
		return nil, lexError(t)
	}
	return &t, nil
}

// advance discards the front pending token.
func (c *Cursor) advance() {
	if c.back != nil {
		c.back = nil
		return
	}
	if len(c.buf) > 0 {
		c.buf = c.buf[1:]
	}
}

// Peek returns the next token without consuming it; nil at end of input.
// With skipLineTerminators, line terminator tokens are transparent.
func (c *Cursor) Peek(skipLineTerminators bool) (*token.Token, error) {
	for i := 0; ; i++ {
		t, err := c.peekAt(i)
		if err != nil || t == nil {
			return nil, err
		}
		if skipLineTerminators && t.Type == token.LineTerminator {
			continue
		}
		return t, nil
	}
}

// PeekSkip returns the token after the next one, anchoring past any leading
// line terminators. skipLineTerminators governs the second position only.
func (c *Cursor) PeekSkip(skipLineTerminators bool) (*token.Token, error) {
	i := 0
	for {
		t, err := c.peekAt(i)
		if err != nil || t == nil {
			return nil, err
		}
		if t.Type == token.LineTerminator {
			i++
			continue
		}
		break
	}
	// i is the anchor: the first non-line-terminator token
	for j := i + 1; ; j++ {
		t, err := c.peekAt(j)
		if err != nil || t == nil {
			return nil, err
		}
		if skipLineTerminators && t.Type == token.LineTerminator {
			continue
		}
		return t, nil
	}
}

// PeekExpectNoLineTerminator fails if a line terminator sits at the checked
// position. With afterNext false the next raw token is checked; with true,
// the raw successor of the next non-line-terminator token.
func (c *Cursor) PeekExpectNoLineTerminator(afterNext bool) error {
	i := 0
	if afterNext {
		for {
			t, err := c.peekAt(i)
			if err != nil {
				return err
			}
			if t == nil {
				return ErrAbruptEnd
			}
			if t.Type != token.LineTerminator {
				break
			}
			i++
		}
		i++
	}
	t, err := c.peekAt(i)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrAbruptEnd
	}
	if t.Type == token.LineTerminator {
		return syntaxError("unexpected line terminator", t.Line, t.Column)
	}
	return nil
}

// Next consumes and returns the next token; nil at end of input.
func (c *Cursor) Next(skipLineTerminators bool) (*token.Token, error) {
	for {
		t, err := c.peekAt(0)
		if err != nil || t == nil {
			return nil, err
		}
		if skipLineTerminators && t.Type == token.LineTerminator {
			c.advance()
			continue
		}
		c.advance()
		return t, nil
	}
}

// ReLexRegex re-scans the pending '/' or '/=' token as a regular-expression
// literal and consumes it. The assignment layer lexes under the division
// goal, so a regex literal first surfaces as a division token; this recovers
// it from the token's byte offset. Everything buffered past the slash was
// lexed from inside the regex and is dropped.
func (c *Cursor) ReLexRegex() (token.Token, error) {
	for {
		t, err := c.peekAt(0)
		if err != nil {
			return token.Token{}, err
		}
		if t == nil {
			return token.Token{}, ErrAbruptEnd
		}
		if t.Type == token.LineTerminator {
			c.advance()
			continue
		}
		if t.Type != token.Slash && t.Type != token.SlashAssign {
			return token.Token{}, syntaxError("expected a regular expression", t.Line, t.Column)
		}
		c.back = nil
		c.buf = c.buf[:0]
		tok := c.lex.LexRegexAt(t.Offset, t.Line, t.Column)
		if tok.Type == token.Illegal {
			return token.Token{}, lexError(tok)
		}
		return tok, nil
	}
}
