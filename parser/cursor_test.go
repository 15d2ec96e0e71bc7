package parser

import (
	"testing"

	"github.com/example/jsgo/lexer"
	"github.com/example/jsgo/token"
)

func peekType(t *testing.T, c *Cursor, skipLT bool) token.TokenType {
	t.Helper()
	tok, err := c.Peek(skipLT)
	if err != nil {
		t.Fatalf("peek error: %v", err)
	}
	if tok == nil {
		t.Fatalf("peek: unexpected end of input")
	}
	return tok.Type
}

func nextType(t *testing.T, c *Cursor, skipLT bool) token.TokenType {
	t.Helper()
	tok, err := c.Next(skipLT)
	if err != nil {
		t.Fatalf("next error: %v", err)
	}
	if tok == nil {
		t.Fatalf("next: unexpected end of input")
	}
	return tok.Type
}

func TestPeekDoesNotConsume(t *testing.T) {
	c := NewCursor("a b")
	for i := 0; i < 3; i++ {
		if got := peekType(t, c, false); got != token.Identifier {
			t.Fatalf("peek %d: got %v", i, got)
		}
	}
	tok, _ := c.Next(false)
	if tok.Literal != "a" {
		t.Fatalf("next delivered %q after peeks", tok.Literal)
	}
}

func TestPeekSkipLineTerminatorsIsTransparent(t *testing.T) {
	c := NewCursor("\na")
	if got := peekType(t, c, true); got != token.Identifier {
		t.Fatalf("Peek(true) got %v", got)
	}
	// the skipped line terminator was not consumed
	if got := nextType(t, c, false); got != token.LineTerminator {
		t.Fatalf("Next(false) after peek got %v", got)
	}
	if got := nextType(t, c, false); got != token.Identifier {
		t.Fatalf("expected identifier, got %v", got)
	}
}

func TestPeekSkipSecondPosition(t *testing.T) {
	// anchor past leading line terminators, then look one past the anchor
	c := NewCursor("\na =>")
	tok, err := c.PeekSkip(false)
	if err != nil || tok == nil {
		t.Fatalf("PeekSkip: %v %v", tok, err)
	}
	if tok.Type != token.Arrow {
		t.Fatalf("expected Arrow after anchored identifier, got %v", tok.Type)
	}

	// without the skip flag, a line terminator in the second position shows
	c = NewCursor("a\n=> x")
	tok, err = c.PeekSkip(false)
	if err != nil || tok == nil {
		t.Fatalf("PeekSkip: %v %v", tok, err)
	}
	if tok.Type != token.LineTerminator {
		t.Fatalf("expected LineTerminator, got %v", tok.Type)
	}

	// with the flag, it is transparent
	c = NewCursor("a\n=> x")
	tok, err = c.PeekSkip(true)
	if err != nil || tok == nil {
		t.Fatalf("PeekSkip: %v %v", tok, err)
	}
	if tok.Type != token.Arrow {
		t.Fatalf("expected Arrow, got %v", tok.Type)
	}
}

func TestPeekExpectNoLineTerminator(t *testing.T) {
	if err := NewCursor("a").PeekExpectNoLineTerminator(false); err != nil {
		t.Errorf("no line terminator present, got %v", err)
	}
	if err := NewCursor("\na").PeekExpectNoLineTerminator(false); err == nil {
		t.Errorf("expected error for leading line terminator")
	}

	// afterNext checks the raw successor of the next real token
	if err := NewCursor("a =>").PeekExpectNoLineTerminator(true); err != nil {
		t.Errorf("a =>: got %v", err)
	}
	if err := NewCursor("a\n=>").PeekExpectNoLineTerminator(true); err == nil {
		t.Errorf("a\\n=>: expected error")
	}
	// leading line terminators are skipped when anchoring
	if err := NewCursor("\na =>").PeekExpectNoLineTerminator(true); err != nil {
		t.Errorf("\\na =>: got %v", err)
	}
	if err := NewCursor("").PeekExpectNoLineTerminator(false); err != ErrAbruptEnd {
		t.Errorf("empty input: expected ErrAbruptEnd, got %v", err)
	}
}

func TestPushBackRedelivery(t *testing.T) {
	c := NewCursor("a b")
	first, _ := c.Next(false)
	c.PushBack(*first)
	again, _ := c.Next(false)
	if again.Literal != "a" {
		t.Fatalf("pushed back token not redelivered: %q", again.Literal)
	}
	if tok, _ := c.Next(false); tok.Literal != "b" {
		t.Fatalf("stream out of order after pushback: %q", tok.Literal)
	}
}

func TestPushBackVisibleToPeek(t *testing.T) {
	c := NewCursor("a b")
	first, _ := c.Next(false)
	if got := peekType(t, c, false); got != token.Identifier {
		t.Fatalf("peek got %v", got)
	}
	c.PushBack(*first)
	tok, _ := c.Peek(false)
	if tok.Literal != "a" {
		t.Fatalf("peek after pushback: %q", tok.Literal)
	}
}

func TestDoublePushBackPanics(t *testing.T) {
	c := NewCursor("a b")
	first, _ := c.Next(false)
	c.PushBack(*first)
	defer func() {
		if recover() == nil {
			t.Errorf("second pushback did not panic")
		}
	}()
	c.PushBack(*first)
}

func TestNextSkipsLineTerminators(t *testing.T) {
	c := NewCursor("\n\na")
	tok, _ := c.Next(true)
	if tok.Type != token.Identifier || tok.Literal != "a" {
		t.Fatalf("Next(true) got %v %q", tok.Type, tok.Literal)
	}
}

func TestEndOfInputIsNil(t *testing.T) {
	c := NewCursor("a")
	if _, err := c.Next(false); err != nil {
		t.Fatal(err)
	}
	tok, err := c.Next(false)
	if tok != nil || err != nil {
		t.Fatalf("expected nil at end of input, got %v %v", tok, err)
	}
	tok, err = c.Peek(false)
	if tok != nil || err != nil {
		t.Fatalf("peek past end: got %v %v", tok, err)
	}
}

func TestIllegalTokenBecomesLexError(t *testing.T) {
	c := NewCursor(`"unterminated`)
	_, err := c.Next(false)
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := err.(*LexError); !ok {
		t.Fatalf("expected *LexError, got %T", err)
	}
}

func TestGoalSwitching(t *testing.T) {
	// default goal: a leading slash starts a regular expression
	c := NewCursor("/x/")
	if got := nextType(t, c, false); got != token.RegExp {
		t.Fatalf("regexp goal: got %v", got)
	}

	// division goal: the same text lexes as a slash
	c = NewCursor("/x/")
	c.SetGoal(lexer.GoalDiv)
	if got := nextType(t, c, false); got != token.Slash {
		t.Fatalf("division goal: got %v", got)
	}
}

func TestGoalAppliesOnlyToUnlexedTokens(t *testing.T) {
	c := NewCursor("/x/ y")
	// buffer the slash under the regexp goal before switching
	if got := peekType(t, c, false); got != token.RegExp {
		t.Fatalf("peek got %v", got)
	}
	c.SetGoal(lexer.GoalDiv)
	if got := nextType(t, c, false); got != token.RegExp {
		t.Fatalf("buffered token changed goal: got %v", got)
	}
}

func TestReLexRegex(t *testing.T) {
	c := NewCursor("/ab/g + 1")
	c.SetGoal(lexer.GoalDiv)
	if got := peekType(t, c, false); got != token.Slash {
		t.Fatalf("expected Slash under division goal, got %v", got)
	}
	tok, err := c.ReLexRegex()
	if err != nil {
		t.Fatalf("ReLexRegex: %v", err)
	}
	if tok.Type != token.RegExp || tok.Literal != "/ab/g" {
		t.Fatalf("got %v %q", tok.Type, tok.Literal)
	}
	// the stream resumes after the regex literal
	if got := nextType(t, c, true); got != token.Plus {
		t.Fatalf("expected Plus after regex, got %v", got)
	}
}

func TestReLexRegexDropsBufferedTokens(t *testing.T) {
	c := NewCursor("/a/ x")
	c.SetGoal(lexer.GoalDiv)
	// buffer several tokens lexed from inside the would-be regex
	if _, err := c.PeekSkip(true); err != nil {
		t.Fatalf("PeekSkip: %v", err)
	}
	tok, err := c.ReLexRegex()
	if err != nil {
		t.Fatalf("ReLexRegex: %v", err)
	}
	if tok.Literal != "/a/" {
		t.Fatalf("got %q", tok.Literal)
	}
	next, _ := c.Next(true)
	if next == nil || next.Literal != "x" {
		t.Fatalf("expected x after relex, got %v", next)
	}
}

func TestReLexRegexOnNonSlash(t *testing.T) {
	c := NewCursor("a")
	if _, err := c.ReLexRegex(); err == nil {
		t.Errorf("expected error re-lexing a non-slash token")
	}
}
