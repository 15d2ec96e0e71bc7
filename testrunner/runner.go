package testrunner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/example/jsgo/ast"
	"github.com/example/jsgo/parser"
)

type Result int

const (
	Pass Result = iota
	Fail
	Skip
	Error
)

func (r Result) String() string {
	switch r {
	case Pass:
		return "PASS"
	case Fail:
		return "FAIL"
	case Skip:
		return "SKIP"
	case Error:
		return "ERROR"
	}
	return "UNKNOWN"
}

type TestResult struct {
	Path    string
	Result  Result
	Message string
	Elapsed time.Duration
}

type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
	Errors  int
	Elapsed time.Duration
}

type Config struct {
	FixtureDir string
	Filter     string
	Limit      int
	Verbose    bool
}

// Run discovers and runs parser fixtures, returning results and a summary.
//
// A fixture is a .js file. Each non-comment line is a case: the source to
// parse, optionally followed by "// => expected" giving the printed form.
// Without an annotation the line only has to parse. A fixture whose
// frontmatter declares `negative:` must fail to parse as a whole.
func Run(cfg Config) ([]TestResult, Summary) {
	var fixtures []string
	filepath.Walk(cfg.FixtureDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".js") {
			return nil
		}
		if cfg.Filter != "" {
			rel, _ := filepath.Rel(cfg.FixtureDir, path)
			if !strings.Contains(rel, cfg.Filter) {
				return nil
			}
		}
		fixtures = append(fixtures, path)
		return nil
	})

	if cfg.Limit > 0 && len(fixtures) > cfg.Limit {
		fixtures = fixtures[:cfg.Limit]
	}

	start := time.Now()
	var results []TestResult
	var summary Summary
	summary.Total = len(fixtures)

	for _, path := range fixtures {
		rel, _ := filepath.Rel(cfg.FixtureDir, path)
		tr := runFixture(path, rel)
		results = append(results, tr)

		switch tr.Result {
		case Pass:
			summary.Passed++
		case Fail:
			summary.Failed++
		case Skip:
			summary.Skipped++
		case Error:
			summary.Errors++
		}

		if cfg.Verbose {
			msg := ""
			if tr.Message != "" {
				msg = " " + tr.Message
			}
			fmt.Printf("%s %s%s\n", tr.Result, rel, msg)
		}
	}

	summary.Elapsed = time.Since(start)
	return results, summary
}

func runFixture(path, rel string) TestResult {
	source, err := os.ReadFile(path)
	if err != nil {
		return TestResult{Path: rel, Result: Error, Message: "read error: " + err.Error()}
	}

	meta, body := parseMetadata(string(source))

	for _, flag := range meta.Flags {
		if flag == "skip" {
			return TestResult{Path: rel, Result: Skip, Message: meta.Description}
		}
	}

	start := time.Now()

	if meta.Negative != "" {
		tr := runNegativeFixture(rel, meta, body)
		tr.Elapsed = time.Since(start)
		return tr
	}

	for _, c := range splitCases(body) {
		node, err := parser.New(c.source).Parse()
		if err != nil {
			return TestResult{
				Path:    rel,
				Result:  Fail,
				Message: fmt.Sprintf("line %d: %v", c.line, err),
				Elapsed: time.Since(start),
			}
		}
		if c.expected == "" {
			continue
		}
		if got := ast.Print(node); got != c.expected {
			return TestResult{
				Path:    rel,
				Result:  Fail,
				Message: fmt.Sprintf("line %d: printed %q, expected %q", c.line, got, c.expected),
				Elapsed: time.Since(start),
			}
		}
	}

	return TestResult{Path: rel, Result: Pass, Elapsed: time.Since(start)}
}

// runNegativeFixture parses the whole body and expects a failure of the
// declared kind.
func runNegativeFixture(rel string, meta FixtureMetadata, body string) TestResult {
	_, err := parser.New(body).Parse()
	if err == nil {
		return TestResult{
			Path:    rel,
			Result:  Fail,
			Message: "expected " + meta.Negative + ", parsed successfully",
		}
	}
	if !matchesErrorKind(err, meta.Negative) {
		return TestResult{
			Path:    rel,
			Result:  Fail,
			Message: fmt.Sprintf("expected %s, got %v", meta.Negative, err),
		}
	}
	return TestResult{Path: rel, Result: Pass}
}

func matchesErrorKind(err error, kind string) bool {
	switch kind {
	case "SyntaxError":
		var se *parser.SyntaxError
		return errors.As(err, &se)
	case "LexError":
		var le *parser.LexError
		return errors.As(err, &le)
	case "AbruptEnd":
		return errors.Is(err, parser.ErrAbruptEnd)
	}
	// any parse failure satisfies an unqualified negative
	return true
}

type fixtureCase struct {
	line     int
	source   string
	expected string
}

const expectMarker = "// =>"

// splitCases breaks a fixture body into per-line cases. Blank lines and
// plain comment lines are ignored.
func splitCases(body string) []fixtureCase {
	var cases []fixtureCase
	for i, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "//") && !strings.HasPrefix(trimmed, expectMarker) {
			continue
		}
		c := fixtureCase{line: i + 1, source: trimmed}
		if idx := strings.Index(trimmed, expectMarker); idx >= 0 {
			c.source = strings.TrimSpace(trimmed[:idx])
			c.expected = strings.TrimSpace(trimmed[idx+len(expectMarker):])
		}
		if c.source == "" {
			continue
		}
		cases = append(cases, c)
	}
	return cases
}

// Metadata from fixture YAML frontmatter.
type FixtureMetadata struct {
	Description string
	Flags       []string
	Negative    string // "SyntaxError", "LexError", "AbruptEnd"
}

// parseMetadata extracts the /*--- ---*/ frontmatter and returns it along
// with the remaining body.
func parseMetadata(source string) (FixtureMetadata, string) {
	var meta FixtureMetadata

	startIdx := strings.Index(source, "/*---")
	if startIdx < 0 {
		return meta, source
	}
	endIdx := strings.Index(source[startIdx:], "---*/")
	if endIdx < 0 {
		return meta, source
	}

	yaml := source[startIdx+5 : startIdx+endIdx]
	body := source[:startIdx] + source[startIdx+endIdx+5:]

	var currentKey string
	for _, line := range strings.Split(yaml, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "- ") && currentKey == "flags" {
			meta.Flags = append(meta.Flags, strings.TrimSpace(strings.TrimPrefix(trimmed, "- ")))
			continue
		}

		if idx := strings.Index(trimmed, ":"); idx > 0 {
			key := strings.TrimSpace(trimmed[:idx])
			value := strings.TrimSpace(trimmed[idx+1:])

			switch key {
			case "description":
				meta.Description = value
				currentKey = ""
			case "negative":
				meta.Negative = value
				currentKey = ""
			case "flags":
				currentKey = "flags"
				if strings.HasPrefix(value, "[") {
					meta.Flags = parseInlineList(value)
					currentKey = ""
				}
			default:
				currentKey = ""
			}
		}
	}

	return meta, body
}

func parseInlineList(s string) []string {
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	var result []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
