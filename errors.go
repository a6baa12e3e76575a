// errors.go — caret-snippet rendering for user-facing diagnostics.
//
// WrapErrorWithSource turns the positioned error types produced by the
// lexer, parser and evaluator into a multi-line snippet with a caret
// under the offending column:
//
//	ParseError at 3:18: expected ')' (got ';')
//
//	   2 | fun int add(a, b) {
//	   3 |     return (a + b;
//	     |                  ^
//	   4 | }
//
// Up to one line of context is shown before and after the error line.
// Errors of any other type are returned unchanged. The renderer is
// independent of the interpreter; the REPL uses it, the file runner
// prints the plain single-line form.
package minilang

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource augments a lex/parse/runtime error with a caret
// snippet of src. Other errors pass through untouched.
func WrapErrorWithSource(err error, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", caretSnippet(src, e.Error(), e.Line, e.Col))
	case *ParseError:
		return fmt.Errorf("%s", caretSnippet(src, e.Error(), e.Line, e.Col))
	case *RuntimeError:
		if e.Line == 0 {
			return err // no position to point at
		}
		return fmt.Errorf("%s", caretSnippet(src, e.Error(), e.Line, e.Col))
	default:
		return err
	}
}

// caretSnippet builds the snippet. Coordinates are 1-based and clamped
// to the source bounds so rendering never fails.
func caretSnippet(src, header string, line, col int) string {
	lines := strings.Split(src, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", header)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return strings.TrimRight(b.String(), "\n")
}
