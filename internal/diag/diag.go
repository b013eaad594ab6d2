// Package diag formalizes the diagnostic format spec.md §7 asks for: a kind
// tag, a human-readable message, and (where available) the offending
// lexeme and source position.
//
// The teacher interpreter's parser collects bare strings into
// Parser.Errors; this package generalizes that pattern into a structured
// Diagnostic the lexer, parser and semantic analyzer all share, so the CLI
// driver can format and color them uniformly.
package diag

import "fmt"

// Kind classifies which phase raised a Diagnostic.
type Kind int

const (
	Lexical Kind = iota
	Syntactic
	Semantic
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Syntactic:
		return "syntax"
	case Semantic:
		return "semantic"
	default:
		return "error"
	}
}

// Diagnostic is one reported problem.
type Diagnostic struct {
	Kind         Kind
	Message      string
	Lexeme       string // offending lexeme, if any
	Line, Column int    // 0 if unknown
}

// String renders a single-line diagnostic: `kind: message (near "lexeme") [line:col]`.
func (d Diagnostic) String() string {
	s := fmt.Sprintf("%s: %s", d.Kind, d.Message)
	if d.Lexeme != "" {
		s += fmt.Sprintf(" (near %q)", d.Lexeme)
	}
	if d.Line > 0 {
		s += fmt.Sprintf(" [%d:%d]", d.Line, d.Column)
	}
	return s
}

// Collector accumulates diagnostics instead of halting on first error,
// matching the "SHOULD gather them into a list and continue" option
// spec.md §7 offers for the parser and (as an extension) the analyzer.
type Collector struct {
	items []Diagnostic
}

// Add records a diagnostic.
func (c *Collector) Add(d Diagnostic) {
	c.items = append(c.items, d)
}

// Addf is a convenience wrapper building a Diagnostic from a format string.
func (c *Collector) Addf(kind Kind, line, column int, lexeme, format string, args ...interface{}) {
	c.Add(Diagnostic{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Lexeme:  lexeme,
		Line:    line,
		Column:  column,
	})
}

// HasErrors reports whether any diagnostic has been recorded.
func (c *Collector) HasErrors() bool { return len(c.items) > 0 }

// All returns every diagnostic recorded so far, in report order.
func (c *Collector) All() []Diagnostic { return c.items }

// Count returns the number of diagnostics recorded.
func (c *Collector) Count() int { return len(c.items) }
