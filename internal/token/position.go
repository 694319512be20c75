// Package token defines the lexical token vocabulary shared by the scanner,
// parser, resolver and interpreter.
package token

import "fmt"

// Position identifies a location in source text by line and column, both
// one-indexed. Column counts runes, not bytes, so multi-byte UTF-8 sequences
// each count as a single column.
type Position struct {
	Line   int
	Column int
}

// String renders the position as "line:column", used in diagnostic headers.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
