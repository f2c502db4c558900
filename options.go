package markupext

import (
	"fmt"
	"io"
)

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// MaxDepth sets the maximum nesting depth of markup extensions. A top-level extension has
// depth 1. Deeper input fails with NestingTooDeep.
func MaxDepth(depth int) Option {
	return func(p *Parser) error {
		if depth < 1 {
			return fmt.Errorf("max depth must be at least 1, got %d", depth)
		}
		p.maxDepth = depth
		return nil
	}
}

// Trace the parse to "w".
//
// Parsers that trace to the same writer from several goroutines interleave their output
// unless w serialises writes itself.
func Trace(w io.Writer) Option {
	return func(p *Parser) error {
		p.trace = w
		return nil
	}
}

// Filename is recorded in the positions of tokens and errors.
func Filename(filename string) Option {
	return func(p *Parser) error {
		p.filename = filename
		return nil
	}
}
