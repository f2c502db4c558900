package markupext

import (
	"strconv"

	"github.com/xamlstyler/markupext/lexer"
)

// Context for a single parse.
type parseContext struct {
	*lexer.Lexer
	depth    int
	maxDepth int
	trace    *tracer
}

func newParseContext(lex *lexer.Lexer, maxDepth int, trace *tracer) *parseContext {
	return &parseContext{
		Lexer:    lex,
		maxDepth: maxDepth,
		trace:    trace,
	}
}

// enter a nested extension opened by the given token.
func (p *parseContext) enter(open lexer.Token) error {
	if p.depth >= p.maxDepth {
		return &ParseError{
			Kind:   NestingTooDeep,
			Pos:    open.Pos,
			Found:  open,
			Detail: "markup extensions nested deeper than " + strconv.Itoa(p.maxDepth),
		}
	}
	p.depth++
	return nil
}

func (p *parseContext) leave() {
	p.depth--
}

// Trace a production about to be parsed.
func (p *parseContext) Trace(production string) {
	if p.trace != nil {
		p.trace.production(p.depth, p.Peek(), production)
	}
}
