package markupext

import (
	"io"
	"io/ioutil"

	"github.com/xamlstyler/markupext/lexer"
)

// DefaultMaxDepth is the nesting bound used unless MaxDepth is given.
const DefaultMaxDepth = 64

// A Parser for markup extensions.
//
// A Parser holds only its configuration and is safe for concurrent use.
type Parser struct {
	maxDepth int
	trace    io.Writer
	filename string
}

var defaultParser = MustNew()

// New creates a Parser.
func New(options ...Option) (*Parser, error) {
	p := &Parser{maxDepth: DefaultMaxDepth}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustNew calls New and panics on error.
func MustNew(options ...Option) *Parser {
	p, err := New(options...)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse a markup extension with the default Parser.
func Parse(text string) (*MarkupExtension, error) {
	return defaultParser.ParseString(text)
}

// Parse a markup extension from r.
func (p *Parser) Parse(r io.Reader) (*MarkupExtension, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return p.ParseBytes(data)
}

// ParseBytes parses a markup extension from data.
func (p *Parser) ParseBytes(data []byte) (*MarkupExtension, error) {
	return p.ParseString(string(data))
}

// ParseString parses a markup extension from text.
//
// Leading whitespace is skipped. Anything other than whitespace after the closing "}" is an
// error. Every failure is returned as a *ParseError; no partial tree is returned.
func (p *Parser) ParseString(text string) (*MarkupExtension, error) {
	var trace *tracer
	if p.trace != nil {
		trace = &tracer{w: p.trace}
	}
	ctx := newParseContext(lexer.New(p.filename, text), p.maxDepth, trace)
	node, err := ctx.parseExtension()
	if err != nil {
		return nil, err
	}
	if token := ctx.Next(); !token.EOF() {
		return nil, unexpectedToken(token, "end of input")
	}
	return build(node)
}

// MarkupExtension ::= '{' TypeName ( Arguments )? '}'
func (p *parseContext) parseExtension() (*extensionNode, error) {
	p.Trace("MarkupExtension")
	open := p.Next()
	if open.Type != lexer.LBrace {
		return nil, unexpectedToken(open, `"{"`)
	}
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()

	typeName := p.Next()
	switch typeName.Type {
	case lexer.Name:
	case lexer.EOF:
		return nil, expectedToken(typeName, "type name")
	default:
		return nil, &ParseError{Kind: MissingTypeName, Pos: typeName.Pos, Found: typeName}
	}
	node := &extensionNode{open: open, typeName: typeName}

	if p.Peek().Type != lexer.RBrace {
		for {
			arg, err := p.parseArgument()
			if err != nil {
				return nil, err
			}
			node.args = append(node.args, arg)
			if p.Peek().Type != lexer.Comma {
				break
			}
			p.Next()
		}
	}

	if closing := p.Next(); closing.Type != lexer.RBrace {
		return nil, expectedToken(closing, `"," or "}"`)
	}
	return node, nil
}

// A comma separated item is a NamedArg if it starts with MemberName '=', otherwise it is
// a positional Argument.
func (p *parseContext) parseArgument() (*argumentNode, error) {
	cp := p.Checkpoint()
	named := p.Next().Type == lexer.Name && p.Next().Type == lexer.Equals
	p.Rewind(cp)
	if !named {
		p.Trace("PositionalArg")
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		return &argumentNode{value: value}, nil
	}
	p.Trace("NamedArg")
	member := p.Next()
	p.Next()
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return &argumentNode{member: &member, value: value}, nil
}

// Argument ::= MarkupExtension | String
//
// A value starting with the "{}" literal escape is a String.
func (p *parseContext) parseValue() (*valueNode, error) {
	p.Trace("Argument")
	if p.Peek().Type == lexer.LBrace && !p.AtLiteralEscape() {
		ext, err := p.parseExtension()
		if err != nil {
			return nil, err
		}
		return &valueNode{ext: ext}, nil
	}
	str, err := p.NextString()
	if err != nil {
		return nil, annotateError(err)
	}
	if str.Value == "" {
		return nil, expectedToken(p.Peek(), "string or markup extension")
	}
	return &valueNode{str: &str}, nil
}
