package lexer

import "fmt"

const (
	// EOF represents the end of the input span.
	EOF rune = -(iota + 1)
	// Name is a TypeName or MemberName terminal.
	Name
	// String is a bare or quoted argument value.
	String
	// Invalid is a run of characters that cannot start any token in the current position.
	Invalid
)

// Punctuation tokens use their own rune as the token type.
const (
	LBrace rune = '{'
	RBrace rune = '}'
	Comma  rune = ','
	Equals rune = '='
)

// Symbols returns a map of symbolic names to the corresponding token types.
func Symbols() map[string]rune {
	return map[string]rune{
		"EOF":     EOF,
		"Name":    Name,
		"String":  String,
		"Invalid": Invalid,
		"{":       LBrace,
		"}":       RBrace,
		",":       Comma,
		"=":       Equals,
	}
}

// SymbolName returns a human readable name for a token type, as used in error messages.
func SymbolName(typ rune) string {
	switch typ {
	case EOF:
		return "<EOF>"
	case Name:
		return "<name>"
	case String:
		return "<string>"
	case Invalid:
		return "<invalid>"
	}
	return fmt.Sprintf("%q", string(typ))
}

// Position of a token.
//
// Offset is a byte offset into the input span and Char the offset in characters. Column
// counts characters, not bytes.
type Position struct {
	Filename string
	Offset   int
	Char     int
	Line     int
	Column   int
}

func (p Position) GoString() string {
	return fmt.Sprintf("Position{Filename: %q, Offset: %d, Char: %d, Line: %d, Column: %d}",
		p.Filename, p.Offset, p.Char, p.Line, p.Column)
}

func (p Position) String() string {
	filename := p.Filename
	if filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", filename, p.Line, p.Column)
}

// A Token returned by a Lexer.
type Token struct {
	// Type of token. One of the symbols returned by Symbols().
	Type rune
	// Value is the raw source text of the token. String tokens keep their quotes and escapes.
	Value string
	Pos   Position
}

// RuneToken represents a punctuation rune as a Token.
func RuneToken(r rune) Token {
	return Token{Type: r, Value: string(r)}
}

// EOFToken creates a new EOF token at the given position.
func EOFToken(pos Position) Token {
	return Token{Type: EOF, Pos: pos}
}

// EOF returns true if this Token is an EOF token.
func (t Token) EOF() bool {
	return t.Type == EOF
}

func (t Token) String() string {
	if t.EOF() {
		return "<EOF>"
	}
	return t.Value
}

func (t Token) GoString() string {
	if t.Pos == (Position{}) {
		return fmt.Sprintf("Token{%s, %q}", SymbolName(t.Type), t.Value)
	}
	return fmt.Sprintf("Token@%s{%s, %q}", t.Pos.String(), SymbolName(t.Type), t.Value)
}
