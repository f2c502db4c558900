package markupext

import "github.com/xamlstyler/markupext/lexer"

// Parse tree produced by the recursive descent parser. Nodes keep raw tokens; the builder
// turns them into the public AST.

type extensionNode struct {
	open     lexer.Token
	typeName lexer.Token
	args     []*argumentNode
}

type argumentNode struct {
	// member is nil for positional arguments.
	member *lexer.Token
	value  *valueNode
}

// valueNode holds exactly one of str or ext.
type valueNode struct {
	str *lexer.Token
	ext *extensionNode
}
