package markupext

import (
	"github.com/xamlstyler/markupext/lexer"
)

// build converts a parse tree into the public AST, validating names and resolving quotes
// and escapes in string tokens.
func build(node *extensionNode) (*MarkupExtension, error) {
	if node.typeName.Value == "" {
		return nil, &ParseError{Kind: MissingTypeName, Pos: node.typeName.Pos, Found: node.typeName}
	}
	ext := &MarkupExtension{TypeName: node.typeName.Value}
	for _, arg := range node.args {
		value, err := buildValue(arg.value)
		if err != nil {
			return nil, err
		}
		if arg.member == nil {
			ext.Arguments = append(ext.Arguments, &PositionalArgument{Value: value})
			continue
		}
		if arg.member.Value == "" {
			return nil, unexpectedToken(*arg.member, "member name")
		}
		ext.Arguments = append(ext.Arguments, &NamedArgument{Member: arg.member.Value, Value: value})
	}
	return ext, nil
}

func buildValue(node *valueNode) (Value, error) {
	if node.ext != nil {
		ext, err := build(node.ext)
		if err != nil {
			return nil, err
		}
		return ext, nil
	}
	text, quote, err := lexer.Unquote(node.str.Value)
	if err != nil {
		return nil, unexpectedToken(*node.str, "string")
	}
	return &Literal{Text: text, Quote: quote}, nil
}
