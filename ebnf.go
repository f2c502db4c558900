package markupext

import (
	"strings"

	"golang.org/x/exp/ebnf"
)

// Grammar of markup extensions in golang.org/x/exp/ebnf notation.
//
// Upper-case productions are syntactic, lower-case productions are lexical. The lexical
// productions only approximate the String terminal: the lexer additionally balances braces
// inside bare strings, stops them at "," "=" and "}", and resolves escapes.
const Grammar = `MarkupExtension = "{" TypeName [ Arguments ] "}" .
Arguments = NamedArgs | PositionalArgs [ "," NamedArgs ] .
NamedArgs = NamedArg { "," NamedArg } .
NamedArg = MemberName "=" Argument .
PositionalArgs = NamedArgs | Argument [ "," PositionalArgs ] .
Argument = MarkupExtension | String .
TypeName = name .
MemberName = name .
String = quoted | bare .
name = namechar { namechar } .
namechar = letter | digit | "." | ":" | "_" | "-" .
letter = "a" … "z" | "A" … "Z" .
digit = "0" … "9" .
quoted = "'" { char } "'" | "\"" { char } "\"" .
bare = barechar { barechar } .
barechar = escape | char .
escape = "\\" char .
char = " " … "\U0010FFFF" .
`

// StartProduction is the root production of Grammar.
const StartProduction = "MarkupExtension"

// String returns the EBNF for the grammar accepted by the Parser.
func (p *Parser) String() string {
	return Grammar
}

// EBNF parses Grammar and verifies that it is complete and consistent from StartProduction.
func EBNF() (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse("markupext.ebnf", strings.NewReader(Grammar))
	if err != nil {
		return nil, err
	}
	if err := ebnf.Verify(grammar, StartProduction); err != nil {
		return nil, err
	}
	return grammar, nil
}
