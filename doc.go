// Package markupext parses XAML markup extensions, the "{TypeName ...}" call syntax used
// inside attribute values, into a syntax tree.
//
// The grammar is:
//
//	MarkupExtension ::= '{' TypeName ( Arguments )? '}'
//	Arguments       ::= NamedArgs | PositionalArgs ( ',' NamedArgs )?
//	NamedArgs       ::= NamedArg ( ',' NamedArg )*
//	NamedArg        ::= MemberName '=' Argument
//	PositionalArgs  ::= NamedArgs | Argument ( ',' PositionalArgs )?
//	Argument        ::= MarkupExtension | String
//
// Each comma separated argument is classified with one token of lookahead: if it starts
// with MemberName '=' it is named, otherwise positional. Arguments are kept in source order,
// so positional arguments may follow named ones.
//
// Example:
//
//	ext, err := markupext.Parse(`{Binding Items, Converter={StaticResource conv}}`)
//	if err != nil {
//		// Leave the attribute value untouched.
//	}
//	fmt.Println(ext.TypeName)                          // Binding
//	fmt.Println(ext.Named("Converter")[0].Value)       // {StaticResource conv}
//
// The parser only recovers syntax. It does not check that type or member names exist and
// does not decide how the result is laid out; see the format package for that.
package markupext
