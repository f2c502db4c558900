package markupext

import (
	"io"
	"strings"

	"github.com/xamlstyler/markupext/lexer"
)

// String renders the extension in canonical single-line form, eg.
//
//	{Binding Foo, Mode=OneWay, Converter={StaticResource conv}}
//
// Parsing the result yields an equivalent tree.
func (m *MarkupExtension) String() string {
	w := &strings.Builder{}
	m.print(w)
	return w.String()
}

// Render writes the canonical form of the extension to w.
func (m *MarkupExtension) Render(w io.Writer) error {
	_, err := io.WriteString(w, m.String())
	return err
}

func (m *MarkupExtension) print(w *strings.Builder) {
	w.WriteByte('{')
	w.WriteString(m.TypeName)
	for i, arg := range m.Arguments {
		if i == 0 {
			w.WriteByte(' ')
		} else {
			w.WriteString(", ")
		}
		printArgument(w, arg)
	}
	w.WriteByte('}')
}

func (a *PositionalArgument) String() string {
	w := &strings.Builder{}
	printArgument(w, a)
	return w.String()
}

func (a *NamedArgument) String() string {
	w := &strings.Builder{}
	printArgument(w, a)
	return w.String()
}

// String renders the literal as a String token: bare and escaped if it was bare and can be
// written that way, quoted otherwise. Text behind a "{}" literal escape is written as is.
func (l *Literal) String() string {
	switch {
	case l.Quote != 0:
		return lexer.Quote(l.Text, l.Quote)
	case lexer.IsLiteralEscape(l.Text):
		return l.Text
	case lexer.CanBeBare(l.Text):
		return lexer.Escape(l.Text)
	default:
		return lexer.Quote(l.Text, '\'')
	}
}

func printArgument(w *strings.Builder, arg Argument) {
	if named, ok := arg.(*NamedArgument); ok {
		w.WriteString(named.Member)
		w.WriteByte('=')
	}
	printValue(w, arg.ArgumentValue())
}

func printValue(w *strings.Builder, v Value) {
	switch v := v.(type) {
	case *MarkupExtension:
		v.print(w)
	case *Literal:
		w.WriteString(v.String())
	}
}
