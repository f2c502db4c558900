package markupext_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"

	"github.com/xamlstyler/markupext"
)

func TestString(t *testing.T) {
	tests := []struct {
		input    *markupext.MarkupExtension
		expected string
	}{
		{ext("Binding"), "{Binding}"},
		{ext("Binding", positional(lit("Foo")), named("Mode", lit("OneWay"))), "{Binding Foo, Mode=OneWay}"},
		{ext("Binding", named("Converter", ext("StaticResource", positional(lit("conv"))))),
			"{Binding Converter={StaticResource conv}}"},
		{ext("T", positional(lit("a, b=c"))), `{T a\, b\=c}`},
		{ext("T", positional(lit("{x}"))), `{T \{x\}}`},
		{ext("T", positional(lit(" padded "))), `{T ' padded '}`},
		{ext("T", positional(lit(""))), `{T ''}`},
		{ext("T", named("StringFormat", lit("{}{0:C}"))), `{T StringFormat={}{0:C}}`},
		{ext("T", positional(lit("{}a,b"))), `{T \{\}a\,b}`},
		{ext("T", named("F", &markupext.Literal{Text: "{}{0:N2}", Quote: '\''})), `{T F='{}{0:N2}'}`},
		{ext("T", named("F", &markupext.Literal{Text: `say "hi"`, Quote: '"'})), `{T F="say \"hi\""}`},
	}
	for _, test := range tests {
		require.Equal(t, test.expected, test.input.String())
	}
}

func TestRender(t *testing.T) {
	w := &bytes.Buffer{}
	err := ext("StaticResource", positional(lit("Brush"))).Render(w)
	require.NoError(t, err)
	require.Equal(t, "{StaticResource Brush}", w.String())
}

func TestArgumentString(t *testing.T) {
	require.Equal(t, "Path=Foo", named("Path", lit("Foo")).String())
	require.Equal(t, "{x:Null}", positional(ext("x:Null")).String())
}

func TestParseCanonicalIsStable(t *testing.T) {
	for _, input := range []string{
		"{Binding}",
		"{Binding Foo, Mode=OneWay}",
		"{Binding Converter={StaticResource A, B}}",
		"{T A=1, 2, B=3}",
		"{Binding StringFormat='{}{0:N2}'}",
		`{T a\,b, \{e\}}`,
		"{Binding Price, StringFormat={}{0:C}}",
	} {
		actual, err := markupext.Parse(input)
		require.NoError(t, err)
		require.Equal(t, input, actual.String())
	}
}

// treeGenerator builds random valid trees for round trip testing.
type treeGenerator struct {
	rnd *rand.Rand
}

var (
	generatedNames = []string{"Binding", "StaticResource", "x:Static", "local:My.Type", "Path", "Mode", "A_1", "data-context"}
	generatedRunes = []rune("abcXYZ019 .:_-{},='\"\\äß")
)

func (g *treeGenerator) name() string {
	return generatedNames[g.rnd.Intn(len(generatedNames))]
}

func (g *treeGenerator) text() string {
	n := g.rnd.Intn(8)
	out := make([]rune, n)
	for i := range out {
		out[i] = generatedRunes[g.rnd.Intn(len(generatedRunes))]
	}
	return string(out)
}

func (g *treeGenerator) literal() *markupext.Literal {
	text := g.text()
	switch g.rnd.Intn(3) {
	case 0:
		return &markupext.Literal{Text: text, Quote: '\''}
	case 1:
		return &markupext.Literal{Text: text, Quote: '"'}
	}
	// Bare literals come back bare only if they can be written that way.
	text = strings.TrimSpace(text)
	if text == "" {
		text = "x"
	}
	return &markupext.Literal{Text: text}
}

func (g *treeGenerator) extension(depth int) *markupext.MarkupExtension {
	out := &markupext.MarkupExtension{TypeName: g.name()}
	for i := g.rnd.Intn(4); i > 0; i-- {
		var value markupext.Value
		if depth > 1 && g.rnd.Intn(3) == 0 {
			value = g.extension(depth - 1)
		} else {
			value = g.literal()
		}
		if g.rnd.Intn(2) == 0 {
			out.Arguments = append(out.Arguments, &markupext.NamedArgument{Member: g.name(), Value: value})
		} else {
			out.Arguments = append(out.Arguments, &markupext.PositionalArgument{Value: value})
		}
	}
	return out
}

func TestRoundTripGeneratedTrees(t *testing.T) {
	g := &treeGenerator{rnd: rand.New(rand.NewSource(0))}
	for i := 0; i < 2000; i++ {
		expected := g.extension(5)
		rendered := expected.String()
		actual, err := markupext.Parse(rendered)
		require.NoError(t, err, rendered)
		require.Equal(t, expected, actual, "%s\n%s", rendered, repr.String(actual))
	}
}
