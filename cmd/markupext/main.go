package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/fatih/color"

	"github.com/xamlstyler/markupext"
	"github.com/xamlstyler/markupext/format"
)

var (
	version string = "dev"
	cli     struct {
		Version  kong.VersionFlag `help:"Show version."`
		MaxDepth int              `default:"64" help:"Maximum nesting depth of markup extensions."`
		Trace    bool             `help:"Trace parsing to stderr."`

		Parse   parseCmd   `cmd:"" help:"Parse markup extensions and dump their syntax tree."`
		Fmt     fmtCmd     `cmd:"" help:"Reformat markup extensions in attribute values."`
		Grammar grammarCmd `cmd:"" help:"Print the markup extension grammar as EBNF."`
	}
)

var (
	errorf    = color.New(color.FgRed, color.Bold).SprintfFunc()
	locationf = color.New(color.Faint).SprintfFunc()
)

type parseCmd struct {
	Canonical bool     `help:"Print the canonical form instead of the syntax tree."`
	Exprs     []string `arg:"" optional:"" help:"Markup extensions to parse. Lines are read from stdin if omitted."`
}

func (c *parseCmd) Run(parser *markupext.Parser) error {
	return eachInput(c.Exprs, func(text string) error {
		ext, err := parser.ParseString(text)
		if err != nil {
			return err
		}
		if c.Canonical {
			fmt.Println(ext.String())
		} else {
			repr.Println(ext)
		}
		return nil
	})
}

type fmtCmd struct {
	IndentSize int      `default:"4" help:"Spaces per indent level."`
	Tabs       bool     `help:"Indent with tabs."`
	MaxOnLine  int      `default:"2" help:"Maximum number of arguments kept on one line."`
	Exprs      []string `arg:"" optional:"" help:"Attribute values to format. Lines are read from stdin if omitted."`
}

func (c *fmtCmd) Run(parser *markupext.Parser) error {
	formatter := format.New(format.Options{
		IndentSize:         c.IndentSize,
		IndentWithTabs:     c.Tabs,
		MaxArgumentsOnLine: c.MaxOnLine,
	}, parser)
	return eachInput(c.Exprs, func(text string) error {
		out, err := formatter.FormatValue(text)
		fmt.Println(out)
		return err
	})
}

type grammarCmd struct{}

func (c *grammarCmd) Run(parser *markupext.Parser) error {
	if _, err := markupext.EBNF(); err != nil {
		return err
	}
	fmt.Print(parser.String())
	return nil
}

type input struct {
	name string
	text string
}

// eachInput calls fn for every expression, or for every non-blank stdin line if there are
// none. Failures are reported as they happen and summarised in the returned error.
func eachInput(exprs []string, fn func(text string) error) error {
	var inputs []input
	if len(exprs) == 0 {
		var err error
		if inputs, err = readLines("<stdin>", os.Stdin); err != nil {
			return err
		}
	}
	for i, expr := range exprs {
		inputs = append(inputs, input{name: fmt.Sprintf("<arg%d>", i+1), text: expr})
	}
	failed := 0
	for _, in := range inputs {
		if err := fn(in.text); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s %s %s\n", locationf("%s:", in.name), errorf("error:"), err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(inputs))
	}
	return nil
}

func readLines(filename string, r io.Reader) ([]input, error) {
	var inputs []input
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		inputs = append(inputs, input{name: fmt.Sprintf("%s:%d", filename, n), text: scanner.Text()})
	}
	return inputs, scanner.Err()
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`A parser and formatter for XAML markup extensions.`),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)
	options := []markupext.Option{markupext.MaxDepth(cli.MaxDepth)}
	if cli.Trace {
		options = append(options, markupext.Trace(os.Stderr))
	}
	parser, err := markupext.New(options...)
	kctx.FatalIfErrorf(err)
	err = kctx.Run(parser)
	kctx.FatalIfErrorf(err)
}
