// Package format reflows markup extensions found in XAML attribute values.
//
// It is the consumer side of the parser: a value that fails to parse is returned exactly as
// it was given, so one malformed attribute never prevents formatting the rest of a document.
package format

import (
	"strings"

	"github.com/xamlstyler/markupext"
)

// Options control the layout of formatted markup extensions. Zero values are replaced by
// the defaults.
type Options struct {
	// IndentSize is the number of spaces per indent level. Defaults to 4.
	IndentSize int
	// IndentWithTabs indents with one tab per level instead of spaces.
	IndentWithTabs bool
	// MaxArgumentsOnLine is the largest number of arguments an extension may have and still
	// be kept on a single line. Defaults to 2.
	MaxArgumentsOnLine int
}

// DefaultOptions returns the default layout options.
func DefaultOptions() Options {
	return Options{IndentSize: 4, MaxArgumentsOnLine: 2}
}

func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.IndentSize <= 0 {
		o.IndentSize = defaults.IndentSize
	}
	if o.MaxArgumentsOnLine <= 0 {
		o.MaxArgumentsOnLine = defaults.MaxArgumentsOnLine
	}
	return o
}

// A Formatter formats attribute values. It is safe for concurrent use.
type Formatter struct {
	options Options
	parser  *markupext.Parser
}

// New creates a Formatter. If parser is nil a default markupext.Parser is used.
func New(options Options, parser *markupext.Parser) *Formatter {
	if parser == nil {
		parser = markupext.MustNew()
	}
	return &Formatter{options: options.withDefaults(), parser: parser}
}

// Attribute formats a single attribute value with a default Formatter.
func Attribute(value string, options Options) string {
	return New(options, nil).Format(value)
}

// Format returns value with its markup extension reflowed, or value unchanged if it is not
// a markup extension or cannot be parsed.
func (f *Formatter) Format(value string) string {
	out, err := f.FormatValue(value)
	if err != nil {
		return value
	}
	return out
}

// FormatValue is like Format but also returns the parse error, if any. The returned string
// is always usable: on error it is the original value.
func (f *Formatter) FormatValue(value string) (string, error) {
	if !IsMarkupExtension(value) {
		return value, nil
	}
	ext, err := f.parser.ParseString(value)
	if err != nil {
		return value, err
	}
	w := &strings.Builder{}
	f.writeExtension(w, ext, 0)
	return w.String(), nil
}

// IsMarkupExtension reports whether an attribute value holds a markup extension, ie. it
// starts with "{" but not with the "{}" literal escape sequence.
func IsMarkupExtension(value string) bool {
	value = strings.TrimLeft(value, " \t\r\n")
	return strings.HasPrefix(value, "{") && !strings.HasPrefix(value, "{}")
}

// fitsOnLine reports whether ext and all extensions nested in it are short enough to be
// written on a single line.
func (f *Formatter) fitsOnLine(ext *markupext.MarkupExtension) bool {
	if len(ext.Arguments) > f.options.MaxArgumentsOnLine {
		return false
	}
	for _, arg := range ext.Arguments {
		if nested, ok := arg.ArgumentValue().(*markupext.MarkupExtension); ok && !f.fitsOnLine(nested) {
			return false
		}
	}
	return true
}

// writeExtension keeps the first argument on the type name line and puts every following
// argument on its own line, one level deeper than the extension itself.
func (f *Formatter) writeExtension(w *strings.Builder, ext *markupext.MarkupExtension, level int) {
	if f.fitsOnLine(ext) {
		w.WriteString(ext.String())
		return
	}
	w.WriteByte('{')
	w.WriteString(ext.TypeName)
	for i, arg := range ext.Arguments {
		if i == 0 {
			w.WriteByte(' ')
		} else {
			w.WriteString(",\n")
			w.WriteString(f.indent(level + 1))
		}
		if named, ok := arg.(*markupext.NamedArgument); ok {
			w.WriteString(named.Member)
			w.WriteByte('=')
		}
		switch value := arg.ArgumentValue().(type) {
		case *markupext.MarkupExtension:
			f.writeExtension(w, value, level+1)
		default:
			w.WriteString(value.String())
		}
	}
	w.WriteByte('}')
}

func (f *Formatter) indent(level int) string {
	if f.options.IndentWithTabs {
		return strings.Repeat("\t", level)
	}
	return strings.Repeat(" ", level*f.options.IndentSize)
}
