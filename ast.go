package markupext

// MarkupExtension is a single "{TypeName ...}" call.
//
// Arguments are kept in source order, positional and named interleaved exactly as written,
// and duplicate member names are preserved.
type MarkupExtension struct {
	TypeName  string
	Arguments []Argument
}

// Argument of a MarkupExtension. It is either a *PositionalArgument or a *NamedArgument.
type Argument interface {
	String() string
	// ArgumentValue returns the value of the argument.
	ArgumentValue() Value
	argument()
}

// PositionalArgument is an argument supplied by position.
type PositionalArgument struct {
	Value Value
}

// NamedArgument is a "Member=Value" argument.
type NamedArgument struct {
	Member string
	Value  Value
}

// Value of an argument. It is either a *Literal or a nested *MarkupExtension.
type Value interface {
	String() string
	value()
}

// Literal is a string argument value.
type Literal struct {
	// Text with quotes removed and escape sequences resolved.
	Text string
	// Quote is the quote rune the literal was written with, or 0 if it was bare.
	Quote rune
}

func (*PositionalArgument) argument() {}
func (*NamedArgument) argument()      {}

func (a *PositionalArgument) ArgumentValue() Value { return a.Value } // nolint: golint
func (a *NamedArgument) ArgumentValue() Value      { return a.Value } // nolint: golint

func (*Literal) value()         {}
func (*MarkupExtension) value() {}

// Positional returns the values of the positional arguments, in order.
func (m *MarkupExtension) Positional() []Value {
	var out []Value
	for _, arg := range m.Arguments {
		if arg, ok := arg.(*PositionalArgument); ok {
			out = append(out, arg.Value)
		}
	}
	return out
}

// Named returns the named arguments with the given member name, in order.
func (m *MarkupExtension) Named(member string) []*NamedArgument {
	var out []*NamedArgument
	for _, arg := range m.Arguments {
		if arg, ok := arg.(*NamedArgument); ok && arg.Member == member {
			out = append(out, arg)
		}
	}
	return out
}

// Depth of the extension tree. An extension without nested extensions has depth 1.
func (m *MarkupExtension) Depth() int {
	depth := 0
	for _, arg := range m.Arguments {
		if nested, ok := arg.ArgumentValue().(*MarkupExtension); ok {
			if d := nested.Depth(); d > depth {
				depth = d
			}
		}
	}
	return depth + 1
}
