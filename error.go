package markupext

import (
	"errors"
	"fmt"

	"github.com/xamlstyler/markupext/lexer"
)

// ErrorKind classifies a parse failure.
//
// ErrorKind implements error so that kinds can be matched with errors.Is:
//
//	if errors.Is(err, markupext.NestingTooDeep) { ... }
type ErrorKind int

const (
	// MissingTypeName is returned when "{" is not followed by a valid type name.
	MissingTypeName ErrorKind = iota + 1
	// UnterminatedExtension is returned when the input ends before the matching "}".
	UnterminatedExtension
	// UnexpectedToken is returned for any other structural mismatch.
	UnexpectedToken
	// NestingTooDeep is returned when markup extensions nest deeper than the configured bound.
	NestingTooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case MissingTypeName:
		return "missing type name"
	case UnterminatedExtension:
		return "unterminated markup extension"
	case UnexpectedToken:
		return "unexpected token"
	case NestingTooDeep:
		return "nesting too deep"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) Error() string { return k.String() }

// Error represents an error while parsing.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() lexer.Position
}

// ParseError is the Error returned for every parse failure.
type ParseError struct {
	Kind ErrorKind
	Pos  lexer.Position
	// Expected describes what the parser was looking for. Only set for UnexpectedToken.
	Expected string
	// Found is the offending token, if any.
	Found lexer.Token
	// Detail overrides the default message for the kind.
	Detail string
}

var _ Error = &ParseError{}

func (p *ParseError) Error() string {
	return lexer.FormatError(p.Pos, p.Message())
}

func (p *ParseError) Message() string { // nolint: golint
	if p.Detail != "" {
		return p.Detail
	}
	switch p.Kind {
	case MissingTypeName:
		return fmt.Sprintf("expected type name but found %q", p.Found)
	case UnexpectedToken:
		var expected string
		if p.Expected != "" {
			expected = fmt.Sprintf(" (expected %s)", p.Expected)
		}
		return fmt.Sprintf("unexpected token %q%s", p.Found, expected)
	}
	return p.Kind.String()
}

func (p *ParseError) Position() lexer.Position { return p.Pos } // nolint: golint

// Is reports whether target is the ErrorKind of this error.
func (p *ParseError) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == p.Kind
}

// KindOf returns the ErrorKind of err, or 0 if err is not a parse failure.
func KindOf(err error) ErrorKind {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return 0
}

func unexpectedToken(found lexer.Token, expected string) *ParseError {
	return &ParseError{Kind: UnexpectedToken, Pos: found.Pos, Expected: expected, Found: found}
}

// expectedToken reports a mismatch on a token inside an open extension. Running out of
// input there means the extension was never closed.
func expectedToken(found lexer.Token, expected string) *ParseError {
	if found.EOF() {
		return &ParseError{Kind: UnterminatedExtension, Pos: found.Pos, Expected: expected, Found: found}
	}
	return unexpectedToken(found, expected)
}

// annotateError converts a lexer failure into a ParseError.
//
// The lexer only fails when input ends inside an open token, so every lexer error is an
// unterminated extension.
func annotateError(err error) error {
	var lerr *lexer.Error
	if errors.As(err, &lerr) {
		return &ParseError{Kind: UnterminatedExtension, Pos: lerr.Pos, Detail: lerr.Msg}
	}
	return err
}
