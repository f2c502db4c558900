package lexer

import "fmt"

// Error represents an error while lexing.
//
// The lexer only fails when the input ends inside a token that needs closing: an unbalanced
// nested brace, an open quote or a trailing escape character.
type Error struct {
	Msg string
	Pos Position
}

// Errorf creates a new Error at the given position.
func Errorf(pos Position, format string, args ...interface{}) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// Message returns the error message without the position.
func (e *Error) Message() string { return e.Msg } // nolint: golint

// Position returns the position where the error was detected.
func (e *Error) Position() Position { return e.Pos } // nolint: golint

func (e *Error) Error() string { return FormatError(e.Pos, e.Msg) }

// FormatError formats an error in the form "[<filename>:]<line>:<column>: <message>".
func FormatError(pos Position, message string) string {
	return fmt.Sprintf("%s: %s", pos, message)
}
