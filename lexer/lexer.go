package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer over a single input span.
//
// A Lexer is not safe for concurrent use, but it holds no state beyond its cursor, so
// creating one per parse is cheap.
type Lexer struct {
	input string
	pos   Position
}

// Checkpoint is a saved Lexer cursor.
type Checkpoint struct {
	pos Position
}

// New creates a Lexer over input. The filename is only used for positions.
func New(filename, input string) *Lexer {
	return &Lexer{
		input: input,
		pos:   Position{Filename: filename, Line: 1, Column: 1},
	}
}

// Position of the cursor.
func (l *Lexer) Position() Position {
	return l.pos
}

// Checkpoint returns the current cursor, to be restored with Rewind.
func (l *Lexer) Checkpoint() Checkpoint {
	return Checkpoint{pos: l.pos}
}

// Rewind the cursor to a previously saved Checkpoint.
func (l *Lexer) Rewind(cp Checkpoint) {
	l.pos = cp.pos
}

// Peek at the next structural token without consuming it.
func (l *Lexer) Peek() Token {
	cp := l.Checkpoint()
	t := l.Next()
	l.Rewind(cp)
	return t
}

// AtLiteralEscape reports whether the next significant characters are the "{}" literal
// escape, which starts a String rather than a nested markup extension.
func (l *Lexer) AtLiteralEscape() bool {
	cp := l.Checkpoint()
	defer l.Rewind(cp)
	l.skipWhitespace()
	return strings.HasPrefix(l.input[l.pos.Offset:], "{}")
}

// Next consumes and returns the next structural token or name.
//
// Characters that are neither punctuation nor name characters are returned as a single
// Invalid token running up to the next whitespace or punctuation.
func (l *Lexer) Next() Token {
	l.skipWhitespace()
	start := l.pos
	r := l.peekRune()
	switch {
	case r == EOF:
		return EOFToken(start)

	case isPunctuation(r):
		l.advance(r)
		t := RuneToken(r)
		t.Pos = start
		return t

	case IsNameRune(r):
		for r = l.peekRune(); IsNameRune(r); r = l.peekRune() {
			l.advance(r)
		}
		if r == EOF || isPunctuation(r) || unicode.IsSpace(r) {
			return Token{Type: Name, Value: l.input[start.Offset:l.pos.Offset], Pos: start}
		}
	}
	for r = l.peekRune(); r != EOF && !isPunctuation(r) && !unicode.IsSpace(r); r = l.peekRune() {
		l.advance(r)
	}
	return Token{Type: Invalid, Value: l.input[start.Offset:l.pos.Offset], Pos: start}
}

// NextString consumes a String token.
//
// A string starting with a quote runs to the matching unescaped quote. Otherwise the string
// is bare: it runs until a ",", "=" or "}" that is not inside braces opened by the string
// itself, and trailing unescaped whitespace is not part of the token. A backslash always
// protects the following character from terminating the token.
//
// The returned token is empty if the cursor is already at a terminator.
func (l *Lexer) NextString() (Token, error) {
	l.skipWhitespace()
	start := l.pos
	if r := l.peekRune(); r == '\'' || r == '"' {
		if err := l.scanQuoted(r); err != nil {
			return Token{}, err
		}
		return Token{Type: String, Value: l.input[start.Offset:l.pos.Offset], Pos: start}, nil
	}
	end, err := l.scanBare()
	if err != nil {
		return Token{}, err
	}
	return Token{Type: String, Value: l.input[start.Offset:end], Pos: start}, nil
}

func (l *Lexer) scanQuoted(quote rune) error {
	open := l.pos
	l.advance(quote)
	for {
		r := l.peekRune()
		switch r {
		case EOF:
			return Errorf(open, "unterminated quoted string")
		case '\\':
			if err := l.scanEscape(); err != nil {
				return err
			}
		case quote:
			l.advance(r)
			return nil
		default:
			l.advance(r)
		}
	}
}

// scanBare returns the end offset of the token, excluding trailing whitespace.
func (l *Lexer) scanBare() (int, error) {
	depth := 0
	var open Position
	end := l.pos.Offset
	for {
		r := l.peekRune()
		switch {
		case r == EOF:
			if depth > 0 {
				return 0, Errorf(open, "unterminated nested markup extension")
			}
			return end, nil

		case r == '\\':
			if err := l.scanEscape(); err != nil {
				return 0, err
			}

		case r == '{':
			if depth == 0 {
				open = l.pos
			}
			depth++
			l.advance(r)

		case r == '}':
			if depth == 0 {
				return end, nil
			}
			depth--
			l.advance(r)

		case (r == ',' || r == '=') && depth == 0:
			return end, nil

		case unicode.IsSpace(r):
			l.advance(r)
			continue

		default:
			l.advance(r)
		}
		end = l.pos.Offset
	}
}

func (l *Lexer) scanEscape() error {
	at := l.pos
	l.advance('\\')
	r := l.peekRune()
	if r == EOF {
		return Errorf(at, "unterminated escape sequence")
	}
	l.advance(r)
	return nil
}

func (l *Lexer) skipWhitespace() {
	for r := l.peekRune(); r != EOF && unicode.IsSpace(r); r = l.peekRune() {
		l.advance(r)
	}
}

func (l *Lexer) peekRune() rune {
	if l.pos.Offset >= len(l.input) {
		return EOF
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos.Offset:])
	return r
}

// advance over r, which must be the rune at the cursor.
func (l *Lexer) advance(r rune) {
	if r == utf8.RuneError {
		_, size := utf8.DecodeRuneInString(l.input[l.pos.Offset:])
		l.pos.Offset += size
	} else {
		l.pos.Offset += utf8.RuneLen(r)
	}
	l.pos.Char++
	if r == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
}

// IsNameRune reports whether r may appear in a TypeName or MemberName.
func IsNameRune(r rune) bool {
	switch r {
	case '.', ':', '_', '-':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isPunctuation(r rune) bool {
	switch r {
	case LBrace, RBrace, Comma, Equals:
		return true
	}
	return false
}
