package lexer

import (
	"strings"
	"unicode"
)

// Unquote returns the text of a String token value with quotes removed and escape sequences
// resolved, along with the quote rune that enclosed it (0 for bare strings).
//
// A backslash followed by one of { } , = \ ' " or a whitespace character yields that
// character, in bare and quoted strings alike. A backslash before any other character is
// kept verbatim.
func Unquote(value string) (text string, quote rune, err error) {
	if value == "" {
		return "", 0, nil
	}
	if q := rune(value[0]); q == '\'' || q == '"' {
		if len(value) < 2 || rune(value[len(value)-1]) != q || !evenBackslashes(value[1:len(value)-1]) {
			return "", 0, Errorf(Position{}, "invalid quoted string %s", value)
		}
		return unescape(value[1:len(value)-1]), q, nil
	}
	return unescape(value), 0, nil
}

// Escape text so that it scans as a single bare String token.
//
// Leading and trailing whitespace cannot be represented in a bare string; use CanBeBare
// to check and Quote otherwise.
func Escape(text string) string {
	w := &strings.Builder{}
	for _, r := range text {
		if isBareEscapable(r) {
			w.WriteByte('\\')
		}
		w.WriteRune(r)
	}
	return w.String()
}

// Quote text with the given quote rune, escaping the quote and backslashes.
func Quote(text string, quote rune) string {
	w := &strings.Builder{}
	w.WriteRune(quote)
	for _, r := range text {
		if r == quote || r == '\\' {
			w.WriteByte('\\')
		}
		w.WriteRune(r)
	}
	w.WriteRune(quote)
	return w.String()
}

// CanBeBare reports whether text survives a round trip through Escape and Unquote.
func CanBeBare(text string) bool {
	if text == "" {
		return false
	}
	return strings.TrimFunc(text, unicode.IsSpace) == text
}

func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	w := &strings.Builder{}
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			if !isEscapable(r) {
				w.WriteByte('\\')
			}
			w.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		default:
			w.WriteRune(r)
		}
	}
	if escaped {
		w.WriteByte('\\')
	}
	return w.String()
}

// evenBackslashes reports whether s ends with an even number of backslashes, ie. a quote
// following s would not be escaped.
func evenBackslashes(s string) bool {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n%2 == 0
}

// IsLiteralEscape reports whether text starts with the "{}" literal escape and scans back
// unchanged as one bare String token, so it can be written without escaping.
func IsLiteralEscape(text string) bool {
	if !strings.HasPrefix(text, "{}") || strings.ContainsRune(text, '\\') || !CanBeBare(text) {
		return false
	}
	token, err := New("", text).NextString()
	return err == nil && token.Value == text
}

func isEscapable(r rune) bool {
	return isBareEscapable(r) || unicode.IsSpace(r)
}

// isBareEscapable reports whether r must be escaped in a bare string.
func isBareEscapable(r rune) bool {
	switch r {
	case '{', '}', ',', '=', '\\', '\'', '"':
		return true
	}
	return false
}
