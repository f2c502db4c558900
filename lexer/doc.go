// Package lexer tokenizes XAML markup extension spans.
//
// Markup extensions are not context free at the lexical level: a TypeName, a MemberName
// and a bare String can all start with the same characters. The Lexer therefore exposes
// two scanning modes and leaves the choice to the parser:
//
//   - Next and Peek return structural tokens ("{", "}", ",", "=") and names.
//   - NextString scans a single argument value, tracking nested braces and escapes.
//   - AtLiteralEscape reports whether a value starts with the "{}" literal escape and so
//     must be scanned with NextString.
//
// Checkpoint and Rewind give the parser cheap lookahead across both modes.
package lexer
