package markupext_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xamlstyler/markupext"
	"github.com/xamlstyler/markupext/lexer"
)

func TestErrorKindMatching(t *testing.T) {
	_, err := markupext.Parse("{Binding Path=}")
	require.True(t, errors.Is(err, markupext.UnexpectedToken))
	require.False(t, errors.Is(err, markupext.UnterminatedExtension))

	wrapped := fmt.Errorf("formatting MainWindow.xaml: %w", err)
	require.True(t, errors.Is(wrapped, markupext.UnexpectedToken))
	require.Equal(t, markupext.UnexpectedToken, markupext.KindOf(wrapped))

	require.Equal(t, markupext.ErrorKind(0), markupext.KindOf(errors.New("other")))
	require.Equal(t, markupext.ErrorKind(0), markupext.KindOf(nil))
}

func TestUnexpectedTokenDetails(t *testing.T) {
	_, err := markupext.Parse("{T Foo=Bar=Baz}")
	perr, ok := err.(*markupext.ParseError)
	require.True(t, ok)
	require.Equal(t, markupext.UnexpectedToken, perr.Kind)
	require.Equal(t, `"," or "}"`, perr.Expected)
	require.Equal(t, lexer.Equals, perr.Found.Type)
	require.Equal(t, lexer.Position{Offset: 10, Char: 10, Line: 1, Column: 11}, perr.Position())
	require.Equal(t, `unexpected token "=" (expected "," or "}")`, perr.Message())
}

func TestErrorPositionCountsCharacters(t *testing.T) {
	_, err := markupext.Parse("{Tëst Path=}")
	perr, ok := err.(*markupext.ParseError)
	require.True(t, ok)
	require.Equal(t, lexer.Position{Offset: 12, Char: 11, Line: 1, Column: 12}, perr.Position())
}

func TestErrorKindString(t *testing.T) {
	require.Equal(t, "missing type name", markupext.MissingTypeName.String())
	require.Equal(t, "unterminated markup extension", markupext.UnterminatedExtension.Error())
	require.Equal(t, "nesting too deep", markupext.NestingTooDeep.String())
	require.Equal(t, "ErrorKind(42)", markupext.ErrorKind(42).String())
}

func TestParseErrorMessageWithoutDetail(t *testing.T) {
	err := &markupext.ParseError{Kind: markupext.NestingTooDeep, Pos: lexer.Position{Line: 2, Column: 5}}
	require.EqualError(t, err, "2:5: nesting too deep")
}
