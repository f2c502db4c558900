package markupext

import (
	"fmt"
	"io"
	"strings"

	"github.com/xamlstyler/markupext/lexer"
)

type tracer struct {
	w io.Writer
}

// production writes one line per production attempted: the indent follows the nesting
// depth, then the quoted upcoming token and the production name.
func (t *tracer) production(depth int, next lexer.Token, production string) {
	fmt.Fprintf(t.w, "%s%q %s\n", strings.Repeat("  ", depth), next, production)
}
