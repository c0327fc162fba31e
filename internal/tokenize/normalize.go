package tokenize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// quoteFolder standardizes curly apostrophes and quotes to plain ASCII
// so the token grammar sees a single apostrophe form.
var quoteFolder = strings.NewReplacer(
	"’", "'", // ’
	"‘", "'", // ‘
	"“", `"`, // “
	"”", `"`, // ”
)

// Normalize applies NFKC Unicode normalization and folds curly quotes.
// NFKC makes visually-similar characters consistent (ligatures, fullwidth
// forms) before tokenization.
func Normalize(text string) string {
	return quoteFolder.Replace(norm.NFKC.String(text))
}
