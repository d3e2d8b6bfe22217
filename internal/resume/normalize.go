package resume

import "strings"

// lineBreaks folds carriage returns, the ASCII vertical separators and the
// Unicode line terminators into '\n'. Form feeds mark page breaks in text
// pulled out of PDFs.
var lineBreaks = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	`\r`, "\n",
	"\v", "\n",
	"\f", "\n",
	"\x1c", "\n",
	"\x1d", "\n",
	"\x1e", "\n",
	"\u0085", "\n",
	"\u2028", "\n",
	"\u2029", "\n",
)

// Normalize folds line-break variants (including an escaped `\r`) into
// newlines, trims the document and splits it into lines. Empty input yields
// an empty slice.
func Normalize(text string) []string {
	t := strings.TrimSpace(lineBreaks.Replace(text))
	if t == "" {
		return []string{}
	}
	return strings.Split(t, "\n")
}
