package resume

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// shortListMax is the exclusive rune length under which a comma line is
	// always treated as an inline list.
	shortListMax = 120
	// longListMaxParts is the fragment count up to which a longer comma line
	// is still treated as a list.
	longListMaxParts = 10
)

// Items decomposes lines[start:end] into list items. Bullet lines become a
// single item with the marker removed, comma lines are split into fragments
// and anything else is kept verbatim as a paragraph item.
func Items(lines []string, start, end int) []string {
	start = max(start, 0)
	end = min(end, len(lines))

	items := []string{}
	for i := start; i < end; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		bullet := isBullet(line)
		comma := strings.Contains(line, ",")

		switch {
		case bullet:
			items = append(items, stripBullet(line))
		case comma && utf8.RuneCountInString(line) < shortListMax:
			items = append(items, splitCommas(line)...)
		case comma && len(strings.Split(line, ",")) <= longListMaxParts:
			items = append(items, splitCommas(line)...)
		default:
			items = append(items, line)
		}
	}
	return items
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "*") ||
		strings.HasPrefix(line, "•")
}

func stripBullet(line string) string {
	return strings.TrimLeftFunc(line, func(r rune) bool {
		return r == '-' || r == '*' || r == '•' || unicode.IsSpace(r)
	})
}

func splitCommas(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
