package resume

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	emailPattern = regexp.MustCompile(`(?i)[a-zA-Z0-9.\-+_]+@[a-zA-Z0-9.\-+_]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[\s-]?)?(\(?\d{2,4}\)?[\s-]?)?\d{3,4}[\s-]?\d{3,4}`)
	skillsInline = regexp.MustCompile(`(?i)skills:\s*(.+)`)
)

// skillsFallbackMax bounds how much text after "skills:" is read as a list.
const skillsFallbackMax = 400

func findEmail(text string) string {
	return emailPattern.FindString(text)
}

// findPhone returns the first phone-like match with separators and
// parentheses removed. A leading '+' survives.
func findPhone(text string) string {
	m := phonePattern.FindString(text)
	if m == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range m {
		if unicode.IsDigit(r) || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// findName looks at the first three non-empty lines. The first one wins if it
// has two to four words and starts uppercase; otherwise a two-to-four word
// second line is taken.
func findName(lines []string) string {
	var first []string
	for _, ln := range lines {
		if ln = strings.TrimSpace(ln); ln != "" {
			first = append(first, ln)
			if len(first) == 3 {
				break
			}
		}
	}
	if len(first) == 0 {
		return ""
	}
	if wordCountOK(first[0]) {
		if r, _ := utf8.DecodeRuneInString(first[0]); unicode.IsUpper(r) {
			return first[0]
		}
	}
	if len(first) > 1 && wordCountOK(first[1]) {
		return first[1]
	}
	return ""
}

func wordCountOK(s string) bool {
	n := len(strings.Fields(s))
	return n >= 2 && n <= 4
}

// inlineSkills reads a comma list following "skills:" anywhere in text.
func inlineSkills(text string) []string {
	m := skillsInline.FindStringSubmatch(text)
	if m == nil {
		return []string{}
	}
	tail := m[1]
	if utf8.RuneCountInString(tail) > skillsFallbackMax {
		tail = string([]rune(tail)[:skillsFallbackMax])
	}
	parts := splitCommas(tail)
	if parts == nil {
		return []string{}
	}
	return parts
}
