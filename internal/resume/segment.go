package resume

import (
	"regexp"
	"strings"
)

// datePattern matches "Jan 2020", "September. 2018", a bare year or "03/2019".
var datePattern = regexp.MustCompile(
	`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?\s+\d{4}\b` +
		`|\b\d{4}\b` +
		`|\b\d{2}/\d{4}\b`,
)

// HasDate reports whether s carries a date token.
func HasDate(s string) bool {
	return datePattern.MatchString(s)
}

// Segment groups experience items into job entries. An item with a date
// token closes the entry being built (if any) and opens a new one; other
// items extend the current entry. Entries are space-joined.
func Segment(items []string) []string {
	entries := []string{}
	var current []string
	for _, item := range items {
		if HasDate(item) && len(current) > 0 {
			entries = append(entries, strings.Join(current, " "))
			current = []string{item}
			continue
		}
		current = append(current, item)
	}
	if len(current) > 0 {
		entries = append(entries, strings.Join(current, " "))
	}
	return entries
}
