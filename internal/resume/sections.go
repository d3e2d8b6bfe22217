package resume

import "strings"

var defaultHeaders = []string{
	"summary",
	"objective",
	"skills",
	"technical skills",
	"education",
	"experience",
	"work experience",
	"projects",
	"certifications",
	"certificates",
	"publications",
	"courses",
	"interests",
	"languages",
}

// DefaultHeaders returns a copy of the recognized section header vocabulary.
func DefaultHeaders() []string {
	out := make([]string, len(defaultHeaders))
	copy(out, defaultHeaders)
	return out
}

// SectionRange is the half-open body line range [Start, End) of one section.
type SectionRange struct {
	Label string
	Start int
	End   int
}

// Sections holds at most one range per label, in order of the label's first
// appearance. A label that recurs keeps its position but takes the range of
// its last occurrence.
type Sections []SectionRange

// Get returns the range stored for label.
func (s Sections) Get(label string) (SectionRange, bool) {
	for _, r := range s {
		if r.Label == label {
			return r, true
		}
	}
	return SectionRange{}, false
}

// Items decomposes the first section whose label contains one of variants.
// Variants are tried in order; each is checked against every section before
// the next variant is considered.
func (s Sections) Items(lines []string, variants ...string) []string {
	for _, v := range variants {
		for _, r := range s {
			if strings.Contains(r.Label, v) {
				return Items(lines, r.Start, r.End)
			}
		}
	}
	return []string{}
}

// headerLabel reports which vocabulary label, if any, line introduces.
func headerLabel(line string, headers []string) (string, bool) {
	l := strings.TrimRight(strings.ToLower(strings.TrimSpace(line)), ":")
	for _, h := range headers {
		if l == h {
			return h, true
		}
	}
	for _, h := range headers {
		if strings.HasPrefix(l, h+":") {
			return h, true
		}
	}
	return "", false
}

func locate(lines []string, headers []string) Sections {
	type hit struct {
		idx   int
		label string
	}
	var hits []hit
	for i, line := range lines {
		if label, ok := headerLabel(line, headers); ok {
			hits = append(hits, hit{idx: i, label: label})
		}
	}

	sections := Sections{}
	pos := make(map[string]int, len(hits))
	for j, h := range hits {
		end := len(lines)
		if j+1 < len(hits) {
			end = hits[j+1].idx
		}
		r := SectionRange{Label: h.label, Start: h.idx + 1, End: end}
		if k, ok := pos[h.label]; ok {
			sections[k] = r
			continue
		}
		pos[h.label] = len(sections)
		sections = append(sections, r)
	}
	return sections
}
