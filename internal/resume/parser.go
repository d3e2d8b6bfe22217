// Package resume extracts contact details, skills, education and experience
// entries from plain-text resumes using line-layout heuristics.
package resume

import "strings"

// Header variants consulted for each list field, in priority order.
var (
	skillsVariants     = []string{"skills", "technical skills"}
	educationVariants  = []string{"education"}
	experienceVariants = []string{"experience", "work experience", "projects"}
)

// Parser turns resume text into a Record. A Parser is immutable and safe for
// concurrent use.
type Parser struct {
	headers []string
}

// Option configures a Parser.
type Option func(*Parser)

// WithHeaders replaces the section header vocabulary. Labels are matched
// case-insensitively and should be given in lower case.
func WithHeaders(headers ...string) Option {
	return func(p *Parser) {
		p.headers = make([]string, 0, len(headers))
		for _, h := range headers {
			if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
				p.headers = append(p.headers, h)
			}
		}
	}
}

// New returns a Parser using the default header vocabulary unless overridden.
func New(opts ...Option) *Parser {
	p := &Parser{headers: DefaultHeaders()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New()

// Parse parses text with the default header vocabulary.
func Parse(text string) Record {
	return defaultParser.Parse(text)
}

// Headers returns a copy of the parser's header vocabulary.
func (p *Parser) Headers() []string {
	out := make([]string, len(p.headers))
	copy(out, p.headers)
	return out
}

// Locate finds the section headers in lines and their body ranges.
func (p *Parser) Locate(lines []string) Sections {
	return locate(lines, p.headers)
}

// Parse extracts a Record from text. It never fails; fields that cannot be
// found are left empty.
func (p *Parser) Parse(text string) Record {
	lines := Normalize(text)
	joined := strings.Join(lines, " ")

	rec := Record{
		Email: findEmail(joined),
		Phone: findPhone(joined),
		Name:  findName(lines),
	}

	sections := p.Locate(lines)
	rec.Skills = sections.Items(lines, skillsVariants...)
	rec.Education = sections.Items(lines, educationVariants...)
	rec.Experience = sections.Items(lines, experienceVariants...)

	if len(rec.Skills) == 0 {
		rec.Skills = inlineSkills(joined)
	}

	rec.ExperienceParsed = Segment(rec.Experience)
	if len(rec.ExperienceParsed) == 0 {
		rec.ExperienceParsed = rec.Experience
	}
	return rec.Normalized()
}
