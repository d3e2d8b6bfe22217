package resume

import (
	"reflect"
	"strings"
	"testing"
)

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567

Summary
Backend engineer.

Skills
Python, Go, Rust

Experience
Senior Engineer, Acme Corp
Jan 2020 - Present
- Led platform team

Education
BSc Computer Science 2015
`

func TestParse_FullResume(t *testing.T) {
	rec := Parse(sampleResume)

	if rec.Name != "Jane Doe" {
		t.Errorf("expected name %q, got %q", "Jane Doe", rec.Name)
	}
	if rec.Email != "jane.doe@example.com" {
		t.Errorf("expected email %q, got %q", "jane.doe@example.com", rec.Email)
	}
	if rec.Phone != "5551234567" {
		t.Errorf("expected phone %q, got %q", "5551234567", rec.Phone)
	}

	wantSkills := []string{"Python", "Go", "Rust"}
	if !reflect.DeepEqual(rec.Skills, wantSkills) {
		t.Errorf("expected skills %q, got %q", wantSkills, rec.Skills)
	}
	wantEdu := []string{"BSc Computer Science 2015"}
	if !reflect.DeepEqual(rec.Education, wantEdu) {
		t.Errorf("expected education %q, got %q", wantEdu, rec.Education)
	}
	wantRaw := []string{"Senior Engineer", "Acme Corp", "Jan 2020 - Present", "Led platform team"}
	if !reflect.DeepEqual(rec.Experience, wantRaw) {
		t.Errorf("expected raw experience %q, got %q", wantRaw, rec.Experience)
	}
	wantEntries := []string{"Senior Engineer Acme Corp", "Jan 2020 - Present Led platform team"}
	if !reflect.DeepEqual(rec.ExperienceParsed, wantEntries) {
		t.Errorf("expected entries %q, got %q", wantEntries, rec.ExperienceParsed)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	rec := Parse("")
	if rec.Name != "" || rec.Email != "" || rec.Phone != "" {
		t.Errorf("expected empty contact fields, got %+v", rec)
	}
	for name, s := range map[string][]string{
		"skills":            rec.Skills,
		"education":         rec.Education,
		"experience":        rec.Experience,
		"experience_parsed": rec.ExperienceParsed,
	} {
		if s == nil {
			t.Errorf("%s: expected non-nil empty slice", name)
		}
		if len(s) != 0 {
			t.Errorf("%s: expected empty, got %q", name, s)
		}
	}
}

func TestParse_NeverPanicsOnOddInput(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"\r\r\r",
		`\r\r`,
		"Skills",
		"Skills:",
		"skills:",
		"Experience\n\n\n",
		"•",
		"- ,,,",
		",,,,,,,,,,,,,,,,,",
		strings.Repeat("a,", 500),
		"\xff\xfe invalid utf8",
		"Education\nExperience\nSkills",
	}
	for _, in := range inputs {
		rec := Parse(in)
		if rec.Skills == nil || rec.Education == nil || rec.Experience == nil || rec.ExperienceParsed == nil {
			t.Errorf("input %q: expected non-nil slices, got %+v", in, rec)
		}
		if len(rec.Experience) > 0 && len(rec.ExperienceParsed) == 0 {
			t.Errorf("input %q: raw experience present but no entries", in)
		}
	}
}

func TestParse_Idempotent(t *testing.T) {
	a := Parse(sampleResume)
	b := Parse(sampleResume)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("expected identical records, got %+v and %+v", a, b)
	}
}

func TestParse_EmailInSentence(t *testing.T) {
	rec := Parse("Contact: jane.doe@example.com for info")
	if rec.Email != "jane.doe@example.com" {
		t.Errorf("expected %q, got %q", "jane.doe@example.com", rec.Email)
	}
}

func TestParse_PhoneFormats(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Phone: (555) 123-4567", "5551234567"},
		{"Phone: 555-123-4567", "5551234567"},
		{"Tel +1 555 123 4567", "+15551234567"},
		{"Call 5551234567 anytime", "5551234567"},
		{"No digits here", ""},
	}
	for _, tt := range tests {
		rec := Parse(tt.text)
		if rec.Phone != tt.want {
			t.Errorf("text=%q: expected phone %q, got %q", tt.text, tt.want, rec.Phone)
		}
	}
}

func TestParse_SkillsStopAtNextHeader(t *testing.T) {
	text := "Jane Doe\nSkills\nPython, Go, Rust\nEducation\nBSc Physics"
	rec := Parse(text)

	want := []string{"Python", "Go", "Rust"}
	if !reflect.DeepEqual(rec.Skills, want) {
		t.Errorf("expected skills %q, got %q", want, rec.Skills)
	}

	sections := New().Locate(Normalize(text))
	r, ok := sections.Get("skills")
	if !ok {
		t.Fatal("expected a skills section")
	}
	if r.Start != 2 || r.End != 3 {
		t.Errorf("expected skills range [2,3), got [%d,%d)", r.Start, r.End)
	}
}

func TestParse_InlineSkillsFallback(t *testing.T) {
	rec := Parse("John Smith\nSkills: Go, SQL, Docker")
	want := []string{"Go", "SQL", "Docker"}
	if !reflect.DeepEqual(rec.Skills, want) {
		t.Errorf("expected skills %q, got %q", want, rec.Skills)
	}
}

func TestParse_InlineSkillsFallbackCapped(t *testing.T) {
	long := strings.Repeat("x", 500)
	rec := Parse("Skills: Go, " + long)
	if len(rec.Skills) != 2 {
		t.Fatalf("expected 2 skills, got %d: %q", len(rec.Skills), rec.Skills)
	}
	// 400 runes after "skills: " minus "Go, " leaves 396 x's.
	if got := len(rec.Skills[1]); got != 396 {
		t.Errorf("expected truncated fragment of 396 runes, got %d", got)
	}
}

func TestParse_NoSkillsAnywhere(t *testing.T) {
	rec := Parse("Jane Doe\nEducation\nBSc Physics")
	if len(rec.Skills) != 0 {
		t.Errorf("expected no skills, got %q", rec.Skills)
	}
}

func TestParse_ExperienceFallsBackToProjects(t *testing.T) {
	rec := Parse("Jane Doe\nProjects\nBuilt a compiler")
	want := []string{"Built a compiler"}
	if !reflect.DeepEqual(rec.Experience, want) {
		t.Errorf("expected experience %q, got %q", want, rec.Experience)
	}
	if !reflect.DeepEqual(rec.ExperienceParsed, want) {
		t.Errorf("expected entries %q, got %q", want, rec.ExperienceParsed)
	}
}

func TestParse_ExperiencePreferredOverProjects(t *testing.T) {
	text := "Jane Doe\nProjects\nBuilt a compiler\nExperience\nEngineer at Acme"
	rec := Parse(text)
	want := []string{"Engineer at Acme"}
	if !reflect.DeepEqual(rec.Experience, want) {
		t.Errorf("expected experience %q, got %q", want, rec.Experience)
	}
}

func TestParse_Name(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"title case first line", "Jane Doe\nEngineer", "Jane Doe"},
		{"four words", "Mary Ann Van Dyke\nx", "Mary Ann Van Dyke"},
		{"single word title falls back", "RESUME\nJohn Smith\nx", "John Smith"},
		{"lowercase first line falls back", "curriculum vitae of\nJohn Smith", "John Smith"},
		{"decoration line falls back", "=====\nJohn Smith", "John Smith"},
		{"leading blank lines skipped", "\n\n  Jane Doe  \n", "Jane Doe"},
		{"five words then one word", "This Is Far Too Long\nNope", ""},
		{"second line unchecked for case", "====\njohn smith", "john smith"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.text).Name; got != tt.want {
				t.Errorf("expected name %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParse_WithCustomHeaders(t *testing.T) {
	p := New(WithHeaders("Skills", " Hobbies "))
	if !reflect.DeepEqual(p.Headers(), []string{"skills", "hobbies"}) {
		t.Fatalf("unexpected headers %q", p.Headers())
	}
	sections := p.Locate([]string{"Hobbies", "Chess", "Education", "BSc"})
	if _, ok := sections.Get("hobbies"); !ok {
		t.Error("expected hobbies section")
	}
	if _, ok := sections.Get("education"); ok {
		t.Error("education is not in the custom vocabulary")
	}
}

func TestDefaultHeaders_ReturnsCopy(t *testing.T) {
	h := DefaultHeaders()
	h[0] = "mutated"
	if DefaultHeaders()[0] != "summary" {
		t.Error("expected DefaultHeaders to be immune to caller mutation")
	}
	if len(h) != 14 {
		t.Errorf("expected 14 labels, got %d", len(h))
	}
}

func TestParse_HeaderAfterPageBreak(t *testing.T) {
	for _, sep := range []string{"\f", "\v", "\u2028", "\u0085"} {
		rec := Parse("Jane Doe" + sep + "Skills" + sep + "Python, Go")
		if rec.Name != "Jane Doe" {
			t.Errorf("sep=%q: expected name Jane Doe, got %q", sep, rec.Name)
		}
		if !reflect.DeepEqual(rec.Skills, []string{"Python", "Go"}) {
			t.Errorf("sep=%q: expected skills [Python Go], got %q", sep, rec.Skills)
		}
	}
}
