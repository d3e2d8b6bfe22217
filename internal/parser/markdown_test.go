package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_ResumeLayout(t *testing.T) {
	input := `# Jane Doe

jane.doe@example.com
(555) 123-4567

## Skills

Python, **Go**, Rust

## Experience

- Senior Engineer at Acme, Jan 2020 - Present
- Led the *platform* team
  - Mentored interns

## Education

BSc Physics 2015
`
	p := &MarkdownParser{}
	got, err := p.Extract(strings.NewReader(input), "jane.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"Jane Doe",
		"jane.doe@example.com",
		"(555) 123-4567",
		"Skills",
		"Python, Go, Rust",
		"Experience",
		"- Senior Engineer at Acme, Jan 2020 - Present",
		"- Led the platform team",
		"- Mentored interns",
		"Education",
		"BSc Physics 2015",
	}, "\n")
	if got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestMarkdownParser_CodeBlockLines(t *testing.T) {
	input := "Projects\n\n```\nresumeparser\nchunker\n```\n"
	p := &MarkdownParser{}
	got, err := p.Extract(strings.NewReader(input), "code.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Projects\nresumeparser\nchunker"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestMarkdownParser_AutoLink(t *testing.T) {
	p := &MarkdownParser{}
	got, err := p.Extract(strings.NewReader("Email: <jane@example.com>"), "link.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Email: jane@example.com" {
		t.Errorf("expected autolink label, got %q", got)
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	got, err := p.Extract(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty text, got %q", got)
	}
}
