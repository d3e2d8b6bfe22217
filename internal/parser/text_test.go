package parser

import (
	"strings"
	"testing"
)

func TestTextParser_PassesTextThrough(t *testing.T) {
	input := "Jane Doe\njane@example.com\n\nSkills\nGo, Rust"
	p := &TextParser{}
	got, err := p.Extract(strings.NewReader(input), "jane.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != input {
		t.Errorf("expected %q, got %q", input, got)
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	got, err := p.Extract(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty text, got %q", got)
	}
}

func TestTextParser_StripsBOM(t *testing.T) {
	p := &TextParser{}
	got, err := p.Extract(strings.NewReader("\ufeffJane Doe"), "bom.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Jane Doe" {
		t.Errorf("expected %q, got %q", "Jane Doe", got)
	}
}

func TestTextParser_DropsInvalidUTF8(t *testing.T) {
	p := &TextParser{}
	got, err := p.Extract(strings.NewReader("Jane\xff\xfe Doe"), "bad.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Jane Doe" {
		t.Errorf("expected %q, got %q", "Jane Doe", got)
	}
}
