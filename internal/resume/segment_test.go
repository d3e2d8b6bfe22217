package resume

import (
	"reflect"
	"testing"
)

func TestSegment_BoundaryPlacement(t *testing.T) {
	items := []string{
		"Senior Engineer, Acme Corp",
		"Jan 2020 - Present",
		"Led platform team",
		"Engineer, Beta Inc",
		"2017 - 2019",
		"Built services",
	}
	got := Segment(items)

	// Items 2 and 5 carry dates and each arrives with a non-empty
	// accumulator, so each one closes the entry before it.
	want := []string{
		"Senior Engineer, Acme Corp",
		"Jan 2020 - Present Led platform team Engineer, Beta Inc",
		"2017 - 2019 Built services",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSegment_LeadingDateDoesNotFlush(t *testing.T) {
	items := []string{"Jan 2020 Acme", "Built things", "Mar 2018 Beta", "Ran things"}
	got := Segment(items)
	want := []string{"Jan 2020 Acme Built things", "Mar 2018 Beta Ran things"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSegment_NoDatesSingleEntry(t *testing.T) {
	got := Segment([]string{"Engineer at Acme", "Built things"})
	want := []string{"Engineer at Acme Built things"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSegment_Empty(t *testing.T) {
	got := Segment(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil result, got %#v", got)
	}
}

func TestHasDate(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"Jan 2020 - Present", true},
		{"September 2018", true},
		{"sept. 2019", true},
		{"03/2021 - 05/2022", true},
		{"2017", true},
		{"Present", false},
		{"Led a team of 40", false},
		{"Ticket 12345", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := HasDate(tt.s); got != tt.want {
			t.Errorf("HasDate(%q): expected %v, got %v", tt.s, tt.want, got)
		}
	}
}
