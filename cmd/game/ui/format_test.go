package ui

import (
	"strings"
	"testing"
)

func TestFormatList(t *testing.T) {
	cases := []struct {
		items []string
		want  string
	}{
		{nil, "nothing"},
		{[]string{}, "nothing"},
		{[]string{"torch"}, "torch"},
		{[]string{"torch", "rope"}, "torch and rope"},
		{[]string{"torch", "rope", "dagger"}, "torch, rope, and dagger"},
		{[]string{"a", "b", "c", "d"}, "a, b, c, and d"},
	}
	for _, c := range cases {
		got := FormatList(c.items)
		if got != c.want {
			t.Errorf("FormatList(%v) = %q, want %q", c.items, got, c.want)
		}
	}
}

func TestBannerDefaults(t *testing.T) {
	banner := Banner("", "")
	if !strings.Contains(banner, "D U N G E O N") {
		t.Errorf("expected default first line, got:\n%s", banner)
	}
	if !strings.Contains(banner, "E X P L O R E R") {
		t.Errorf("expected default second line, got:\n%s", banner)
	}
}

func TestBannerCustomTitle(t *testing.T) {
	banner := Banner("Cursed", "Temple")
	if !strings.Contains(banner, "C U R S E D") {
		t.Errorf("expected custom first line, got:\n%s", banner)
	}
	if !strings.Contains(banner, "T E M P L E") {
		t.Errorf("expected custom second line, got:\n%s", banner)
	}
}

func TestBannerLinesAreUniformWidth(t *testing.T) {
	banner := Banner("Cursed", "Temple")
	lines := strings.Split(banner, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 banner lines, got %d", len(lines))
	}
	want := len([]rune(lines[0]))
	for i, line := range lines {
		if got := len([]rune(line)); got != want {
			t.Errorf("line %d width = %d, want %d", i, got, want)
		}
	}
}

func TestBannerMultiByteTitleStaysAligned(t *testing.T) {
	banner := Banner("Höhle", "Gewölbe")
	lines := strings.Split(banner, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 banner lines, got %d", len(lines))
	}
	want := len([]rune(lines[0]))
	for i, line := range lines {
		if got := len([]rune(line)); got != want {
			t.Errorf("line %d width = %d, want %d", i, got, want)
		}
	}
}
