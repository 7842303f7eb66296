// ABOUTME: Tests for splitting layout frontmatter from HTML pages
// ABOUTME: Covers missing, empty, CRLF, unterminated, and malformed closing frontmatter

package layout

import (
	"errors"
	"testing"
)

func TestSplitPage_NoFrontmatter(t *testing.T) {
	t.Parallel()

	page := "<html><body>hi</body></html>"
	s, body, err := SplitPage(page)
	if err != nil {
		t.Fatal(err)
	}
	if s != nil {
		t.Error("expected nil snapshot")
	}
	if body != page {
		t.Errorf("body = %q, want original", body)
	}
}

func TestSplitPage_WithLayout(t *testing.T) {
	t.Parallel()

	page := "---\nscroll_y: 10\nelements:\n  app:\n    left: 1\n    top: 2\n    client_width: 30\n    client_height: 40\n---\n<main id=\"app\"></main>\n"
	s, body, err := SplitPage(page)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Probe("app"); got.Y != 12 || got.Width != 30 {
		t.Errorf("Probe(app) = %+v", got)
	}
	if body != "<main id=\"app\"></main>\n" {
		t.Errorf("body = %q", body)
	}
}

func TestSplitPage_CRLF(t *testing.T) {
	t.Parallel()

	page := "---\r\nelements:\r\n  a:\r\n    client_width: 5\r\n---\r\n<p id=\"a\"></p>"
	s, body, err := SplitPage(page)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Has("a") {
		t.Error("expected element a")
	}
	if body != "<p id=\"a\"></p>" {
		t.Errorf("body = %q", body)
	}
}

func TestSplitPage_Empty(t *testing.T) {
	t.Parallel()

	s, body, err := SplitPage("---\n---\n<p></p>")
	if err != nil {
		t.Fatal(err)
	}
	if s == nil || len(s.Elements) != 0 {
		t.Errorf("expected empty snapshot, got %+v", s)
	}
	if body != "<p></p>" {
		t.Errorf("body = %q", body)
	}
}

func TestSplitPage_Unterminated(t *testing.T) {
	t.Parallel()

	_, _, err := SplitPage("---\nscroll_x: 1\n<p></p>")
	if !errors.Is(err, ErrUnterminatedFrontmatter) {
		t.Errorf("err = %v, want ErrUnterminatedFrontmatter", err)
	}
}

func TestSplitPage_ClosingMustBeWholeLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page string
	}{
		{"four dashes", "---\nscroll_x: 1\n----\n<p></p>"},
		{"markup on delimiter line", "---\nscroll_x: 1\n---<p></p>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := SplitPage(tt.page)
			if !errors.Is(err, ErrUnterminatedFrontmatter) {
				t.Errorf("err = %v, want ErrUnterminatedFrontmatter", err)
			}
		})
	}
}

func TestSplitPage_ClosingAtEnd(t *testing.T) {
	t.Parallel()

	s, body, err := SplitPage("---\nscroll_x: 2\n---")
	if err != nil {
		t.Fatal(err)
	}
	if s.ScrollX != 2 {
		t.Errorf("ScrollX = %v, want 2", s.ScrollX)
	}
	if body != "" {
		t.Errorf("body = %q, want empty", body)
	}
}
