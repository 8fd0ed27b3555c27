package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantSame bool
	}{
		{
			name:     "same content produces same ID",
			content:  "Mars Rover Mission\nhttps://example.org/1",
			wantSame: true,
		},
		{
			name:     "empty string",
			content:  "",
			wantSame: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if tt.wantSame && id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}

	if IDFromContent("a") == IDFromContent("b") {
		t.Error("IDFromContent() produced the same ID for different content")
	}
}

func TestNewPublication(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		link      string
		wantTitle string
		wantLink  string
	}{
		{"both present", "Mars Soil Analysis", "https://example.org/mars", "Mars Soil Analysis", "https://example.org/mars"},
		{"missing title", "", "https://example.org/x", PlaceholderTitle, "https://example.org/x"},
		{"missing link", "Deep Space Radiation", "", "Deep Space Radiation", PlaceholderLink},
		{"both missing", "", "", PlaceholderTitle, PlaceholderLink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub := NewPublication(tt.title, tt.link)
			if pub.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", pub.Title, tt.wantTitle)
			}
			if pub.Link != tt.wantLink {
				t.Errorf("Link = %q, want %q", pub.Link, tt.wantLink)
			}
			if pub.Id != IDFromContent(tt.wantTitle+"\n"+tt.wantLink) {
				t.Errorf("Id not derived from normalized title and link")
			}
		})
	}
}

func TestCatalog(t *testing.T) {
	t.Run("nil catalog is empty", func(t *testing.T) {
		var c *Catalog
		if c.Len() != 0 {
			t.Errorf("Len() = %d, want 0", c.Len())
		}
		if len(c.Publications()) != 0 {
			t.Error("Publications() should be empty")
		}
		for range c.All() {
			t.Error("All() yielded from nil catalog")
		}
	})

	t.Run("preserves order and is isolated from input", func(t *testing.T) {
		in := []Publication{
			NewPublication("A", "#a"),
			NewPublication("B", "#b"),
			NewPublication("C", "#c"),
		}
		c := NewCatalog(in)
		in[0].Title = "mutated"

		if c.Len() != 3 {
			t.Fatalf("Len() = %d, want 3", c.Len())
		}
		var titles []string
		for _, p := range c.All() {
			titles = append(titles, p.Title)
		}
		if len(titles) != 3 || titles[0] != "A" || titles[1] != "B" || titles[2] != "C" {
			t.Errorf("All() = %v, want [A B C]", titles)
		}

		out := c.Publications()
		out[1].Title = "mutated"
		if c.At(1).Title != "B" {
			t.Error("Publications() must return a copy")
		}
	})

	t.Run("All stops when yield returns false", func(t *testing.T) {
		c := NewCatalog([]Publication{NewPublication("A", ""), NewPublication("B", "")})
		n := 0
		for range c.All() {
			n++
			break
		}
		if n != 1 {
			t.Errorf("iterated %d times, want 1", n)
		}
	})
}
