package podcast

import (
	"strings"
	"testing"
	"time"

	"ytcatalog/youtube"
)

func TestFromVideos(t *testing.T) {
	videos := []youtube.Video{
		{
			ID:           "abc123",
			Title:        "DevLokos S2 Ep078 || Carreras en la nube || Ana Gómez",
			Description:  "Una charla sobre infraestructura.",
			ThumbnailURL: "https://img.test/abc123/maxres.jpg",
			PublishedAt:  time.Date(2024, 5, 17, 20, 0, 0, 0, time.UTC),
			Duration:     "1 h 9 min",
		},
		{
			ID:    "def456",
			Title: "Un título sin formato de episodio",
		},
	}

	episodes := FromVideos(videos)
	if len(episodes) != 2 {
		t.Fatalf("got %d episodes, want 2", len(episodes))
	}

	first := episodes[0]
	if first.Number != 1 {
		t.Errorf("Number = %d, want 1", first.Number)
	}
	if first.Title != "Carreras en la nube" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Guest != "Ana Gómez" {
		t.Errorf("Guest = %q", first.Guest)
	}
	if first.YouTubeURL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("YouTubeURL = %q", first.YouTubeURL)
	}
	if first.SpotifyURL != SpotifyShowURL {
		t.Errorf("SpotifyURL = %q", first.SpotifyURL)
	}
	if first.Date != "2024-05-17" {
		t.Errorf("Date = %q, want 2024-05-17", first.Date)
	}
	if first.Duration != "1 h 9 min" {
		t.Errorf("Duration = %q", first.Duration)
	}

	second := episodes[1]
	if second.Title != "Un título sin formato de episodio" {
		t.Errorf("unformatted title mangled: %q", second.Title)
	}
	if second.Guest != "" {
		t.Errorf("Guest = %q, want empty", second.Guest)
	}
	if second.Date != "" {
		t.Errorf("Date = %q, want empty for zero publish time", second.Date)
	}
}

func TestSplitTitle(t *testing.T) {
	tests := []struct {
		name      string
		full      string
		wantTitle string
		wantGuest string
	}{
		{"full convention", "DevLokos S1 Ep001 || Primer episodio || Juan", "Primer episodio", "Juan"},
		{"no guest", "DevLokos S1 Ep002 || Sin invitado", "Sin invitado", ""},
		{"no separators", "Video suelto", "Video suelto", ""},
		{"extra separators keep third segment as guest", "a || b || c || d", "b", "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, guest := splitTitle(tt.full)
			if title != tt.wantTitle || guest != tt.wantGuest {
				t.Errorf("splitTitle(%q) = (%q, %q), want (%q, %q)",
					tt.full, title, guest, tt.wantTitle, tt.wantGuest)
			}
		})
	}
}

func TestTruncateDescription(t *testing.T) {
	long := strings.Repeat("á", 250)
	videos := []youtube.Video{{ID: "v", Title: "t", Description: long}}

	got := FromVideos(videos)[0].Description
	if want := strings.Repeat("á", 200) + "..."; got != want {
		t.Errorf("truncated description = %d runes, want 200 + ellipsis", len([]rune(got)))
	}

	short := "corta"
	if got := FromVideos([]youtube.Video{{ID: "v", Title: "t", Description: short}})[0].Description; got != short {
		t.Errorf("short description altered: %q", got)
	}
}
