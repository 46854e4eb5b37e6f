package youtube

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
)

func TestListChannelPlaylists_PagesAndExcludes(t *testing.T) {
	// 3 pages of 50/50/7. One reserved-title playlist on page 1 and the
	// explicitly excluded id on page 2 must be dropped: 107 - 2 = 105.
	var (
		mu         sync.Mutex
		seenTokens []string
	)

	makePage := func(start, n int, token string) map[string]any {
		items := make([]map[string]any, 0, n)
		for i := start; i < start+n; i++ {
			it := stubItem{id: fmt.Sprintf("PL%03d", i), title: fmt.Sprintf("Playlist %03d", i), count: int64(i)}
			if i == 3 {
				it.title = PodcastSourceTitle
			}
			items = append(items, playlistJSON(it))
		}
		return page(items, token)
	}

	client := newTestClient(t, route(t, map[string]http.HandlerFunc{
		"playlists": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("channelId"); got != "UCtest" {
				t.Errorf("channelId = %q, want UCtest", got)
			}
			if got := r.URL.Query().Get("maxResults"); got != "50" {
				t.Errorf("maxResults = %q, want 50", got)
			}

			token := r.URL.Query().Get("pageToken")
			mu.Lock()
			seenTokens = append(seenTokens, token)
			mu.Unlock()

			switch token {
			case "":
				writeJSON(t, w, makePage(0, 50, "page2"))
			case "page2":
				writeJSON(t, w, makePage(50, 50, "page3"))
			case "page3":
				writeJSON(t, w, makePage(100, 7, ""))
			default:
				t.Errorf("unexpected pageToken %q", token)
			}
		},
	}))

	got, err := client.ListChannelPlaylists(t.Context(), "UCtest", &PlaylistListOptions{ExcludeID: "PL070"})
	if err != nil {
		t.Fatalf("ListChannelPlaylists() failed: %v", err)
	}

	if len(got) != 105 {
		t.Fatalf("got %d playlists, want 105", len(got))
	}
	if want := []string{"", "page2", "page3"}; fmt.Sprint(seenTokens) != fmt.Sprint(want) {
		t.Errorf("page tokens = %v, want %v", seenTokens, want)
	}

	// Provider order must survive paging and filtering.
	if got[0].ID != "PL000" || got[2].ID != "PL002" {
		t.Errorf("front of list = %s, %s; provider order not preserved", got[0].ID, got[2].ID)
	}
	// PL003 carried the reserved title.
	if got[3].ID != "PL004" {
		t.Errorf("got[3].ID = %s, want PL004 (reserved title dropped)", got[3].ID)
	}
	for _, p := range got {
		if p.ID == "PL070" {
			t.Error("excluded id PL070 present in result")
		}
		if p.Title == PodcastSourceTitle {
			t.Error("reserved podcast title present in result")
		}
	}
	if got[len(got)-1].ID != "PL106" {
		t.Errorf("last id = %s, want PL106", got[len(got)-1].ID)
	}

	// Thumbnails prefer the medium rendition.
	if got[0].ThumbnailURL != "https://img.test/PL000/medium.jpg" {
		t.Errorf("ThumbnailURL = %q, want medium rendition", got[0].ThumbnailURL)
	}
	if got[0].ItemCount != 0 {
		t.Errorf("ItemCount = %d, want 0", got[0].ItemCount)
	}
}

func TestListChannelPlaylists_MidPaginationFailureAborts(t *testing.T) {
	client := newTestClient(t, route(t, map[string]http.HandlerFunc{
		"playlists": func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("pageToken") == "" {
				writeJSON(t, w, page([]map[string]any{playlistJSON(stubItem{id: "PL1", title: "One"})}, "page2"))
				return
			}
			writeAPIError(w, http.StatusInternalServerError, "backend error")
		},
	}))

	got, err := client.ListChannelPlaylists(t.Context(), "UCtest", nil)
	if got != nil {
		t.Error("partial result returned alongside an error")
	}

	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ProviderError", err)
	}
	if perr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", perr.StatusCode)
	}
	if perr.Op != "playlists.list" {
		t.Errorf("Op = %q, want playlists.list", perr.Op)
	}
}

func TestPlaylistByID(t *testing.T) {
	client := newTestClient(t, route(t, map[string]http.HandlerFunc{
		"playlists": func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Query().Get("id") {
			case "PLknown":
				writeJSON(t, w, page([]map[string]any{playlistJSON(stubItem{id: "PLknown", title: "Tutoriales", count: 12})}, ""))
			default:
				writeJSON(t, w, page(nil, ""))
			}
		},
	}))

	got, err := client.PlaylistByID(t.Context(), "PLknown")
	if err != nil {
		t.Fatalf("PlaylistByID() failed: %v", err)
	}
	if got.Title != "Tutoriales" || got.ItemCount != 12 {
		t.Errorf("PlaylistByID() = %+v", got)
	}

	if _, err := client.PlaylistByID(t.Context(), "PLmissing"); !errors.Is(err, ErrPlaylistNotFound) {
		t.Errorf("PlaylistByID(missing) error = %v, want ErrPlaylistNotFound", err)
	}
}
