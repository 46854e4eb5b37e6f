package youtube

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// stubItem is one playlist entry served by the provider stub.
type stubItem struct {
	id        string
	title     string
	channelID string
	count     int64
}

func playlistJSON(it stubItem) map[string]any {
	return map[string]any{
		"id": it.id,
		"snippet": map[string]any{
			"title":     it.title,
			"channelId": it.channelID,
			"thumbnails": map[string]any{
				"medium":  map[string]any{"url": "https://img.test/" + it.id + "/medium.jpg"},
				"default": map[string]any{"url": "https://img.test/" + it.id + "/default.jpg"},
			},
		},
		"contentDetails": map[string]any{"itemCount": it.count},
	}
}

// stubVideo is one video served by the provider stub.
type stubVideo struct {
	id          string
	title       string
	description string
	publishedAt string
	duration    string
	maxres      string
	high        string
}

func videoJSON(v stubVideo) map[string]any {
	thumbs := map[string]any{
		"default": map[string]any{"url": "https://img.test/" + v.id + "/default.jpg"},
	}
	if v.maxres != "" {
		thumbs["maxres"] = map[string]any{"url": v.maxres}
	}
	if v.high != "" {
		thumbs["high"] = map[string]any{"url": v.high}
	}
	return map[string]any{
		"id": v.id,
		"snippet": map[string]any{
			"title":       v.title,
			"description": v.description,
			"publishedAt": v.publishedAt,
			"thumbnails":  thumbs,
		},
		"contentDetails": map[string]any{"duration": v.duration},
	}
}

func membershipJSON(videoID string) map[string]any {
	return map[string]any{
		"snippet": map[string]any{
			"resourceId": map[string]any{"videoId": videoID},
		},
	}
}

// page assembles a list response with an optional continuation token.
func page(items []map[string]any, nextToken string) map[string]any {
	resp := map[string]any{"items": items}
	if nextToken != "" {
		resp["nextPageToken"] = nextToken
	}
	return resp
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode stub response: %v", err)
	}
}

func writeAPIError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error": {"code": %d, "message": %q}}`, status, message)
}

// newTestClient spins up a stub provider and a Client pointed at it.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(t.Context(), "test-key", &Options{Endpoint: srv.URL + "/"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return c
}

// route dispatches on the trailing resource name of the request path.
func route(t *testing.T, handlers map[string]http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for suffix, h := range handlers {
			if strings.HasSuffix(r.URL.Path, "/"+suffix) {
				h(w, r)
				return
			}
		}
		t.Errorf("stub received unexpected path %q", r.URL.Path)
		http.NotFound(w, r)
	})
}
