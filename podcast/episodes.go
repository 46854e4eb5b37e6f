// Package podcast maps aggregated playlist videos to podcast episodes.
//
// Episode titles follow the show's publishing convention
// "DevLokos S2 Ep078 || Título || Invitado"; the middle segment is the
// episode title and the trailing one the guest.
package podcast

import (
	"strings"

	"ytcatalog/youtube"
)

// SpotifyShowURL is the show's fixed Spotify landing page; the provider has
// no per-episode Spotify link to offer.
const SpotifyShowURL = "https://open.spotify.com/show/3u6neVhqqDc693wTS16v1r?si=7FteYjGURHSzSxLtIHM6qg"

const (
	titleSeparator = "||"
	maxDescription = 200
)

// Episode is one podcast episode derived from a playlist video.
type Episode struct {
	// Number is the 1-based position in the (newest first) episode list.
	Number int `json:"id"`

	// Title is the episode title extracted from the video title.
	Title string `json:"title"`

	// Guest is the episode guest, when the title names one.
	Guest string `json:"guest,omitempty"`

	// Description is the video description, truncated for card display.
	Description string `json:"description"`

	// ThumbnailURL is the video thumbnail.
	ThumbnailURL string `json:"thumbnail"`

	// SpotifyURL links to the show on Spotify.
	SpotifyURL string `json:"spotifyUrl"`

	// YouTubeURL links to the episode video.
	YouTubeURL string `json:"youtubeUrl"`

	// Duration is the rendered duration badge.
	Duration string `json:"duration"`

	// Date is the publish date, YYYY-MM-DD.
	Date string `json:"date,omitempty"`
}

// FromVideos converts an aggregated, already-sorted video list into episodes.
func FromVideos(videos []youtube.Video) []Episode {
	episodes := make([]Episode, 0, len(videos))
	for i, v := range videos {
		title, guest := splitTitle(v.Title)

		ep := Episode{
			Number:       i + 1,
			Title:        title,
			Guest:        guest,
			Description:  truncate(v.Description, maxDescription),
			ThumbnailURL: v.ThumbnailURL,
			SpotifyURL:   SpotifyShowURL,
			YouTubeURL:   v.URL(),
			Duration:     v.Duration,
		}
		if !v.PublishedAt.IsZero() {
			ep.Date = v.PublishedAt.Format("2006-01-02")
		}
		episodes = append(episodes, ep)
	}
	return episodes
}

// splitTitle extracts the episode title and guest from the publishing
// convention. Titles without separators pass through unchanged.
func splitTitle(full string) (title, guest string) {
	parts := strings.Split(full, titleSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	switch {
	case len(parts) >= 3:
		return parts[1], parts[2]
	case len(parts) == 2:
		return parts[1], ""
	default:
		return full, ""
	}
}

// truncate shortens s to at most n runes, appending an ellipsis when cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
