package youtube

import "time"

// Playlist is one entry of the tutorials catalogue. Identity is the id; a
// Playlist is never mutated after construction.
type Playlist struct {
	// ID is the YouTube playlist id.
	ID string `json:"id"`

	// Title is the playlist title.
	Title string `json:"title"`

	// ThumbnailURL is the playlist cover image, when the provider has one.
	ThumbnailURL string `json:"thumbnail,omitempty"`

	// ItemCount is the number of videos in the playlist, when known.
	ItemCount int64 `json:"itemCount,omitempty"`
}

// Video is one fully-assembled catalogue entry: a playlist membership record
// joined with the video's own snippet and content details.
type Video struct {
	// ID is the YouTube video id.
	ID string `json:"id"`

	// Title is the video title.
	Title string `json:"title"`

	// Description is the full video description.
	Description string `json:"description"`

	// ThumbnailURL is the best available thumbnail
	// (maxres, then high, medium, default).
	ThumbnailURL string `json:"thumbnail"`

	// PublishedAt is when the video was published.
	PublishedAt time.Time `json:"publishedAt"`

	// DurationISO is the provider's raw ISO-8601 duration (e.g. "PT1H9M30S").
	DurationISO string `json:"durationIso"`

	// Duration is the rendered human-readable duration (e.g. "1 h 9 min").
	Duration string `json:"duration"`
}

// URL returns the full YouTube watch URL for this video.
func (v Video) URL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}
