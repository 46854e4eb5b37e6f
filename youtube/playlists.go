package youtube

import (
	"context"

	yt "google.golang.org/api/youtube/v3"
)

// PodcastSourceTitle is the reserved title of the internal podcast-source
// playlist. Playlists carrying it never appear in the tutorials catalogue.
// The exact-title match is inherited behavior; ExcludeID is the sturdier key.
const PodcastSourceTitle = "Bloques Podcast"

// PlaylistListOptions configures playlist listing.
type PlaylistListOptions struct {
	// ExcludeID drops the playlist with this id from the result.
	ExcludeID string
}

// ListChannelPlaylists lists every playlist owned by a channel, paging with
// the provider's continuation tokens. Provider ordering is preserved within
// and across pages. Any mid-pagination failure aborts the whole call; no
// partial list is ever returned.
func (c *Client) ListChannelPlaylists(ctx context.Context, channelID string, opts *PlaylistListOptions) ([]Playlist, error) {
	var excludeID string
	if opts != nil {
		excludeID = opts.ExcludeID
	}

	var all []Playlist
	pageToken := ""
	for {
		call := c.svc.Playlists.List([]string{"snippet", "contentDetails"}).
			ChannelId(channelID).
			MaxResults(pageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, wrapProvider("playlists.list", err)
		}

		for _, item := range resp.Items {
			p := mapPlaylist(item)
			if p.Title == "" || p.Title == PodcastSourceTitle {
				continue
			}
			if excludeID != "" && p.ID == excludeID {
				continue
			}
			all = append(all, p)
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return all, nil
}

// PlaylistByID fetches a single playlist's own metadata.
func (c *Client) PlaylistByID(ctx context.Context, playlistID string) (Playlist, error) {
	item, err := c.fetchPlaylist(ctx, playlistID)
	if err != nil {
		return Playlist{}, err
	}
	return mapPlaylist(item), nil
}

// fetchPlaylist returns the raw provider record, which also carries the
// owning channel id used for discovery.
func (c *Client) fetchPlaylist(ctx context.Context, playlistID string) (*yt.Playlist, error) {
	resp, err := c.svc.Playlists.List([]string{"snippet", "contentDetails"}).
		Id(playlistID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapProvider("playlists.list", err)
	}
	if len(resp.Items) == 0 {
		return nil, ErrPlaylistNotFound
	}
	return resp.Items[0], nil
}

func mapPlaylist(item *yt.Playlist) Playlist {
	p := Playlist{ID: item.Id}
	if item.Snippet != nil {
		p.Title = item.Snippet.Title
		p.ThumbnailURL = playlistThumbnail(item.Snippet.Thumbnails)
	}
	if item.ContentDetails != nil {
		p.ItemCount = item.ContentDetails.ItemCount
	}
	return p
}

// playlistThumbnail prefers the medium rendition, falling back to default.
func playlistThumbnail(t *yt.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	if t.Medium != nil {
		return t.Medium.Url
	}
	if t.Default != nil {
		return t.Default.Url
	}
	return ""
}
