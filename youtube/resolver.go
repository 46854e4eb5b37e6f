package youtube

import (
	"context"
	"errors"
)

// ResolvedIDs carries the already-resolved configuration values the playlist
// resolution chain works from. Empty fields mean "not configured".
type ResolvedIDs struct {
	// ChannelID lists all of the channel's playlists (minus the podcast).
	ChannelID string
	// TutorialsID is the preferred single playlist when no channel is known.
	TutorialsID string
	// PodcastID is the podcast playlist: excluded from channel listings, and
	// the last-resort single target.
	PodcastID string
}

// ResolvePlaylists decides which playlists to expose as the tutorials
// catalogue. The content is sometimes organized as "all playlists on a
// channel minus the podcast" and sometimes as "exactly one named playlist"
// depending on how mature the deployment's configuration is; both layouts
// work here without code changes:
//
//  1. A known channel id wins: list its playlists, excluding the podcast.
//  2. Otherwise target a single playlist: tutorials id, else podcast id.
//  3. Try to discover the target's owning channel and list that channel.
//  4. If discovery fails or finds nothing, return the target playlist itself.
//  5. Nothing configured at all resolves to an empty catalogue, not an error.
func (c *Client) ResolvePlaylists(ctx context.Context, ids ResolvedIDs) ([]Playlist, error) {
	if ids.ChannelID != "" {
		return c.ListChannelPlaylists(ctx, ids.ChannelID, &PlaylistListOptions{ExcludeID: ids.PodcastID})
	}

	target := ids.TutorialsID
	if target == "" {
		target = ids.PodcastID
	}
	if target == "" {
		return []Playlist{}, nil
	}

	item, err := c.fetchPlaylist(ctx, target)
	if err != nil {
		if errors.Is(err, ErrPlaylistNotFound) {
			return []Playlist{}, nil
		}
		return nil, err
	}

	if item.Snippet != nil && item.Snippet.ChannelId != "" {
		lists, err := c.ListChannelPlaylists(ctx, item.Snippet.ChannelId, &PlaylistListOptions{ExcludeID: ids.PodcastID})
		if err == nil && len(lists) > 0 {
			return lists, nil
		}
		// Discovery came up empty (or the channel listing failed); fall back
		// to exposing the target playlist on its own.
	}

	return []Playlist{mapPlaylist(item)}, nil
}
