package ytcatalog

import (
	"context"

	"ytcatalog/config"
	"ytcatalog/podcast"
	"ytcatalog/youtube"
)

// Convenience functions over the default configuration chain. Each call
// resolves the API key through remote config, the environment, and the
// compiled defaults, then runs one catalogue read. Services with custom
// throttling or injection needs should use the sub-packages directly.

func newClient(ctx context.Context) (*youtube.Client, *config.Resolver, error) {
	resolver := config.Default()
	apiKey := resolver.Resolve(ctx, config.KeyAPIKey, nil)
	if apiKey == "" {
		return nil, nil, ErrNotConfigured
	}
	client, err := youtube.New(ctx, apiKey, nil)
	if err != nil {
		return nil, nil, err
	}
	return client, resolver, nil
}

// TutorialPlaylists lists the channel's tutorial playlists using the resolved
// channel or playlist configuration.
func TutorialPlaylists(ctx context.Context) ([]youtube.Playlist, error) {
	client, resolver, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.ResolvePlaylists(ctx, youtube.ResolvedIDs{
		ChannelID:   resolver.Resolve(ctx, config.KeyChannelID, nil),
		TutorialsID: resolver.Resolve(ctx, config.KeyTutorialsPlaylistID, nil),
		PodcastID:   resolver.Resolve(ctx, config.KeyPodcastPlaylistID, nil),
	})
}

// PlaylistVideos fetches every video of playlistID, newest first.
func PlaylistVideos(ctx context.Context, playlistID string) ([]youtube.Video, error) {
	client, _, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.ListPlaylistVideos(ctx, playlistID)
}

// Episodes fetches the podcast playlist and shapes it as episodes.
func Episodes(ctx context.Context) ([]podcast.Episode, error) {
	client, resolver, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	playlistID := resolver.Resolve(ctx, config.KeyPodcastPlaylistID, nil)
	if playlistID == "" {
		return []podcast.Episode{}, nil
	}
	videos, err := client.ListPlaylistVideos(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	return podcast.FromVideos(videos), nil
}
