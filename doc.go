// Package ytcatalog turns a YouTube channel into the content catalogue behind
// the DevLokos site: tutorial playlists, tutorial videos, and podcast episodes.
//
// Overview
//
// ytcatalog provides high-level convenience functions for the common reads:
//
//   - TutorialPlaylists: List the channel's tutorial playlists
//   - PlaylistVideos: Fetch every video of one playlist, newest first
//   - Episodes: Fetch the podcast playlist shaped as episodes
//
// Quick Start
//
// List the tutorial playlists:
//
//	ctx := context.Background()
//	playlists, err := ytcatalog.TutorialPlaylists(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, p := range playlists {
//		fmt.Println(p.Title)
//	}
//
// Fetch a playlist's videos:
//
//	videos, err := ytcatalog.PlaylistVideos(ctx, "PLPXi7Vgl6Ak8GdfjiCcps1fSTZdEE2qYn")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(videos[0].Title, videos[0].Duration)
//
// Configuration
//
// Catalogue values (API key, channel id, playlist ids) resolve through three
// tiers, first non-empty hit wins:
//
//   1. Firebase Remote Config (highest priority)
//   2. Environment variables (YOUTUBE_API_KEY, YOUTUBE_CHANNEL_ID, ...)
//   3. Compiled-in defaults (playlist ids only)
//
// Service settings load separately from the environment and ytcatalog.json:
//
//   - YTCATALOG_ADDR: HTTP listen address
//   - YTCATALOG_REQUEST_TIMEOUT: Per-request deadline
//   - YTCATALOG_PROVIDER_RPS: Outbound YouTube API rate limit
//   - YTCATALOG_DETAIL_WORKERS: Concurrent video-detail batches
//   - YTCATALOG_PROJECT_ID: Firebase project id
//   - YTCATALOG_MAX_RETRIES: Remote-config fetch retry attempts
//   - YTCATALOG_INITIAL_BACKOFF: Initial retry backoff duration
//   - YTCATALOG_MAX_BACKOFF: Maximum retry backoff duration
//
// Error Handling
//
// All operations return errors that implement standard Go error handling:
//
//	if errors.Is(err, ytcatalog.ErrNotConfigured) {
//		fmt.Println("no API key yet")
//	}
//
//	var provErr *ytcatalog.ProviderError
//	if errors.As(err, &provErr) {
//		fmt.Printf("%s failed with status %d\n", provErr.Op, provErr.StatusCode)
//	}
//
// Advanced Usage
//
// For more control, use the sub-packages directly:
//
//   - youtube: Playlist resolution, video aggregation, duration formatting
//   - podcast: Episode shaping from podcast videos
//   - config: Tiered value resolution and service settings
//   - remoteconfig: Firebase Remote Config client
//   - server: The HTTP surface consumed by the front end
package ytcatalog
