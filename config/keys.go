// Package config resolves the service's configuration: per-key lookup across
// remote configuration, environment variables, and compiled-in defaults, plus
// the service-level settings file.
package config

import "strings"

// Key is a logical configuration name, known at compile time.
type Key string

// Keys resolved by this service.
const (
	// KeyAPIKey is the YouTube Data API key. No compiled-in default.
	KeyAPIKey Key = "youtube_api_key"
	// KeyChannelID is the channel whose playlists form the tutorials catalogue.
	// No compiled-in default.
	KeyChannelID Key = "youtube_channel_id"
	// KeyTutorialsPlaylistID is the single tutorials playlist used when no
	// channel is configured.
	KeyTutorialsPlaylistID Key = "youtube_tutorials_playlist_id"
	// KeyPodcastPlaylistID is the podcast source playlist, excluded from the
	// tutorials catalogue and used as the episodes source.
	KeyPodcastPlaylistID Key = "youtube_playlist_id"
)

// EnvName returns the environment variable backing this key
// (upper-snake transform of the key name).
func (k Key) EnvName() string {
	return strings.ToUpper(string(k))
}

// compiledDefaults are the last-resort values. Only the two playlist ids have
// one; API keys and channel ids must come from remote config or the
// environment.
var compiledDefaults = map[Key]string{
	KeyPodcastPlaylistID:   "PLPXi7Vgl6Ak-Bm8Y2Xxhp1dwrzWT3AbjZ",
	KeyTutorialsPlaylistID: "PLPXi7Vgl6Ak8GdfjiCcps1fSTZdEE2qYn",
}

// CompiledDefault returns the compiled-in fallback for a key, or "" when the
// key has none.
func CompiledDefault(k Key) string {
	return compiledDefaults[k]
}
