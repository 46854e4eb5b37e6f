package config

import (
	"context"
	"errors"
	"testing"
)

type fakeRemote struct {
	values map[string]string
	err    error
}

func (f *fakeRemote) Value(_ context.Context, name string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	v, ok := f.values[name]
	if !ok {
		return "", errors.New("parameter not found")
	}
	return v, nil
}

func remoteSource(f *fakeRemote) *RemoteSource {
	return &RemoteSource{Client: func() (RemoteClient, error) { return f, nil }}
}

func brokenRemoteSource() *RemoteSource {
	return &RemoteSource{Client: func() (RemoteClient, error) {
		return nil, errors.New("bad credentials")
	}}
}

func TestResolve_PriorityOrder(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		remote  Source
		env     string // value for the key's env var, "" = unset
		key     Key
		want    string
	}{
		{
			"remote wins over env and default",
			remoteSource(&fakeRemote{values: map[string]string{"youtube_playlist_id": "from-remote"}}),
			"from-env",
			KeyPodcastPlaylistID,
			"from-remote",
		},
		{
			"remote fetch error falls through to env",
			remoteSource(&fakeRemote{err: errors.New("boom")}),
			"from-env",
			KeyChannelID,
			"from-env",
		},
		{
			"remote client construction error falls through to env",
			brokenRemoteSource(),
			"from-env",
			KeyChannelID,
			"from-env",
		},
		{
			"remote and env missing falls through to compiled default",
			remoteSource(&fakeRemote{}),
			"",
			KeyPodcastPlaylistID,
			CompiledDefault(KeyPodcastPlaylistID),
		},
		{
			"total miss for a key without a default returns empty",
			remoteSource(&fakeRemote{}),
			"",
			KeyChannelID,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv(tt.key.EnvName(), tt.env)
			}
			r := NewResolver(tt.remote, EnvSource{}, DefaultsSource{})
			if got := r.Resolve(ctx, tt.key, nil); got != tt.want {
				t.Errorf("Resolve(%s) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestResolve_SkipRemote(t *testing.T) {
	ctx := context.Background()
	remote := remoteSource(&fakeRemote{values: map[string]string{string(KeyAPIKey): "from-remote"}})
	t.Setenv(KeyAPIKey.EnvName(), "from-env")

	r := NewResolver(remote, EnvSource{}, DefaultsSource{})

	if got := r.Resolve(ctx, KeyAPIKey, nil); got != "from-remote" {
		t.Errorf("Resolve() = %q, want remote value", got)
	}
	if got := r.Resolve(ctx, KeyAPIKey, &ResolveOptions{SkipRemote: true}); got != "from-env" {
		t.Errorf("Resolve(SkipRemote) = %q, want env value", got)
	}
}

func TestResolve_EmptyRemoteValueIsAMiss(t *testing.T) {
	ctx := context.Background()
	remote := remoteSource(&fakeRemote{values: map[string]string{string(KeyChannelID): ""}})
	t.Setenv(KeyChannelID.EnvName(), "from-env")

	r := NewResolver(remote, EnvSource{}, DefaultsSource{})
	if got := r.Resolve(ctx, KeyChannelID, nil); got != "from-env" {
		t.Errorf("Resolve() = %q, want fall-through past empty remote value", got)
	}
}

func TestKeyEnvName(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyAPIKey, "YOUTUBE_API_KEY"},
		{KeyChannelID, "YOUTUBE_CHANNEL_ID"},
		{KeyTutorialsPlaylistID, "YOUTUBE_TUTORIALS_PLAYLIST_ID"},
		{KeyPodcastPlaylistID, "YOUTUBE_PLAYLIST_ID"},
	}
	for _, tt := range tests {
		if got := tt.key.EnvName(); got != tt.want {
			t.Errorf("EnvName(%s) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestCompiledDefaults(t *testing.T) {
	if CompiledDefault(KeyAPIKey) != "" {
		t.Error("API key must not have a compiled-in default")
	}
	if CompiledDefault(KeyChannelID) != "" {
		t.Error("channel id must not have a compiled-in default")
	}
	if CompiledDefault(KeyPodcastPlaylistID) == "" {
		t.Error("podcast playlist id must have a compiled-in default")
	}
	if CompiledDefault(KeyTutorialsPlaylistID) == "" {
		t.Error("tutorials playlist id must have a compiled-in default")
	}
}
