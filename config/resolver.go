package config

import (
	"context"
	"os"

	"ytcatalog/remoteconfig"
)

// Source is one tier of the resolution chain. A miss is reported via ok=false;
// sources never fail the resolution.
type Source interface {
	Lookup(ctx context.Context, key Key) (value string, ok bool)
}

// ResolveOptions adjusts a single resolution. A nil options value means
// default behavior (remote tier included).
type ResolveOptions struct {
	// SkipRemote bypasses the remote configuration tier. Used by callers that
	// already know the remote store has nothing for them, or that must not
	// pay the fetch latency.
	SkipRemote bool
}

// Resolver resolves configuration keys by trying an ordered list of sources
// and returning the first non-empty hit. It never returns an error: a total
// miss is the empty string, which callers treat as "not configured".
type Resolver struct {
	sources []Source
}

// NewResolver builds a resolver over explicit sources, evaluated in order.
func NewResolver(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

// Default returns the production chain: remote configuration, then
// environment variables, then compiled-in defaults.
func Default() *Resolver {
	return NewResolver(
		&RemoteSource{Client: func() (RemoteClient, error) { return remoteconfig.Shared() }},
		EnvSource{},
		DefaultsSource{},
	)
}

// Resolve returns the resolved value for key, or "" when no tier has one.
func (r *Resolver) Resolve(ctx context.Context, key Key, opts *ResolveOptions) string {
	for _, src := range r.sources {
		if opts != nil && opts.SkipRemote {
			if _, isRemote := src.(*RemoteSource); isRemote {
				continue
			}
		}
		if v, ok := src.Lookup(ctx, key); ok && v != "" {
			return v
		}
	}
	return ""
}

// RemoteClient is the slice of the remote configuration client this package
// needs. *remoteconfig.Client satisfies it.
type RemoteClient interface {
	Value(ctx context.Context, name string) (string, error)
}

// RemoteSource reads from the shared remote configuration client. Any failure
// (client construction included) is a silent miss so resolution degrades to
// the next tier.
type RemoteSource struct {
	// Client returns the remote client, typically the process-shared one.
	Client func() (RemoteClient, error)
}

func (s *RemoteSource) Lookup(ctx context.Context, key Key) (string, bool) {
	client, err := s.Client()
	if err != nil {
		return "", false
	}
	v, err := client.Value(ctx, string(key))
	if err != nil {
		return "", false
	}
	return v, v != ""
}

// EnvSource reads the key's deterministic environment variable name.
type EnvSource struct{}

func (EnvSource) Lookup(_ context.Context, key Key) (string, bool) {
	v, ok := os.LookupEnv(key.EnvName())
	return v, ok
}

// DefaultsSource serves the compiled-in fallbacks.
type DefaultsSource struct{}

func (DefaultsSource) Lookup(_ context.Context, key Key) (string, bool) {
	v := CompiledDefault(key)
	return v, v != ""
}
