// Package server exposes the catalogue over HTTP for the web front end.
//
// A 200 response with an empty array is the documented "not configured yet"
// state; provider failures surface as 502 with an error body so the front end
// can render a retry affordance. No failure here is fatal to the process.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ytcatalog/config"
	"ytcatalog/youtube"
)

// Provider is the slice of the YouTube client the handlers use.
// *youtube.Client satisfies it.
type Provider interface {
	ResolvePlaylists(ctx context.Context, ids youtube.ResolvedIDs) ([]youtube.Playlist, error)
	ListPlaylistVideos(ctx context.Context, playlistID string) ([]youtube.Video, error)
}

// ProviderFactory builds a Provider for one request's resolved API key.
type ProviderFactory func(ctx context.Context, apiKey string) (Provider, error)

// Options configures optional server collaborators.
type Options struct {
	// Providers overrides provider construction. Tests inject stubs here.
	Providers ProviderFactory

	// Store serves the events and courses endpoints; nil disables them.
	Store ContentStore

	// Contact forwards contact-form submissions; nil disables the endpoint.
	Contact ContactSink

	// Analytics records catalogue reads; nil disables emission.
	Analytics AnalyticsEmitter

	// Logger receives access and error logs. Zero value logs nowhere.
	Logger zerolog.Logger
}

// Server is the inbound HTTP surface.
type Server struct {
	settings  *config.Settings
	resolver  *config.Resolver
	providers ProviderFactory
	store     ContentStore
	contact   ContactSink
	analytics AnalyticsEmitter
	log       zerolog.Logger
	mux       *http.ServeMux
}

// New assembles the server. A nil opts uses defaults: real provider clients
// honoring the settings' throttle, and no optional collaborators.
func New(settings *config.Settings, resolver *config.Resolver, opts *Options) *Server {
	if opts == nil {
		opts = &Options{}
	}

	s := &Server{
		settings:  settings,
		resolver:  resolver,
		providers: opts.Providers,
		store:     opts.Store,
		contact:   opts.Contact,
		analytics: opts.Analytics,
		log:       opts.Logger,
		mux:       http.NewServeMux(),
	}
	if s.providers == nil {
		s.providers = s.defaultProviders
	}

	s.mux.HandleFunc("GET /api/tutorials/playlists", s.handleTutorialPlaylists)
	s.mux.HandleFunc("GET /api/tutorials/videos", s.handleTutorialVideos)
	s.mux.HandleFunc("GET /api/episodes", s.handleEpisodes)
	s.mux.HandleFunc("GET /api/events", s.handleEvents)
	s.mux.HandleFunc("GET /api/courses", s.handleCourses)
	s.mux.HandleFunc("POST /api/contact", s.handleContact)

	return s
}

// defaultProviders constructs a real YouTube client per request key.
func (s *Server) defaultProviders(ctx context.Context, apiKey string) (Provider, error) {
	httpCfg := transportConfig(s.settings)
	return youtube.New(ctx, apiKey, &youtube.Options{
		HTTP:          httpCfg,
		DetailWorkers: s.settings.DetailWorkers,
	})
}

// ServeHTTP applies the request deadline, request id, and access logging
// around the routed handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.settings.RequestTimeout)
	defer cancel()

	requestID := uuid.NewString()
	logger := s.log.With().Str("request_id", requestID).Str("path", r.URL.Path).Logger()
	ctx = logger.WithContext(ctx)
	w.Header().Set("X-Request-Id", requestID)

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	start := time.Now()
	s.mux.ServeHTTP(rec, r.WithContext(ctx))

	logger.Info().
		Int("status", rec.status).
		Dur("elapsed", time.Since(start)).
		Msg("request served")
}

// ListenAndServe runs the server at the configured address until the context
// is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.settings.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// statusRecorder captures the response status for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
